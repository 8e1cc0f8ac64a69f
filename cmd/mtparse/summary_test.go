package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/tirasundara/mt940-parser/internal/domain"
	"github.com/tirasundara/mt940-parser/internal/service"
)

func TestPrintSummary(t *testing.T) {
	color.NoColor = true

	results := []service.FileResult{
		{Path: "a.STA", Statements: []*domain.Statement{domain.NewStatement("A"), domain.NewStatement("B")}},
		{Path: "b.STA", Err: errors.New("field 61: invalid value")},
	}

	var buf bytes.Buffer
	printSummary(&buf, results)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), buf.String())
	}

	if lines[0] != "OK     a.STA (2 statements)" {
		t.Errorf("Unexpected OK line: %q", lines[0])
	}

	if lines[1] != "FAILED b.STA: field 61: invalid value" {
		t.Errorf("Unexpected FAILED line: %q", lines[1])
	}

	if lines[2] != "2 files, 2 statements, 1 failed" {
		t.Errorf("Unexpected totals line: %q", lines[2])
	}
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger("debug", true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !logger.IsLevelEnabled(logrus.DebugLevel) {
		t.Errorf("Expected debug level to be enabled")
	}

	if _, err := newLogger("chatty", false); err == nil {
		t.Errorf("Expected an error for an unknown level, got nil")
	}
}
