package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/tirasundara/mt940-parser/internal/domain"
)

func TestStatement(t *testing.T) {
	stmt := domain.NewStatement("MC940123456")

	if stmt.TransactionRef != "MC940123456" {
		t.Errorf("Expected TransactionRef to be 'MC940123456', got '%s'", stmt.TransactionRef)
	}

	if stmt.Transactions == nil || len(stmt.Transactions) != 0 {
		t.Errorf("Expected an empty transaction list, got %v", stmt.Transactions)
	}

	stmt.Transactions = append(stmt.Transactions,
		&domain.Transaction{Amount: decimal.RequireFromString("100.50")},
		&domain.Transaction{Amount: decimal.RequireFromString("-40.25")},
	)

	expected := decimal.RequireFromString("60.25")
	if !stmt.Turnover().Equal(expected) {
		t.Errorf("Expected Turnover to be %s, got %s", expected, stmt.Turnover())
	}
}

func TestDateText(t *testing.T) {
	d := domain.NewDate(2024, 2, 29)

	text, err := d.MarshalText()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if string(text) != "2024-02-29" {
		t.Errorf("Expected '2024-02-29', got '%s'", text)
	}

	var parsed domain.Date
	if err := parsed.UnmarshalText(text); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !parsed.Equal(d.Time) {
		t.Errorf("Expected %s, got %s", d, parsed)
	}

	if err := parsed.UnmarshalText([]byte("2024-13-01")); err == nil {
		t.Errorf("Expected an error for month 13, got nil")
	}
}
