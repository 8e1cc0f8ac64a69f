package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/tirasundara/mt940-parser/internal/service"
)

var (
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow, color.Bold)
)

// printSummary prints one status line per file followed by totals
func printSummary(w io.Writer, results []service.FileResult) {
	statements := 0
	for _, r := range results {
		if r.Err != nil {
			red.Fprintf(w, "FAILED %s: %v\n", r.Path, r.Err)
			continue
		}
		statements += len(r.Statements)
		green.Fprintf(w, "OK     %s (%d statements)\n", r.Path, len(r.Statements))
	}

	failed := service.Failed(results)
	summary := fmt.Sprintf("%d files, %d statements, %d failed\n", len(results), statements, failed)
	if failed > 0 {
		yellow.Fprint(w, summary)
		return
	}
	fmt.Fprint(w, summary)
}
