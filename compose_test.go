package main

import (
	"strings"
	"testing"
)

func TestComposeRow(t *testing.T) {
	left := "[art]     " // 10 cells
	sep := " | "         // 3 cells

	tests := []struct {
		name    string
		right   string
		columns int
		want    string
	}{
		{"panel fits", "OS: Arch", 30, "[art]      | OS: Arch"},
		{"panel truncated", "OS: Arch Linux rolling", 20, "[art]      | OS: Arc\x1b[0m"},
		{"no room for panel", "OS: Arch", 13, "[art]      | \x1b[0m"},
		{"narrower than the box", "OS: Arch", 8, "[art]      | \x1b[0m"},
		{"empty panel row", "", 30, "[art]      | "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := composeRow(left, tt.right, sep, tt.columns)
			if got != tt.want {
				t.Errorf("composeRow = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestComposeRowNeverOverflows(t *testing.T) {
	left := strings.Repeat("x", 12)
	sep := defaultSeparator
	right := "\x1b[31m" + strings.Repeat("y", 50) + "\x1b[0m"
	for cols := visibleWidth(left) + visibleWidth(sep); cols <= 80; cols += 7 {
		got := composeRow(left, right, sep, cols)
		if w := visibleWidth(got); w > cols {
			t.Errorf("cols=%d: composed row is %d cells", cols, w)
		}
	}
}

func TestComposeRowStyledPanelKeepsReset(t *testing.T) {
	got := composeRow("ab", "\x1b[31mLONG VALUE\x1b[0m", " ", 7)
	if !strings.HasSuffix(got, "\x1b[0m") {
		t.Errorf("truncated styled panel row must end with reset: %q", got)
	}
	if !strings.Contains(got, "\x1b[31m") {
		t.Errorf("color run lost in composition: %q", got)
	}
}
