package main

import (
	"strings"
	"testing"
)

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"plain ascii", "hello", 5},
		{"color run is zero width", "\x1b[31mHELLO\x1b[0m", 5},
		{"multi param run", "\x1b[1;38;5;75mok\x1b[0m", 2},
		{"wide glyphs count two", "日本", 4},
		{"mixed wide and narrow", "a日b", 4},
		{"lone escape skipped", "a\x1bb", 2},
		{"unterminated run counts body", "\x1b[31", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := visibleWidth(tt.in); got != tt.want {
				t.Errorf("visibleWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateANSI(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		target int
		want   string
	}{
		{"fits untouched", "abc", 5, "abc"},
		{"exact fit untouched", "abc", 3, "abc"},
		{"plain cut gets reset", "abcdef", 3, "abc\x1b[0m"},
		{"styled cut keeps color run", "\x1b[31mHELLO\x1b[0m", 3, "\x1b[31mHEL\x1b[0m"},
		{"zero target", "abc", 0, "\x1b[0m"},
		{"negative target", "abc", -2, "\x1b[0m"},
		{"empty stays empty", "", 0, ""},
		{"wide glyph dropped at boundary", "a日b", 2, "a\x1b[0m"},
		{"wide glyph kept when it fits", "a日b", 3, "a日\x1b[0m"},
		{"styled but fitting untouched", "\x1b[31mok\x1b[0m", 5, "\x1b[31mok\x1b[0m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateANSI(tt.in, tt.target); got != tt.want {
				t.Errorf("truncateANSI(%q, %d) = %q, want %q", tt.in, tt.target, got, tt.want)
			}
		})
	}
}

func TestTruncateANSIIdempotent(t *testing.T) {
	inputs := []string{
		"plain text line",
		"\x1b[31mHELLO\x1b[0m world",
		"日本語のテキスト",
		strings.Repeat("x", 80),
	}
	for _, in := range inputs {
		for _, n := range []int{0, 1, 3, 10, 40} {
			once := truncateANSI(in, n)
			twice := truncateANSI(once, n)
			if once != twice {
				t.Errorf("truncateANSI(%q, %d) not idempotent: %q then %q", in, n, once, twice)
			}
			if got := visibleWidth(once); got > n {
				t.Errorf("truncateANSI(%q, %d) still %d cells wide", in, n, got)
			}
		}
	}
}

func TestPadANSI(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		target int
		align  Align
		want   string
	}{
		{"left pad", "ab", 5, AlignLeft, "ab   "},
		{"center pad even", "ab", 6, AlignCenter, "  ab  "},
		{"center pad odd goes right", "ok", 5, AlignCenter, " ok  "},
		{"exact width untouched", "abcde", 5, AlignLeft, "abcde"},
		{"too long truncates", "abcdef", 4, AlignLeft, "abcd\x1b[0m"},
		{"styled keeps visible width", "\x1b[31mok\x1b[0m", 4, AlignLeft, "\x1b[31mok\x1b[0m  "},
		{"empty centered", "", 4, AlignCenter, "    "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := padANSI(tt.in, tt.target, tt.align)
			if got != tt.want {
				t.Errorf("padANSI(%q, %d) = %q, want %q", tt.in, tt.target, got, tt.want)
			}
			if w := visibleWidth(got); w != tt.target {
				t.Errorf("padANSI(%q, %d) is %d cells wide", tt.in, tt.target, w)
			}
		})
	}
}

func TestParseAlign(t *testing.T) {
	if a, err := parseAlign("center"); err != nil || a != AlignCenter {
		t.Errorf("parseAlign(center) = %v, %v", a, err)
	}
	if a, err := parseAlign("left"); err != nil || a != AlignLeft {
		t.Errorf("parseAlign(left) = %v, %v", a, err)
	}
	if _, err := parseAlign("justified"); err == nil {
		t.Error("parseAlign(justified) should fail")
	}
}
