package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const ansiReset = "\x1b[0m"

// Align selects how padANSI distributes fill space around a line.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

func parseAlign(s string) (Align, error) {
	switch s {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	}
	return AlignLeft, fmt.Errorf("unknown alignment %q (want left or center)", s)
}

// sgrRunLen reports the byte length of the SGR color run starting at
// s[i], or 0 when s[i:] does not open one. A run is ESC '[' followed by
// any mix of digits and semicolons, closed by 'm'. Runs are treated as
// atomic and zero-width everywhere below.
func sgrRunLen(s string, i int) int {
	j := i + 1
	if j >= len(s) || s[j] != '[' {
		return 0
	}
	j++
	for j < len(s) && (s[j] == ';' || (s[j] >= '0' && s[j] <= '9')) {
		j++
	}
	if j < len(s) && s[j] == 'm' {
		return j - i + 1
	}
	return 0
}

// glyphWidth is the cell width of one visible rune. Zero-width results
// from the table (combining marks, controls) count as one cell so that a
// line's width never undershoots the space the terminal actually uses.
func glyphWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// visibleWidth measures the on-screen cell width of s, skipping SGR
// color runs. A lone ESC that opens no run is skipped as well.
func visibleWidth(s string) int {
	width := 0
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			if n := sgrRunLen(s, i); n > 0 {
				i += n
			} else {
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		width += glyphWidth(r)
		i += size
	}
	return width
}

// truncateANSI cuts s down to at most target visible cells. Color runs
// pass through intact, a wide glyph that would straddle the cut is
// dropped whole, and any line that actually gets cut ends with a reset
// so open styles cannot bleed into whatever is printed next. Lines that
// already fit come back untouched.
func truncateANSI(s string, target int) string {
	if target < 0 {
		target = 0
	}
	if visibleWidth(s) <= target {
		return s
	}
	var b strings.Builder
	vis := 0
	for i := 0; i < len(s) && vis < target; {
		if s[i] == 0x1b {
			if n := sgrRunLen(s, i); n > 0 {
				b.WriteString(s[i : i+n])
				i += n
			} else {
				i++
			}
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		w := glyphWidth(r)
		if vis+w > target {
			break
		}
		b.WriteString(s[i : i+size])
		vis += w
		i += size
	}
	b.WriteString(ansiReset)
	return b.String()
}

// padANSI returns s at exactly target visible cells, padding with spaces
// or truncating as needed. Centered padding puts the odd cell on the
// right.
func padANSI(s string, target int, align Align) string {
	cur := visibleWidth(s)
	if cur >= target {
		return truncateANSI(s, target)
	}
	pad := target - cur
	if align == AlignCenter {
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	}
	return s + strings.Repeat(" ", pad)
}
