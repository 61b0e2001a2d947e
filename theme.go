package main

import (
	"github.com/charmbracelet/lipgloss"

	"gifzitto/probe"
)

// -- Colors ---------------------------------------------------------------
// All colors use AdaptiveColor for dark/light terminal support.
// Light values: ANSI 0-15 for accents (palette-adaptive), 256-color for
// grays (predictable). Dark values: 256-color codes tuned for dark
// backgrounds.
//
// | Name          | Light | Dark  | Light desc   | Dark desc  |
// |---------------|-------|-------|--------------|------------|
// | TextPrimary   |   "0" | "252" | black        | light gray |
// | TextDim       | "242" | "243" | medium gray  | gray       |
// | Accent        |   "4" |  "75" | blue         | blue       |
// | Title         |   "5" | "135" | magenta      | purple     |
// | Error         |   "1" | "196" | red          | red        |

var (
	ColorTextPrimary = ac("0", "252")
	ColorTextDim     = ac("242", "243")
	ColorAccent      = ac("4", "75")
	ColorTitle       = ac("5", "135")
	ColorError       = ac("1", "196")
)

var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(ColorTitle)
	StyleLabel     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	StyleDim       = lipgloss.NewStyle().Foreground(ColorTextDim)
	StyleErrorBold = lipgloss.NewStyle().Bold(true).Foreground(ColorError)
)

// labelStyle builds the bold field-label style, preferring the accent
// pulled from the detected terminal theme over the adaptive default.
func labelStyle(theme probe.Theme) lipgloss.Style {
	if theme.Accent != "" {
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.Accent))
	}
	return StyleLabel
}

// ac is a shorthand constructor for lipgloss.AdaptiveColor.
func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}
