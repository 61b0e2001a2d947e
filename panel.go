package main

import (
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"gifzitto/probe"
)

// bareFields render their value as-is with no "Label:" prefix.
var bareFields = map[string]bool{
	"title":     true,
	"separator": true,
	"break":     true,
	"colors":    true,
}

// field is one materialized panel row: the probe plus its latest value.
type field struct {
	name  string
	tier  probe.Tier
	fn    probe.Func
	value string
	ok    bool
}

// panel owns the right-hand status column. Field order never changes
// after construction; values do, on the light refresh cadence.
type panel struct {
	fields []field
	label  lipgloss.Style
	title  lipgloss.Style
}

// newPanel runs every probe once so the panel is fully populated before
// the first tick.
func newPanel(table []probe.Probe, label lipgloss.Style) *panel {
	p := &panel{
		fields: make([]field, 0, len(table)),
		label:  label,
		title:  StyleTitle,
	}
	for _, pr := range table {
		f := field{name: pr.Name, tier: pr.Tier, fn: pr.Run}
		f.value, f.ok = callProbe(pr.Run)
		p.fields = append(p.fields, f)
	}
	return p
}

// refreshLight re-runs only the cheap providers. One failing provider
// just drops its own row; the rest of the panel is untouched.
func (p *panel) refreshLight() {
	for i := range p.fields {
		f := &p.fields[i]
		if f.tier != probe.Light {
			continue
		}
		f.value, f.ok = callProbe(f.fn)
	}
}

// callProbe runs one provider, translating a panic into an absent
// value so a broken probe can never take down the render loop.
func callProbe(fn probe.Func) (v string, ok bool) {
	defer func() {
		if recover() != nil {
			v, ok = "", false
		}
	}()
	return fn()
}

// buildLines renders the panel top to bottom, skipping absent fields
// entirely so the column stays compact.
func (p *panel) buildLines() []string {
	lines := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		if !f.ok {
			continue
		}
		switch {
		case f.name == "title":
			lines = append(lines, p.title.Render(f.value))
		case bareFields[f.name]:
			lines = append(lines, f.value)
		default:
			lines = append(lines, p.label.Render(fieldLabel(f.name)+":")+" "+f.value)
		}
	}
	if len(lines) == 0 {
		lines = append(lines, StyleDim.Render("no system info"))
	}
	return lines
}

// fieldLabel maps a probe name to its display label.
func fieldLabel(name string) string {
	switch name {
	case "os":
		return "OS"
	case "de":
		return "DE"
	case "wm":
		return "WM"
	case "wmtheme":
		return "WM Theme"
	case "cpu":
		return "CPU"
	case "gpu":
		return "GPU"
	case "localip":
		return "Local IP"
	case "terminalfont":
		return "Terminal Font"
	case "poweradapter":
		return "Power Adapter"
	}
	r := []rune(name)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
