// Package probe gathers the system facts shown in the status panel.
// Every provider returns (value, ok); a false ok means the fact is not
// available on this machine and the panel silently drops the row.
package probe

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// Tier splits providers by refresh cost. Heavy facts are gathered once
// at startup; Light facts are re-read about once a second while the
// animation runs.
type Tier int

const (
	Heavy Tier = iota
	Light
)

// Func is a single fact provider.
type Func func() (string, bool)

// Probe is one named row of the status panel, in display order.
type Probe struct {
	Name string
	Tier Tier
	Run  Func
}

const cmdTimeout = 2 * time.Second

// run executes a small shell pipeline and returns its trimmed output.
// Slow or missing tools just produce an absent fact, never a hang.
func run(pipeline string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()
	out, err := exec.CommandContext(ctx, "sh", "-c", pipeline).Output()
	s := strings.TrimSpace(string(out))
	if err != nil || s == "" {
		return "", false
	}
	return s, true
}

// Table returns the full ordered provider set. The theme feeds the
// terminal name and the color swatch; truecolor selects between exact
// palette blocks and the classic 16-color ones.
func Table(theme Theme, truecolor bool) []Probe {
	return []Probe{
		{"title", Heavy, Title},
		{"separator", Heavy, Separator},
		{"os", Heavy, OSName},
		{"host", Heavy, Host},
		{"kernel", Heavy, Kernel},
		{"uptime", Light, Uptime},
		{"packages", Heavy, Packages},
		{"shell", Heavy, Shell},
		{"display", Heavy, Display},
		{"de", Heavy, DesktopEnv},
		{"wm", Heavy, WindowManager},
		{"wmtheme", Heavy, WMTheme},
		{"theme", Heavy, GTKTheme},
		{"icons", Heavy, IconTheme},
		{"font", Heavy, Font},
		{"cursor", Heavy, CursorTheme},
		{"terminal", Heavy, func() (string, bool) { return Terminal(theme) }},
		{"terminalfont", Heavy, TerminalFont},
		{"cpu", Heavy, CPU},
		{"gpu", Heavy, GPU},
		{"memory", Light, Memory},
		{"swap", Light, Swap},
		{"disk", Light, Disk},
		{"localip", Light, LocalIP},
		{"battery", Light, Battery},
		{"poweradapter", Heavy, PowerAdapter},
		{"locale", Heavy, Locale},
		{"break", Heavy, Break},
		{"colors", Heavy, func() (string, bool) { return ColorBlocks(theme, truecolor), true }},
	}
}
