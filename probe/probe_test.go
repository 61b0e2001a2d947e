package probe

import (
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	out, ok := run("echo hello")
	if !ok || out != "hello" {
		t.Errorf("run(echo hello) = %q, %v", out, ok)
	}
	if _, ok := run("definitely-not-a-command-9000"); ok {
		t.Error("missing command should report absent")
	}
	if _, ok := run("true"); ok {
		t.Error("empty output should report absent")
	}
}

func TestParseOSRelease(t *testing.T) {
	in := `NAME="Arch Linux"
PRETTY_NAME="Arch Linux"
ID=arch
`
	got, ok := parseOSRelease(strings.NewReader(in))
	if !ok || got != "Arch Linux" {
		t.Errorf("parseOSRelease = %q, %v", got, ok)
	}
	if _, ok := parseOSRelease(strings.NewReader("ID=arch\n")); ok {
		t.Error("missing PRETTY_NAME should report absent")
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		secs int64
		want string
	}{
		{59, "0m"},
		{300, "5m"},
		{3660, "1h 1m"},
		{90061, "1d 1h 1m"},
		{86400 * 3, "3d 0m"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.secs); got != tt.want {
			t.Errorf("formatUptime(%d) = %q, want %q", tt.secs, got, tt.want)
		}
	}
}

func TestParseINIKey(t *testing.T) {
	in := `[Settings]
gtk-theme-name = Adwaita-dark
gtk-icon-theme-name=Papirus
`
	if got, ok := parseINIKey(strings.NewReader(in), "gtk-theme-name"); !ok || got != "Adwaita-dark" {
		t.Errorf("gtk-theme-name = %q, %v", got, ok)
	}
	if got, ok := parseINIKey(strings.NewReader(in), "gtk-icon-theme-name"); !ok || got != "Papirus" {
		t.Errorf("gtk-icon-theme-name = %q, %v", got, ok)
	}
	if _, ok := parseINIKey(strings.NewReader(in), "gtk-font-name"); ok {
		t.Error("missing key should report absent")
	}
}

func TestBreakIsPresentAndEmpty(t *testing.T) {
	v, ok := Break()
	if !ok || v != "" {
		t.Errorf("Break() = %q, %v, want empty and present", v, ok)
	}
}

func TestSeparatorWidth(t *testing.T) {
	v, ok := Separator()
	if !ok {
		t.Fatal("separator should always be present")
	}
	if n := strings.Count(v, "─"); n != 28 {
		t.Errorf("separator has %d rule characters, want 28", n)
	}
}

func TestTableOrder(t *testing.T) {
	table := Table(Theme{}, false)
	if table[0].Name != "title" || table[1].Name != "separator" {
		t.Errorf("table must open with title and separator, got %s, %s", table[0].Name, table[1].Name)
	}
	last := table[len(table)-1]
	if last.Name != "colors" {
		t.Errorf("table must close with colors, got %s", last.Name)
	}
	light := map[string]bool{}
	for _, p := range table {
		if p.Tier == Light {
			light[p.Name] = true
		}
	}
	for _, name := range []string{"uptime", "memory", "swap", "disk", "localip", "battery"} {
		if !light[name] {
			t.Errorf("%s should be a light tier probe", name)
		}
	}
	if light["cpu"] || light["os"] {
		t.Error("expensive probes must stay in the heavy tier")
	}
}
