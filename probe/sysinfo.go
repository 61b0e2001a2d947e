package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Title is the classic user@host header row.
func Title() (string, bool) {
	user := os.Getenv("USER")
	if user == "" {
		user, _ = run("whoami")
	}
	host, err := os.Hostname()
	if err != nil || host == "" || user == "" {
		return "", false
	}
	return user + "@" + host, true
}

func Separator() (string, bool) {
	return strings.Repeat("─", 28), true
}

// Break renders as an empty spacer row.
func Break() (string, bool) {
	return "", true
}

func OSName() (string, bool) {
	for _, path := range []string{"/etc/os-release", "/usr/lib/os-release"} {
		f, err := os.Open(path)
		if err != nil {
			continue
		}
		name, ok := parseOSRelease(f)
		f.Close()
		if ok {
			return name, true
		}
	}
	if s, ok := run("lsb_release -ds"); ok {
		return strings.Trim(s, `"`), true
	}
	return run("uname -o")
}

// parseOSRelease pulls PRETTY_NAME out of an os-release stream.
func parseOSRelease(r io.Reader) (string, bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if v, found := strings.CutPrefix(line, "PRETTY_NAME="); found {
			v = strings.Trim(v, `"`)
			if v != "" {
				return v, true
			}
		}
	}
	return "", false
}

func Host() (string, bool) {
	for _, path := range []string{
		"/sys/devices/virtual/dmi/id/product_name",
		"/sys/firmware/devicetree/base/model",
	} {
		if data, err := os.ReadFile(path); err == nil {
			s := strings.TrimSpace(strings.Trim(string(data), "\x00"))
			if s != "" && s != "To Be Filled By O.E.M." {
				return s, true
			}
		}
	}
	host, err := os.Hostname()
	if err != nil || host == "" {
		return "", false
	}
	return host, true
}

func Kernel() (string, bool) {
	return run("uname -r")
}

func Uptime() (string, bool) {
	data, err := os.ReadFile("/proc/uptime")
	if err == nil {
		fields := strings.Fields(string(data))
		if len(fields) > 0 {
			if secs, err := strconv.ParseFloat(fields[0], 64); err == nil {
				return formatUptime(int64(secs)), true
			}
		}
	}
	if s, ok := run("uptime -p"); ok {
		return strings.TrimPrefix(s, "up "), true
	}
	return "", false
}

func formatUptime(secs int64) string {
	days := secs / 86400
	hours := secs % 86400 / 3600
	mins := secs % 3600 / 60
	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", mins))
	return strings.Join(parts, " ")
}

// Packages counts installed packages per manager, skipping managers
// that are not on PATH.
func Packages() (string, bool) {
	managers := []struct {
		name  string
		count string
	}{
		{"pacman", "pacman -Qq | wc -l"},
		{"dpkg", "dpkg-query -f '.\\n' -W | wc -l"},
		{"rpm", "rpm -qa | wc -l"},
		{"apk", "apk info | wc -l"},
		{"flatpak", "flatpak list --app | wc -l"},
		{"snap", "snap list | tail -n +2 | wc -l"},
	}
	var parts []string
	for _, m := range managers {
		if _, ok := run("command -v " + m.name); !ok {
			continue
		}
		n, ok := run(m.count)
		if !ok || n == "0" {
			continue
		}
		parts = append(parts, n+" ("+m.name+")")
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func Shell() (string, bool) {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return "", false
	}
	name := filepath.Base(sh)
	if v, ok := run(sh + " --version 2>/dev/null | head -1"); ok {
		fields := strings.Fields(v)
		for _, f := range fields {
			if len(f) > 0 && f[0] >= '0' && f[0] <= '9' {
				return name + " " + f, true
			}
		}
	}
	return name, true
}

func Display() (string, bool) {
	if s, ok := run(`xrandr --current 2>/dev/null | awk '/\*/{print $1; exit}'`); ok {
		return s, true
	}
	return run(`swaymsg -t get_outputs 2>/dev/null | grep -o '"current_mode[^}]*' | head -1 | grep -o '[0-9]*x[0-9]*' | head -1`)
}

func DesktopEnv() (string, bool) {
	for _, env := range []string{"XDG_CURRENT_DESKTOP", "DESKTOP_SESSION"} {
		if v := os.Getenv(env); v != "" {
			return v, true
		}
	}
	return "", false
}

func WindowManager() (string, bool) {
	if s, ok := run(`wmctrl -m 2>/dev/null | awk -F': ' '/^Name/{print $2}'`); ok {
		return s, true
	}
	known := []string{"sway", "i3", "bspwm", "dwm", "hyprland", "openbox", "xmonad", "awesome", "mutter", "kwin_x11", "kwin_wayland"}
	procs, ok := run("ps -e -o comm=")
	if !ok {
		return "", false
	}
	running := make(map[string]bool)
	for _, p := range strings.Split(procs, "\n") {
		running[strings.TrimSpace(p)] = true
	}
	for _, wm := range known {
		if running[wm] {
			return wm, true
		}
	}
	return "", false
}

func WMTheme() (string, bool) {
	if s, ok := run("gsettings get org.gnome.desktop.wm.preferences theme 2>/dev/null"); ok {
		return strings.Trim(s, "'"), true
	}
	return "", false
}

func GTKTheme() (string, bool) {
	if s, ok := run("gsettings get org.gnome.desktop.interface gtk-theme 2>/dev/null"); ok {
		return strings.Trim(s, "'"), true
	}
	return gtkSetting("gtk-theme-name")
}

func IconTheme() (string, bool) {
	if s, ok := run("gsettings get org.gnome.desktop.interface icon-theme 2>/dev/null"); ok {
		return strings.Trim(s, "'"), true
	}
	return gtkSetting("gtk-icon-theme-name")
}

func Font() (string, bool) {
	if s, ok := run("gsettings get org.gnome.desktop.interface font-name 2>/dev/null"); ok {
		return strings.Trim(s, "'"), true
	}
	return gtkSetting("gtk-font-name")
}

func CursorTheme() (string, bool) {
	if s, ok := run("gsettings get org.gnome.desktop.interface cursor-theme 2>/dev/null"); ok {
		return strings.Trim(s, "'"), true
	}
	return gtkSetting("gtk-cursor-theme-name")
}

// gtkSetting reads one key from the GTK3 settings.ini.
func gtkSetting(key string) (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	f, err := os.Open(filepath.Join(home, ".config", "gtk-3.0", "settings.ini"))
	if err != nil {
		return "", false
	}
	defer f.Close()
	return parseINIKey(f, key)
}

func parseINIKey(r io.Reader, key string) (string, bool) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		k, v, found := strings.Cut(sc.Text(), "=")
		if !found {
			continue
		}
		if strings.TrimSpace(k) == key {
			v = strings.TrimSpace(v)
			if v != "" {
				return v, true
			}
		}
	}
	return "", false
}

// Terminal prefers the emulator found during theme detection, then the
// usual environment hints.
func Terminal(theme Theme) (string, bool) {
	if theme.Terminal != "" {
		return theme.Terminal, true
	}
	if v := os.Getenv("TERM_PROGRAM"); v != "" {
		return v, true
	}
	if v := os.Getenv("TERM"); v != "" {
		return v, true
	}
	return "", false
}

func TerminalFont() (string, bool) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", false
	}
	if f, err := os.Open(filepath.Join(home, ".config", "kitty", "kitty.conf")); err == nil {
		defer f.Close()
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if v, found := strings.CutPrefix(line, "font_family"); found {
				v = strings.TrimSpace(v)
				if v != "" && v != "auto" {
					return v, true
				}
			}
		}
	}
	return "", false
}

func CPU() (string, bool) {
	f, err := os.Open("/proc/cpuinfo")
	if err != nil {
		return run("uname -p")
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		k, v, found := strings.Cut(sc.Text(), ":")
		if found && strings.TrimSpace(k) == "model name" {
			return strings.Join(strings.Fields(v), " "), true
		}
	}
	return "", false
}

func GPU() (string, bool) {
	if s, ok := run(`lspci 2>/dev/null | grep -iE 'vga|3d|display' | head -1 | sed 's/.*: //'`); ok {
		return s, true
	}
	return "", false
}

func Memory() (string, bool) {
	return run(`free -h | awk '/^Mem:/{print $3 " / " $2}'`)
}

func Swap() (string, bool) {
	s, ok := run(`free -h | awk '/^Swap:/{print $3 " / " $2}'`)
	if !ok || strings.HasPrefix(s, "0B / 0B") {
		return "", false
	}
	return s, true
}

func Disk() (string, bool) {
	return run(`df -h / | awk 'NR==2{print $3 " / " $2 " (" $5 ")"}'`)
}

func LocalIP() (string, bool) {
	if s, ok := run(`hostname -I 2>/dev/null | awk '{print $1}'`); ok {
		return s, true
	}
	return run(`ip route get 1.1.1.1 2>/dev/null | awk '{print $7; exit}'`)
}

func Battery() (string, bool) {
	matches, _ := filepath.Glob("/sys/class/power_supply/BAT*/capacity")
	for _, capPath := range matches {
		data, err := os.ReadFile(capPath)
		if err != nil {
			continue
		}
		pct := strings.TrimSpace(string(data))
		status := ""
		if data, err := os.ReadFile(filepath.Join(filepath.Dir(capPath), "status")); err == nil {
			status = strings.TrimSpace(string(data))
		}
		if status != "" {
			return pct + "% (" + status + ")", true
		}
		return pct + "%", true
	}
	return "", false
}

func PowerAdapter() (string, bool) {
	matches, _ := filepath.Glob("/sys/class/power_supply/A*/online")
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if strings.TrimSpace(string(data)) == "1" {
			return "AC connected", true
		}
	}
	return "", false
}

func Locale() (string, bool) {
	for _, env := range []string{"LC_ALL", "LANG"} {
		if v := os.Getenv(env); v != "" {
			return v, true
		}
	}
	return "", false
}
