package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme is what we could learn about the running terminal emulator: its
// name, its foreground/background, and as much of its 16-color palette
// as its config files give up. All colors are normalized "#rrggbb" hex;
// empty string means unknown.
type Theme struct {
	Terminal   string
	Foreground string
	Background string
	Accent     string
	Palette    map[int]string
}

// DetectTheme identifies the terminal emulator and reads its palette
// from the first config file that yields one. The accent falls back
// from color4 (blue) to color2 (green) to the foreground.
func DetectTheme() Theme {
	th := Theme{Terminal: detectTerminal()}
	home, err := os.UserHomeDir()
	if err != nil {
		return th
	}
	sources := []struct {
		match string
		parse func(string) (Theme, bool)
		path  string
	}{
		{"kitty", parseKittyConf, filepath.Join(home, ".config", "kitty", "kitty.conf")},
		{"alacritty", parseAlacrittyConf, filepath.Join(home, ".config", "alacritty", "alacritty.toml")},
		{"", parseXresources, filepath.Join(home, ".Xresources")},
	}
	// The running emulator's own config wins over whatever else is lying
	// around in the home directory.
	for pass := 0; pass < 2; pass++ {
		for _, src := range sources {
			owned := src.match != "" && strings.Contains(th.Terminal, src.match)
			if (pass == 0) != owned {
				continue
			}
			if parsed, ok := src.parse(src.path); ok {
				parsed.Terminal = th.Terminal
				return withAccent(parsed)
			}
		}
	}
	return th
}

func withAccent(th Theme) Theme {
	for _, slot := range []int{4, 2} {
		if hex, ok := th.Palette[slot]; ok {
			th.Accent = hex
			return th
		}
	}
	th.Accent = th.Foreground
	return th
}

// detectTerminal walks the parent process chain looking for a known
// emulator, since $TERM alone rarely names the real program.
func detectTerminal() string {
	known := []string{
		"kitty", "alacritty", "wezterm", "foot", "konsole",
		"gnome-terminal", "xfce4-terminal", "xterm", "urxvt", "st",
	}
	pid := os.Getppid()
	for depth := 0; depth < 10 && pid > 1; depth++ {
		comm, err := os.ReadFile(fmt.Sprintf("/proc/%d/comm", pid))
		if err != nil {
			break
		}
		name := strings.TrimSpace(string(comm))
		for _, k := range known {
			if strings.Contains(name, k) {
				return k
			}
		}
		pid = parentOf(pid)
	}
	if v := os.Getenv("TERM_PROGRAM"); v != "" {
		return v
	}
	return os.Getenv("TERM")
}

func parentOf(pid int) int {
	data, err := os.ReadFile(fmt.Sprintf("/proc/%d/stat", pid))
	if err != nil {
		return 0
	}
	// comm can contain spaces; fields resume after the closing paren.
	s := string(data)
	idx := strings.LastIndexByte(s, ')')
	if idx < 0 {
		return 0
	}
	fields := strings.Fields(s[idx+1:])
	if len(fields) < 2 {
		return 0
	}
	ppid, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0
	}
	return ppid
}

// normalizeHex validates a color and re-emits it as lowercase #rrggbb.
func normalizeHex(s string) (string, bool) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return "", false
	}
	return c.Hex(), true
}

// parseKittyConf reads "colorN #hex", "foreground #hex" and
// "background #hex" lines from a kitty config.
func parseKittyConf(path string) (Theme, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, false
	}
	defer f.Close()
	return scanKitty(f)
}

func scanKitty(r io.Reader) (Theme, bool) {
	th := Theme{Palette: map[int]string{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		key, val := fields[0], fields[1]
		switch {
		case key == "foreground":
			if hex, ok := normalizeHex(val); ok {
				th.Foreground = hex
			}
		case key == "background":
			if hex, ok := normalizeHex(val); ok {
				th.Background = hex
			}
		case strings.HasPrefix(key, "color"):
			n, err := strconv.Atoi(key[len("color"):])
			if err != nil || n < 0 || n > 15 {
				continue
			}
			if hex, ok := normalizeHex(val); ok {
				th.Palette[n] = hex
			}
		}
	}
	return th, len(th.Palette) > 0 || th.Foreground != ""
}

// alacrittySlots maps the [colors.normal] and [colors.bright] color
// names onto palette slots 0-7 and 8-15.
var alacrittySlots = map[string]int{
	"black": 0, "red": 1, "green": 2, "yellow": 3,
	"blue": 4, "magenta": 5, "cyan": 6, "white": 7,
}

// parseAlacrittyConf reads the colors tables from an alacritty TOML
// config with a plain line scanner; full TOML machinery would be
// overkill for three flat tables.
func parseAlacrittyConf(path string) (Theme, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, false
	}
	defer f.Close()
	return scanAlacritty(f)
}

func scanAlacritty(r io.Reader) (Theme, bool) {
	th := Theme{Palette: map[int]string{}}
	section := ""
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.Trim(line, "[]")
			continue
		}
		key, val, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.Trim(strings.TrimSpace(val), `"'`)
		hex, ok := normalizeHex(val)
		if !ok {
			continue
		}
		switch section {
		case "colors.primary":
			if key == "foreground" {
				th.Foreground = hex
			} else if key == "background" {
				th.Background = hex
			}
		case "colors.normal":
			if slot, ok := alacrittySlots[key]; ok {
				th.Palette[slot] = hex
			}
		case "colors.bright":
			if slot, ok := alacrittySlots[key]; ok {
				th.Palette[slot+8] = hex
			}
		}
	}
	return th, len(th.Palette) > 0 || th.Foreground != ""
}

// parseXresources reads *colorN, *foreground and *background resources.
func parseXresources(path string) (Theme, bool) {
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, false
	}
	defer f.Close()
	return scanXresources(f)
}

func scanXresources(r io.Reader) (Theme, bool) {
	th := Theme{Palette: map[int]string{}}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "!") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		hex, ok := normalizeHex(strings.TrimSpace(val))
		if !ok {
			continue
		}
		switch {
		case strings.HasSuffix(key, "foreground"):
			th.Foreground = hex
		case strings.HasSuffix(key, "background"):
			th.Background = hex
		default:
			idx := strings.LastIndex(key, "color")
			if idx < 0 {
				continue
			}
			n, err := strconv.Atoi(key[idx+len("color"):])
			if err != nil || n < 0 || n > 15 {
				continue
			}
			th.Palette[n] = hex
		}
	}
	return th, len(th.Palette) > 0 || th.Foreground != ""
}

// ColorBlocks builds the palette swatch row. With a detected palette
// and a truecolor terminal the blocks show the exact theme colors;
// otherwise they fall back to the terminal's own first eight.
func ColorBlocks(th Theme, truecolor bool) string {
	blocks := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		hex, ok := th.Palette[i]
		if truecolor && ok {
			if c, err := colorful.Hex(hex); err == nil {
				r, g, b := c.RGB255()
				blocks = append(blocks, fmt.Sprintf("\x1b[38;2;%d;%d;%dm██\x1b[0m", r, g, b))
				continue
			}
		}
		blocks = append(blocks, fmt.Sprintf("\x1b[3%dm██\x1b[0m", i))
	}
	return strings.Join(blocks, " ")
}
