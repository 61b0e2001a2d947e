// gifzitto plays a looping ASCII animation next to a live system
// status panel, fetch-style. The gen subcommand turns a GIF into the
// frame files the main mode plays back.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/colorprofile"

	"gifzitto/probe"
)

const (
	defaultBoxW = 40
	defaultBoxH = 20
	defaultFPS  = 12.0
)

var verbose bool

// logv prints progress chatter only when -verbose is set. It writes to
// stderr so the render loop's stdout stream stays clean.
func logv(format string, args ...any) {
	if verbose {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

func defaultAnimDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "gifzitto", "anim")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "anim"
	}
	return filepath.Join(home, ".local", "share", "gifzitto", "anim")
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "gen" {
		genMain(os.Args[2:])
		return
	}

	dir := flag.String("dir", defaultAnimDir(), "directory holding frame_N.txt files")
	boxW := flag.Int("width", defaultBoxW, "animation box width in cells")
	boxH := flag.Int("height", defaultBoxH, "animation box height in rows")
	fps := flag.Float64("fps", defaultFPS, "animation frames per second")
	alignFlag := flag.String("align", "left", "frame alignment inside the box: left or center")
	sep := flag.String("sep", defaultSeparator, "separator between animation and panel")
	flag.BoolVar(&verbose, "verbose", false, "log progress to stderr")
	flag.Parse()

	align, err := parseAlign(*alignFlag)
	if err != nil {
		fatal(err)
	}
	if err := runFetch(*dir, *boxW, *boxH, *fps, align, *sep); err != nil {
		fatal(err)
	}
}

func genMain(args []string) {
	fs := flag.NewFlagSet("gen", flag.ExitOnError)
	input := fs.String("in", "", "source GIF file (required)")
	outDir := fs.String("out", defaultAnimDir(), "directory to write frame files into")
	boxW := fs.Int("width", defaultBoxW, "frame width in characters")
	boxH := fs.Int("height", defaultBoxH, "frame height in rows")
	color := fs.Bool("color", false, "emit truecolor escape codes per character")
	invert := fs.Bool("invert", false, "invert luminance, for light-on-dark sources")
	watch := fs.Bool("watch", false, "regenerate whenever the source GIF changes")
	fs.BoolVar(&verbose, "verbose", false, "log progress to stderr")
	fs.Parse(args)

	if *input == "" {
		fmt.Fprintln(os.Stderr, "gen: -in is required")
		fs.Usage()
		os.Exit(2)
	}
	opts := genOptions{
		input:  *input,
		outDir: *outDir,
		boxW:   *boxW,
		boxH:   *boxH,
		color:  *color,
		invert: *invert,
	}
	if opts.color && colorprofile.Detect(os.Stdout, os.Environ()) != colorprofile.TrueColor {
		fmt.Fprintln(os.Stderr, "gen: terminal lacks truecolor support, generating plain frames")
		opts.color = false
	}
	run := runGen
	if *watch {
		run = runGenWatch
	}
	if err := run(opts); err != nil {
		fatal(err)
	}
}

// runFetch wires the whole display together. Everything that can fail
// outright (missing frames, bad directory) happens before the terminal
// goes into raw mode, so a fatal exit needs no cleanup.
func runFetch(dir string, boxW, boxH int, fps float64, align Align, sep string) error {
	frames, err := loadFrames(dir, boxW, boxH, align)
	if err != nil {
		if errors.Is(err, errNoFrames) {
			return fmt.Errorf("%w (run \"gifzitto gen -in some.gif\" first)", err)
		}
		return err
	}
	store, err := newFrameStore(frames, boxW)
	if err != nil {
		return err
	}
	logv("loaded %d frames from %s", store.count(), dir)

	theme := probe.DetectTheme()
	logv("terminal %q, accent %q", theme.Terminal, theme.Accent)
	truecolor := colorprofile.Detect(os.Stdout, os.Environ()) == colorprofile.TrueColor
	pnl := newPanel(probe.Table(theme, truecolor), labelStyle(theme))

	in, err := openRawInput()
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err := in.release(); err != nil {
			fmt.Fprintf(os.Stderr, "restoring terminal: %v\n", err)
		}
	}()

	return runLoop(store, pnl, in, loopConfig{
		fps:     fps,
		sep:     sep,
		out:     os.Stdout,
		columns: stdoutColumns,
	})
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
