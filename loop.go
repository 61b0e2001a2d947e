package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

const (
	lightRefreshInterval = time.Second
	fallbackColumns      = 80
)

// loopConfig carries the knobs the render loop needs each tick.
type loopConfig struct {
	fps float64
	sep string
	out io.Writer
	// columns returns the live terminal width. Read every tick so a
	// resize takes effect on the very next draw.
	columns func() int
}

func stdoutColumns() int {
	cols, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 {
		return fallbackColumns
	}
	return cols
}

// tickPeriod converts frames per second into the per-tick time budget.
func tickPeriod(fps float64) time.Duration {
	if fps <= 0 {
		fps = 12
	}
	return time.Duration(float64(time.Second) / fps)
}

func isQuitKey(b byte) bool {
	switch b {
	case 'q', 'Q', 0x1b, 0x03: // q, Q, Esc, Ctrl-C
		return true
	}
	return false
}

// runLoop drives the display until a quit key arrives: advance the
// animation, refresh the cheap panel fields about once a second, and
// redraw both panes in place. Each tick sleeps only the remainder of
// its budget, so slow probes cost latency on one tick instead of
// compounding drift across the run.
func runLoop(store *frameStore, pnl *panel, in *rawInput, cfg loopConfig) error {
	out := bufio.NewWriter(cfg.out)
	period := tickPeriod(cfg.fps)

	// Hide the cursor and start from a clean screen; the loop repaints
	// from home each tick rather than scrolling.
	fmt.Fprint(out, "\x1b[?25l\x1b[2J")
	defer func() {
		fmt.Fprint(out, "\x1b[?25h\r\n")
		out.Flush()
	}()

	prevRows := 0
	lastLight := time.Now()
	for {
		tickStart := time.Now()

		if b, ok := in.poll(); ok && isQuitKey(b) {
			return nil
		}
		if time.Since(lastLight) >= lightRefreshInterval {
			pnl.refreshLight()
			lastLight = time.Now()
		}

		fr := store.next()
		lines := pnl.buildLines()
		cols := cfg.columns()

		rows := len(fr)
		if len(lines) > rows {
			rows = len(lines)
		}
		fmt.Fprint(out, "\x1b[H")
		for i := 0; i < rows; i++ {
			left := store.blankRow()
			if i < len(fr) {
				left = fr[i]
			}
			right := ""
			if i < len(lines) {
				right = lines[i]
			}
			out.WriteString(composeRow(left, right, cfg.sep, cols))
			out.WriteString("\x1b[K\r\n")
		}
		// When the panel shrinks, wipe the rows it used to occupy.
		if rows < prevRows {
			fmt.Fprint(out, "\x1b[J")
		}
		prevRows = rows
		if err := out.Flush(); err != nil {
			return fmt.Errorf("writing frame: %w", err)
		}

		if rest := period - time.Since(tickStart); rest > 0 {
			time.Sleep(rest)
		}
	}
}
