package main

import (
	"os"

	"golang.org/x/term"
)

// rawInput owns the terminal's input mode for the render loop's
// lifetime. It flips stdin into raw mode on open, feeds keystrokes to a
// non-blocking poll, and hands the terminal back on release. Release is
// idempotent so it can sit in a defer and also run on explicit paths.
type rawInput struct {
	fd    int
	prior *term.State
	keys  chan byte
}

func openRawInput() (*rawInput, error) {
	fd := int(os.Stdin.Fd())
	prior, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	in := &rawInput{fd: fd, prior: prior, keys: make(chan byte, 8)}
	go in.read()
	return in, nil
}

// read is the only stdin reader while raw mode is held. It forwards
// bytes until stdin errors out; a full channel just drops keystrokes,
// which is fine because only the quit key matters.
func (in *rawInput) read() {
	buf := make([]byte, 1)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			select {
			case in.keys <- buf[0]:
			default:
			}
		}
		if err != nil {
			return
		}
	}
}

// poll reports one pending keystroke without blocking.
func (in *rawInput) poll() (byte, bool) {
	select {
	case b := <-in.keys:
		return b, true
	default:
		return 0, false
	}
}

// release restores the prior terminal mode. Safe to call more than
// once; only the first call touches the terminal.
func (in *rawInput) release() error {
	if in == nil || in.prior == nil {
		return nil
	}
	st := in.prior
	in.prior = nil
	return term.Restore(in.fd, st)
}
