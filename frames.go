package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// errNoFrames means the animation directory yielded nothing usable. It
// is raised before the terminal is touched, so callers can bail with a
// plain message and no cleanup.
var errNoFrames = errors.New("no animation frames")

var frameFileRE = regexp.MustCompile(`^frame_(\d+)\.txt$`)

// frame is one pre-normalized animation cell: exactly boxH rows, each
// exactly boxW visible cells wide.
type frame []string

// frameStore cycles through a fixed, immutable frame sequence.
type frameStore struct {
	frames []frame
	boxW   int
	cursor int
}

func newFrameStore(frames []frame, boxW int) (*frameStore, error) {
	if len(frames) == 0 {
		return nil, errNoFrames
	}
	return &frameStore{frames: frames, boxW: boxW}, nil
}

// next returns the current frame and advances the cursor, wrapping to
// the start after the last frame.
func (fs *frameStore) next() frame {
	f := fs.frames[fs.cursor]
	fs.cursor = (fs.cursor + 1) % len(fs.frames)
	return f
}

func (fs *frameStore) count() int {
	return len(fs.frames)
}

// blankRow is the filler emitted in place of a frame row when the panel
// is taller than the animation box.
func (fs *frameStore) blankRow() string {
	return strings.Repeat(" ", fs.boxW)
}

// loadFrames reads frame_N.txt files from dir, sorted by N numerically
// so frame_10 follows frame_9 rather than frame_1. Every frame is
// normalized to boxW x boxH up front; the render loop never measures
// again. Files that fail to read are skipped, and only an empty result
// is an error.
func loadFrames(dir string, boxW, boxH int, align Align) ([]frame, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errNoFrames, err)
	}
	type numbered struct {
		n    int
		name string
	}
	var files []numbered
	for _, e := range entries {
		m := frameFileRE.FindStringSubmatch(e.Name())
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		files = append(files, numbered{n, e.Name()})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].n < files[j].n })

	var frames []frame
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(dir, f.name))
		if err != nil {
			continue
		}
		rows := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		frames = append(frames, normalizeFrame(rows, boxW, boxH, align))
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w in %s", errNoFrames, dir)
	}
	return frames, nil
}

// normalizeFrame forces raw file rows into the box: every row padded or
// truncated to boxW cells, missing rows filled with blanks, extra rows
// dropped.
func normalizeFrame(rows []string, boxW, boxH int, align Align) frame {
	out := make(frame, boxH)
	blank := strings.Repeat(" ", boxW)
	for i := 0; i < boxH; i++ {
		if i < len(rows) {
			out[i] = padANSI(rows[i], boxW, align)
		} else {
			out[i] = blank
		}
	}
	return out
}
