package main

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
	"strings"
)

// asciiRamp maps luminance onto glyphs, darkest first.
const asciiRamp = "@%#*+=-:. "

type genOptions struct {
	input   string
	outDir  string
	boxW    int
	boxH    int
	color   bool
	invert  bool
	verbose bool
}

// runGen decodes the source GIF and writes one frame_N.txt per frame,
// clearing out whatever frames a previous run left behind so the
// animation never mixes generations.
func runGen(opts genOptions) error {
	f, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("opening %s: %w", opts.input, err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", opts.input, err)
	}
	if len(g.Image) == 0 {
		return fmt.Errorf("%s has no frames", opts.input)
	}

	if err := os.MkdirAll(opts.outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", opts.outDir, err)
	}
	removed, err := cleanFrameFiles(opts.outDir)
	if err != nil {
		return err
	}
	if removed > 0 {
		logv("removed %d stale frame files from %s", removed, opts.outDir)
	}

	// GIF frames can be partial rectangles; composite each one over the
	// previous canvas state before sampling.
	bounds := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if bounds.Empty() {
		bounds = g.Image[0].Bounds()
	}
	canvas := image.NewRGBA(bounds)
	for i, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		rows := renderFrame(canvas, opts)
		path := filepath.Join(opts.outDir, fmt.Sprintf("frame_%d.txt", i))
		if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	fmt.Printf("generated %d frames into %s\n", len(g.Image), opts.outDir)
	return nil
}

// cleanFrameFiles deletes existing frame_*.txt files and reports how
// many went away.
func cleanFrameFiles(dir string) (int, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "frame_*.txt"))
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return removed, fmt.Errorf("removing %s: %w", m, err)
		}
		removed++
	}
	return removed, nil
}

// renderFrame samples the canvas down to boxW x boxH characters,
// picking a ramp glyph per cell by luminance.
func renderFrame(img image.Image, opts genOptions) []string {
	b := img.Bounds()
	srcW, srcH := b.Dx(), b.Dy()
	rows := make([]string, 0, opts.boxH)
	for y := 0; y < opts.boxH; y++ {
		var sb strings.Builder
		for x := 0; x < opts.boxW; x++ {
			sx := b.Min.X + x*srcW/opts.boxW
			sy := b.Min.Y + y*srcH/opts.boxH
			r, g, bl, _ := img.At(sx, sy).RGBA()
			r8, g8, b8 := r>>8, g>>8, bl>>8
			lum := (299*r8 + 587*g8 + 114*b8) / 1000
			if opts.invert {
				lum = 255 - lum
			}
			ch := rampGlyph(int(lum))
			if opts.color && ch != ' ' {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm%c\x1b[0m", r8, g8, b8, ch)
			} else {
				sb.WriteByte(ch)
			}
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// rampGlyph maps a 0-255 luminance to one ramp character.
func rampGlyph(lum int) byte {
	if lum < 0 {
		lum = 0
	}
	if lum > 255 {
		lum = 255
	}
	return asciiRamp[lum*(len(asciiRamp)-1)/255]
}
