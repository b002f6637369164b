// Package glyph converts raster images into plain text card glyphs.
package glyph

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// Ramp orders characters from lightest to darkest ink
const Ramp = " .:-=+*#%@"

const (
	DefaultWidth  = 7
	DefaultHeight = 6
)

// Options controls the conversion
type Options struct {
	Width  int
	Height int
	Invert bool // dark pixels become light ink, for images on a black background
}

// FromFile decodes the image at path and converts it
func FromFile(path string, opts Options) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img, opts), nil
}

// FromImage converts img into a glyph block of opts.Height lines, each
// opts.Width characters, every line terminated by a newline
func FromImage(img image.Image, opts Options) string {
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = DefaultHeight
	}

	// Two pixel rows per character row, as terminal cells are about twice
	// as tall as they are wide
	resized := resize.Resize(uint(opts.Width), uint(opts.Height*2), img, resize.Lanczos3)

	var b strings.Builder
	for y := 0; y < opts.Height*2; y += 2 {
		for x := 0; x < opts.Width; x++ {
			top := lightness(getColorAt(resized, x, y))
			bottom := lightness(getColorAt(resized, x, y+1))
			b.WriteByte(inkFor((top+bottom)/2, opts.Invert))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// lightness returns the CIE L* of c in [0, 1]
func lightness(c color.Color) float64 {
	col, ok := colorful.MakeColor(c)
	if !ok {
		// Fully transparent pixel, treat as background
		return 1
	}
	l, _, _ := col.Lab()
	return clamp(l)
}

func inkFor(l float64, invert bool) byte {
	ink := 1 - l
	if invert {
		ink = l
	}
	i := int(ink * float64(len(Ramp)-1))
	return Ramp[i]
}

// getColorAt returns the color at a specific coordinate
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= 0 && x < bounds.Dx() && y >= 0 && y < bounds.Dy() {
		return img.At(bounds.Min.X+x, bounds.Min.Y+y)
	}
	return color.White
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
