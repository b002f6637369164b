package visual

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/taki/internal/card"
)

// Kind tells a renderer how to apply a style's swatches
type Kind uint8

const (
	Solid        Kind = iota // one swatch for every line
	Rotating                 // one swatch per line
	BoldRotating             // one bright swatch per line, bold
)

func (k Kind) String() string {
	switch k {
	case Solid:
		return "solid"
	case Rotating:
		return "rotating"
	case BoldRotating:
		return "bold-rotating"
	default:
		return "unknown"
	}
}

// PaletteSize is the number of swatches in a rotating style, one per
// line of a standard card glyph
const PaletteSize = 6

// Swatch is either a named terminal palette color or a free RGB color
type Swatch struct {
	Name string // palette name (red, green, blue, yellow, gray); empty for RGB
	RGB  colorful.Color
}

// Named palette swatches. RGB holds the xterm value, for renderers without
// a palette.
var (
	SwatchRed    = Swatch{Name: "red", RGB: colorful.Color{R: 205.0 / 255}}
	SwatchGreen  = Swatch{Name: "green", RGB: colorful.Color{G: 205.0 / 255}}
	SwatchBlue   = Swatch{Name: "blue", RGB: colorful.Color{B: 238.0 / 255}}
	SwatchYellow = Swatch{Name: "yellow", RGB: colorful.Color{R: 205.0 / 255, G: 205.0 / 255}}
	SwatchGray   = Swatch{Name: "gray", RGB: colorful.Color{R: 229.0 / 255, G: 229.0 / 255, B: 229.0 / 255}}
)

// KingAccent is the fixed orange of the King card
var KingAccent = RGB(255, 127, 0)

// RGB returns a free color swatch from 8-bit channels
func RGB(r, g, b uint8) Swatch {
	return Swatch{RGB: colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}}
}

// Named reports whether the swatch is a palette entry
func (s Swatch) Named() bool {
	return s.Name != ""
}

// RGB255 returns the swatch's 8-bit channels
func (s Swatch) RGB255() (uint8, uint8, uint8) {
	return s.RGB.RGB255()
}

// Hex returns the swatch as #rrggbb
func (s Swatch) Hex() string {
	return s.RGB.Hex()
}

// String returns the palette name, or the hex value for free colors
func (s Swatch) String() string {
	if s.Named() {
		return s.Name
	}
	return s.Hex()
}

// PaletteSwatch maps a card color onto the fixed palette
func PaletteSwatch(c card.Color) Swatch {
	switch c {
	case card.Red:
		return SwatchRed
	case card.Green:
		return SwatchGreen
	case card.Blue:
		return SwatchBlue
	case card.Yellow:
		return SwatchYellow
	default:
		panic("visual: color out of range")
	}
}

// Style describes how a card's glyph lines are colored
type Style struct {
	Kind       Kind
	Swatches   []Swatch
	Bold       bool
	Background bool // swatches fill the background instead of the glyph
}

// LineSwatch returns the swatch for glyph line i. Rotating styles wrap
// around when a glyph is taller than the palette.
func (s Style) LineSwatch(i int) Swatch {
	if len(s.Swatches) == 0 {
		return Swatch{}
	}
	if s.Kind == Solid {
		return s.Swatches[0]
	}
	return s.Swatches[i%len(s.Swatches)]
}

// Equal reports whether two styles would paint identically
func (s Style) Equal(o Style) bool {
	if s.Kind != o.Kind || s.Bold != o.Bold || s.Background != o.Background || len(s.Swatches) != len(o.Swatches) {
		return false
	}
	for i := range s.Swatches {
		if s.Swatches[i].Name != o.Swatches[i].Name || s.Swatches[i].Hex() != o.Swatches[i].Hex() {
			return false
		}
	}
	return true
}

func solid(s Swatch) Style {
	return Style{Kind: Solid, Swatches: []Swatch{s}}
}
