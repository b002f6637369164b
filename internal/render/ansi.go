package render

import (
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/arcanaland/taki/internal/visual"
)

// ANSIColor returns the fatih/color printer for line i of a style. When
// force is set, color is emitted even if stdout is not a terminal.
func ANSIColor(style visual.Style, line int, force bool) *colorize.Color {
	c := colorize.New()
	if len(style.Swatches) > 0 {
		sw := style.LineSwatch(line)
		if attr, ok := paletteAttr(sw.Name, style.Background); ok {
			c.Add(attr)
		} else {
			// 24-bit SGR: 38;2;r;g;b or 48;2;r;g;b
			r, g, b := sw.RGB255()
			mode := colorize.Attribute(38)
			if style.Background {
				mode = 48
			}
			c.Add(mode, 2, colorize.Attribute(r), colorize.Attribute(g), colorize.Attribute(b))
		}
	}
	if style.Bold {
		c.Add(colorize.Bold)
	}
	if force {
		c.EnableColor()
	}
	return c
}

func paletteAttr(name string, background bool) (colorize.Attribute, bool) {
	var fg, bg colorize.Attribute
	switch name {
	case "red":
		fg, bg = colorize.FgRed, colorize.BgRed
	case "green":
		fg, bg = colorize.FgGreen, colorize.BgGreen
	case "blue":
		fg, bg = colorize.FgBlue, colorize.BgBlue
	case "yellow":
		fg, bg = colorize.FgYellow, colorize.BgYellow
	case "gray":
		fg, bg = colorize.FgWhite, colorize.BgWhite
	default:
		return 0, false
	}
	if background {
		return bg, true
	}
	return fg, true
}

// ANSI returns the face's lines wrapped in color escape sequences
func ANSI(face visual.Face, force bool) []string {
	out := make([]string, len(face.Lines))
	for i, line := range face.Lines {
		out[i] = ANSIColor(face.Style, i, force).Sprint(line)
	}
	return out
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}

// VisibleWidth returns the number of terminal columns s occupies
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
