package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/arcanaland/taki/internal/visual"
)

// TcellColor maps a swatch onto a terminal color
func TcellColor(s visual.Swatch) tcell.Color {
	switch s.Name {
	case "red":
		return tcell.ColorRed
	case "green":
		return tcell.ColorGreen
	case "blue":
		return tcell.ColorBlue
	case "yellow":
		return tcell.ColorYellow
	case "gray":
		return tcell.ColorGray
	}

	r, g, b := s.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// TcellStyle returns the style for line i of a face with the given style
func TcellStyle(style visual.Style, line int) tcell.Style {
	st := tcell.StyleDefault
	if len(style.Swatches) == 0 {
		return st
	}

	c := TcellColor(style.LineSwatch(line))
	if style.Background {
		st = st.Background(c)
	} else {
		st = st.Foreground(c)
	}
	if style.Bold {
		st = st.Bold(true)
	}
	return st
}

// DrawFace paints a face with its top-left corner at (x, y)
func DrawFace(screen tcell.Screen, x, y int, face visual.Face) {
	for i, line := range face.Lines {
		DrawString(screen, x, y+i, line, TcellStyle(face.Style, i))
	}
}

// DrawString paints s starting at (x, y), advancing by each rune's display width
func DrawString(screen tcell.Screen, x, y int, s string, style tcell.Style) int {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		w := runewidth.RuneWidth(r)
		if w == 0 {
			w = 1
		}
		x += w
	}
	return x
}
