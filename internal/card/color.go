package card

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Color is one of the four suit colors of a colored card
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
)

// Colors lists every color in deck order
var Colors = []Color{Red, Green, Blue, Yellow}

// RandomColor picks one of the four colors uniformly
func RandomColor() Color {
	return Colors[rand.IntN(len(Colors))]
}

func (c Color) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Yellow:
		return "Yellow"
	default:
		panic(fmt.Sprintf("card: color index %d out of range", uint8(c)))
	}
}

// ParseColor parses a color name, ignoring case
func ParseColor(s string) (Color, error) {
	for _, c := range Colors {
		if strings.EqualFold(c.String(), s) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: color %q", ErrUnknownCard, s)
}
