package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownCard is returned when a card name cannot be parsed
var ErrUnknownCard = errors.New("unknown card")

// Kind identifies the variant of a card
type Kind uint8

const (
	Numeric   Kind = iota + 1 // numbered card, rank 1-9
	Stop                      // skip the next player's turn
	ChangeDir                 // reverse the direction of play
	Take2                     // next player draws two
	Taki                      // free play of any run in the same color
	Plus                      // play another card
	ChangeColor
	SuperTaki
	King
	CardsBack // face-down placeholder, used for the undealt pile
)

// Card represents a single Taki card. Cards are built only through the
// constructors below, so wild cards never carry a color. The zero value is
// not a valid card.
type Card struct {
	kind  Kind
	rank  uint8 // 1-9 for Numeric, zero otherwise
	color Color // zero unless the kind is colored
}

// NewNumeric returns a numbered card of the given rank and color
func NewNumeric(rank uint8, c Color) Card {
	return Card{kind: Numeric, rank: rank, color: c}
}

// NewAction returns a colored action card. It panics if k is not one of the
// colored action kinds.
func NewAction(k Kind, c Color) Card {
	if !k.colored() || k == Numeric {
		panic(fmt.Sprintf("card: %v is not a colored action", k))
	}
	return Card{kind: k, color: c}
}

// NewWild returns a colorless card. It panics if k is not one of the wild
// kinds.
func NewWild(k Kind) Card {
	if k != ChangeColor && k != SuperTaki && k != King {
		panic(fmt.Sprintf("card: %v is not a wild card", k))
	}
	return Card{kind: k}
}

func NewStop(c Color) Card      { return Card{kind: Stop, color: c} }
func NewChangeDir(c Color) Card { return Card{kind: ChangeDir, color: c} }
func NewTake2(c Color) Card     { return Card{kind: Take2, color: c} }
func NewTaki(c Color) Card      { return Card{kind: Taki, color: c} }
func NewPlus(c Color) Card      { return Card{kind: Plus, color: c} }

// Colorless cards
var (
	ChangeColorCard = Card{kind: ChangeColor}
	SuperTakiCard   = Card{kind: SuperTaki}
	KingCard        = Card{kind: King}
	Back            = Card{kind: CardsBack}
)

// Actions lists the colored action kinds in deck order
var Actions = []Kind{Stop, ChangeDir, Plus, Taki, Take2}

// Wilds lists the colorless playable kinds in deck order
var Wilds = []Kind{ChangeColor, SuperTaki, King}

func (k Kind) colored() bool {
	switch k {
	case Numeric, Stop, ChangeDir, Take2, Taki, Plus:
		return true
	}
	return false
}

// String returns the asset-style name of the kind
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case Stop:
		return "Stop"
	case ChangeDir:
		return "ChangeDir"
	case Take2:
		return "Take2"
	case Taki:
		return "Taki"
	case Plus:
		return "Plus"
	case ChangeColor:
		return "ChangeColor"
	case SuperTaki:
		return "SuperTaki"
	case King:
		return "King"
	case CardsBack:
		return "CardsBack"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Kind returns the card's variant
func (c Card) Kind() Kind {
	return c.kind
}

// Rank returns 1-9 for numbered cards and zero for every other kind
func (c Card) Rank() uint8 {
	return c.rank
}

// Color returns the card's color. ok is false for cards without one.
func (c Card) Color() (col Color, ok bool) {
	return c.color, c.Colored()
}

// Colored reports whether the card carries a color
func (c Card) Colored() bool {
	return c.kind.colored()
}

// Wild reports whether the card is one of the colorless playable cards
func (c Card) Wild() bool {
	switch c.kind {
	case ChangeColor, SuperTaki, King:
		return true
	}
	return false
}

// String returns a human readable name such as "Red 7" or "King"
func (c Card) String() string {
	switch {
	case c.kind == Numeric:
		return fmt.Sprintf("%s %d", c.color, c.rank)
	case c.Colored():
		return fmt.Sprintf("%s %s", c.color, c.kind)
	default:
		return c.kind.String()
	}
}

// AssetName returns the catalog section holding the card's glyph art.
// CardsBack and malformed cards have no catalog entry.
func (c Card) AssetName() (string, bool) {
	switch c.kind {
	case Numeric:
		if c.rank < 1 || c.rank > 9 {
			return "", false
		}
		return "Card" + strconv.Itoa(int(c.rank)), true
	case Stop:
		return "Stop", true
	case ChangeDir:
		return "ChangeDir", true
	case Plus:
		return "Plus", true
	case Take2:
		return "Take2", true
	case Taki:
		return "Taki", true
	case ChangeColor:
		return "ChangeCol", true
	case King:
		return "King", true
	case SuperTaki:
		return "SuperTaki", true
	default:
		return "", false
	}
}

// AssetNames returns every catalog section name a full deck needs
func AssetNames() []string {
	names := make([]string, 0, 17)
	for r := uint8(1); r <= 9; r++ {
		name, _ := NewNumeric(r, Red).AssetName()
		names = append(names, name)
	}
	for _, k := range Actions {
		name, _ := NewAction(k, Red).AssetName()
		names = append(names, name)
	}
	for _, k := range Wilds {
		name, _ := NewWild(k).AssetName()
		names = append(names, name)
	}
	return names
}

// Parse parses a card name such as "red 7", "Blue-Taki", "king" or "back".
func Parse(s string) (Card, error) {
	fields := strings.FieldsFunc(strings.ToLower(strings.TrimSpace(s)), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '.'
	})

	switch len(fields) {
	case 1:
		switch fields[0] {
		case "changecolor", "changecol":
			return ChangeColorCard, nil
		case "supertaki":
			return SuperTakiCard, nil
		case "king":
			return KingCard, nil
		case "back", "cardsback":
			return Back, nil
		}
	case 2:
		col, err := ParseColor(fields[0])
		if err != nil {
			break
		}
		if n, err := strconv.Atoi(fields[1]); err == nil {
			if n < 1 || n > 9 {
				break
			}
			return NewNumeric(uint8(n), col), nil
		}
		for _, k := range Actions {
			if strings.EqualFold(k.String(), fields[1]) {
				return NewAction(k, col), nil
			}
		}
		switch fields[1] {
		case "skip":
			return NewStop(col), nil
		case "reverse":
			return NewChangeDir(col), nil
		}
	}

	return Card{}, fmt.Errorf("%w: %q", ErrUnknownCard, s)
}
