package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetName(t *testing.T) {
	cases := []struct {
		card Card
		want string
	}{
		{NewNumeric(1, Red), "Card1"},
		{NewNumeric(9, Yellow), "Card9"},
		{NewStop(Green), "Stop"},
		{NewChangeDir(Blue), "ChangeDir"},
		{NewPlus(Red), "Plus"},
		{NewTake2(Red), "Take2"},
		{NewTaki(Yellow), "Taki"},
		{ChangeColorCard, "ChangeCol"},
		{KingCard, "King"},
		{SuperTakiCard, "SuperTaki"},
	}

	for _, tc := range cases {
		name, ok := tc.card.AssetName()
		assert.True(t, ok, tc.card.String())
		assert.Equal(t, tc.want, name)
	}
}

func TestAssetName_NoEntry(t *testing.T) {
	_, ok := Back.AssetName()
	assert.False(t, ok)

	_, ok = NewNumeric(0, Red).AssetName()
	assert.False(t, ok)

	_, ok = NewNumeric(10, Red).AssetName()
	assert.False(t, ok)

	_, ok = Card{}.AssetName()
	assert.False(t, ok)
}

func TestAssetNames(t *testing.T) {
	names := AssetNames()

	assert.Len(t, names, 17)
	assert.Contains(t, names, "Card5")
	assert.Contains(t, names, "ChangeCol")
	assert.NotContains(t, names, "CardsBack")
}

func TestWildsAreColorless(t *testing.T) {
	for _, k := range Wilds {
		c := NewWild(k)
		assert.False(t, c.Colored(), k.String())
		assert.True(t, c.Wild(), k.String())
	}
	assert.False(t, Back.Colored())
	assert.False(t, Back.Wild())
	assert.True(t, NewTaki(Red).Colored())
}

func TestNewAction_RejectsWild(t *testing.T) {
	assert.Panics(t, func() { NewAction(King, Red) })
	assert.Panics(t, func() { NewAction(Numeric, Red) })
	assert.NotPanics(t, func() { NewAction(Taki, Blue) })
}

func TestString(t *testing.T) {
	assert.Equal(t, "Red 7", NewNumeric(7, Red).String())
	assert.Equal(t, "Blue Taki", NewTaki(Blue).String())
	assert.Equal(t, "King", KingCard.String())
}

func TestParse(t *testing.T) {
	cases := map[string]Card{
		"red 7":       NewNumeric(7, Red),
		"Yellow-1":    NewNumeric(1, Yellow),
		"blue_taki":   NewTaki(Blue),
		"green stop":  NewStop(Green),
		"green skip":  NewStop(Green),
		"red reverse": NewChangeDir(Red),
		"Red Take2":   NewTake2(Red),
		"king":        KingCard,
		"ChangeColor": ChangeColorCard,
		"supertaki":   SuperTakiCard,
		"back":        Back,
	}

	for in, want := range cases {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "purple 3", "red 0", "red 10", "red king", "queen"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrUnknownCard, in)
	}
}

func TestRandomColor(t *testing.T) {
	seen := map[Color]bool{}
	for range 1000 {
		seen[RandomColor()] = true
	}
	assert.Len(t, seen, 4)
}

func TestColorString_OutOfRange(t *testing.T) {
	assert.Panics(t, func() { _ = Color(9).String() })
}

func TestAccessors(t *testing.T) {
	c := NewNumeric(7, Blue)
	assert.Equal(t, Numeric, c.Kind())
	assert.Equal(t, uint8(7), c.Rank())
	col, ok := c.Color()
	assert.True(t, ok)
	assert.Equal(t, Blue, col)

	_, ok = KingCard.Color()
	assert.False(t, ok)
	assert.Equal(t, uint8(0), NewTaki(Green).Rank())
}

func TestNewWild_RejectsColoredKinds(t *testing.T) {
	assert.Panics(t, func() { NewWild(Stop) })
	assert.Panics(t, func() { NewWild(CardsBack) })
	assert.Equal(t, KingCard, NewWild(King))
}
