package game

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/deck"
)

func counts(cards []card.Card) map[card.Card]int {
	m := make(map[card.Card]int)
	for _, c := range cards {
		m[c]++
	}
	return m
}

func TestNewStandardDeck_Size(t *testing.T) {
	bank := NewStandardDeck()
	assert.Equal(t, StandardDeckSize, bank.Len())

	bank.Shuffle(DefaultShuffleRounds)
	assert.Equal(t, StandardDeckSize, bank.Len())
}

func TestNewStandardDeck_Composition(t *testing.T) {
	m := counts(NewStandardDeck().Items())

	for _, col := range card.Colors {
		for r := uint8(1); r <= 9; r++ {
			assert.Equal(t, 2, m[card.NewNumeric(r, col)])
		}
		assert.Equal(t, 2, m[card.NewStop(col)])
		assert.Equal(t, 2, m[card.NewChangeDir(col)])
		assert.Equal(t, 2, m[card.NewPlus(col)])
		assert.Equal(t, 2, m[card.NewTaki(col)])
		assert.Equal(t, 2, m[card.NewTake2(col)])
	}
	assert.Equal(t, 2, m[card.ChangeColorCard])
	assert.Equal(t, 2, m[card.SuperTakiCard])
	assert.Equal(t, 2, m[card.KingCard])
	assert.Zero(t, m[card.Back])

	colored := 0
	for c, n := range m {
		if c.Colored() {
			colored += n
		}
	}
	assert.Equal(t, 112, colored)
}

func TestComposition_Total(t *testing.T) {
	total := 0
	for _, e := range Composition() {
		total += e.Copies
	}
	assert.Equal(t, StandardDeckSize, total)
}

func TestShuffle_PreservesStandardDeck(t *testing.T) {
	bank := NewStandardDeck()
	before := counts(bank.Items())

	bank.ShuffleWith(rand.New(rand.NewPCG(5, 5)), 5)
	assert.Equal(t, before, counts(bank.Items()))
}

func TestNewPlayer(t *testing.T) {
	for range 100 {
		p := NewPlayer()
		assert.GreaterOrEqual(t, p.ID, 0)
		assert.Less(t, p.ID, 100)
		assert.Equal(t, 0, p.HandSize())
	}
}

func TestSetup_Defaults(t *testing.T) {
	g, err := Setup(Options{})
	require.NoError(t, err)

	require.Len(t, g.Players, DefaultPlayers)
	assert.Equal(t, DefaultHandSize, g.Players[0].HandSize())
	assert.Equal(t, StandardDeckSize-DefaultHandSize, g.Bank.Len())
}

func TestSetup_ConservesCards(t *testing.T) {
	g, err := Setup(Options{Players: 4, HandSize: 7, Rand: rand.New(rand.NewPCG(1, 1))})
	require.NoError(t, err)

	all := g.Bank.Items()
	for _, p := range g.Players {
		assert.Equal(t, 7, p.HandSize())
		all = append(all, p.Hand.Items()...)
	}
	assert.Equal(t, counts(NewStandardDeck().Items()), counts(all))
}

func TestSetup_DealsFromTop(t *testing.T) {
	seed := func() *rand.Rand { return rand.New(rand.NewPCG(11, 12)) }

	bank := NewStandardDeck()
	bank.ShuffleWith(seed(), 2)
	top := bank.Items()[:3]

	g, err := Setup(Options{Players: 1, HandSize: 3, ShuffleRounds: 2, Rand: seed()})
	require.NoError(t, err)

	// The first card dealt ends up at the bottom of the hand
	hand := g.Players[0].Hand.Items()
	assert.Equal(t, []card.Card{top[2], top[1], top[0]}, hand)
}

func TestSetup_BankTooSmall(t *testing.T) {
	_, err := Setup(Options{Players: 10, HandSize: 12})
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
}

func TestSetup_NegativePlayers(t *testing.T) {
	_, err := Setup(Options{Players: -1})
	assert.ErrorIs(t, err, ErrNoPlayers)
}

func TestSetup_NegativeHandSize(t *testing.T) {
	_, err := Setup(Options{HandSize: -3})
	assert.ErrorIs(t, err, ErrHandSize)
}

func TestSetup_ZeroMeansDefault(t *testing.T) {
	g, err := Setup(Options{Players: 0, HandSize: 0})
	require.NoError(t, err)
	assert.Len(t, g.Players, DefaultPlayers)
	assert.Equal(t, DefaultHandSize, g.Players[0].HandSize())
}

func TestDraw_EmptyBank(t *testing.T) {
	g := &Game{Bank: deck.New[card.Card]()}
	p := NewPlayer()

	err := g.Draw(p)
	assert.ErrorIs(t, err, deck.ErrEmptyDeck)
	assert.Equal(t, 0, p.HandSize())
	assert.Equal(t, 0, g.Bank.Len())
}

func TestDraw_MovesTopCard(t *testing.T) {
	g := &Game{Bank: deck.New[card.Card]()}
	g.Bank.Push(card.NewNumeric(1, card.Red))
	g.Bank.Push(card.KingCard)
	p := NewPlayer()

	require.NoError(t, g.Draw(p))
	top, err := p.Hand.Peek()
	require.NoError(t, err)
	assert.Equal(t, card.KingCard, top)
	assert.Equal(t, 1, g.Bank.Len())
}
