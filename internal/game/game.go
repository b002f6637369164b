package game

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/deck"
)

const (
	DefaultShuffleRounds = 5
	DefaultHandSize      = 8
	DefaultPlayers       = 1

	// StandardDeckSize is the number of cards NewStandardDeck builds
	StandardDeckSize = 118
)

var (
	// ErrNoPlayers is returned when a game is set up without players
	ErrNoPlayers = errors.New("a game needs at least one player")
	// ErrHandSize is returned for a negative hand size
	ErrHandSize = errors.New("hand size must not be negative")
)

// Pile is a deck of Taki cards
type Pile = deck.Deck[card.Card]

// Entry is one line of the standard deck composition
type Entry struct {
	Card   card.Card
	Copies int
}

// Composition returns the standard deck as (card, copies) entries in the
// order they are pushed into the bank
func Composition() []Entry {
	entries := make([]Entry, 0, 4*(9+len(card.Actions))+len(card.Wilds))
	for _, c := range card.Colors {
		for r := uint8(1); r <= 9; r++ {
			entries = append(entries, Entry{Card: card.NewNumeric(r, c), Copies: 2})
		}
		for _, k := range card.Actions {
			entries = append(entries, Entry{Card: card.NewAction(k, c), Copies: 2})
		}
	}
	for _, k := range card.Wilds {
		entries = append(entries, Entry{Card: card.NewWild(k), Copies: 2})
	}
	return entries
}

// NewStandardDeck builds the unshuffled 118 card bank
func NewStandardDeck() *Pile {
	bank := deck.New[card.Card]()
	for _, e := range Composition() {
		bank.PushMany(e.Card, e.Copies)
	}
	return bank
}

// Player holds a hand of cards. IDs are random and may collide.
type Player struct {
	ID   int
	Hand *Pile
}

// NewPlayer returns a player with an empty hand and a random ID in 0..99
func NewPlayer() *Player {
	return &Player{
		ID:   rand.IntN(100),
		Hand: deck.New[card.Card](),
	}
}

// HandSize returns the number of cards the player holds
func (p *Player) HandSize() int {
	return p.Hand.Len()
}

// Options controls game setup. A zero field means "unset" and takes the
// package default (DefaultPlayers, DefaultHandSize, DefaultShuffleRounds);
// negative values are rejected by Setup.
type Options struct {
	Players       int
	HandSize      int
	ShuffleRounds int

	// Rand seeds the bank shuffle; nil uses the global source
	Rand *rand.Rand
}

func (o Options) withDefaults() Options {
	if o.Players == 0 {
		o.Players = DefaultPlayers
	}
	if o.HandSize == 0 {
		o.HandSize = DefaultHandSize
	}
	if o.ShuffleRounds == 0 {
		o.ShuffleRounds = DefaultShuffleRounds
	}
	return o
}

// Game is the bank of undealt cards and the players' hands
type Game struct {
	Bank    *Pile
	Players []*Player
}

// Setup builds and shuffles the standard deck, then deals each player
// opts.HandSize cards from it
func Setup(opts Options) (*Game, error) {
	if opts.Players < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNoPlayers, opts.Players)
	}
	if opts.HandSize < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrHandSize, opts.HandSize)
	}
	opts = opts.withDefaults()

	bank := NewStandardDeck()
	if opts.Rand != nil {
		bank.ShuffleWith(opts.Rand, opts.ShuffleRounds)
	} else {
		bank.Shuffle(opts.ShuffleRounds)
	}

	g := &Game{Bank: bank}
	for range opts.Players {
		g.Players = append(g.Players, NewPlayer())
	}

	if err := g.Deal(opts.HandSize); err != nil {
		return nil, err
	}
	return g, nil
}

// Deal gives every player n cards from the bank, one at a time in turn
func (g *Game) Deal(n int) error {
	for i := range n {
		for _, p := range g.Players {
			if err := g.Draw(p); err != nil {
				return fmt.Errorf("dealing card %d to player %d: %w", i+1, p.ID, err)
			}
		}
	}
	return nil
}

// Draw moves the top card of the bank into p's hand
func (g *Game) Draw(p *Player) error {
	c, err := g.Bank.Pop()
	if err != nil {
		return err
	}
	p.Hand.Push(c)
	return nil
}
