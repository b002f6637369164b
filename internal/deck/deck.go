package deck

import (
	"errors"
	"math/rand/v2"
	"slices"
)

// ErrEmptyDeck is returned when drawing from a deck with no cards left
var ErrEmptyDeck = errors.New("deck is empty")

// Deck is an ordered pile used as a stack: the most recently pushed item is
// the first one drawn. Its length is always the number of items held.
type Deck[T any] struct {
	// items[len-1] is the top of the pile
	items []T
}

// New returns an empty deck
func New[T any]() *Deck[T] {
	return &Deck[T]{}
}

// Push places item on top of the deck
func (d *Deck[T]) Push(item T) {
	d.items = append(d.items, item)
}

// Pop removes and returns the top item. An empty deck is left untouched
// and ErrEmptyDeck is returned.
func (d *Deck[T]) Pop() (T, error) {
	var zero T
	if len(d.items) == 0 {
		return zero, ErrEmptyDeck
	}

	top := d.items[len(d.items)-1]
	d.items[len(d.items)-1] = zero
	d.items = d.items[:len(d.items)-1]
	return top, nil
}

// Peek returns the top item without removing it
func (d *Deck[T]) Peek() (T, error) {
	if len(d.items) == 0 {
		var zero T
		return zero, ErrEmptyDeck
	}
	return d.items[len(d.items)-1], nil
}

// PushMany pushes n separate copies of item. n <= 0 does nothing.
func (d *Deck[T]) PushMany(item T, n int) {
	if n <= 0 {
		return
	}
	d.items = slices.Grow(d.items, n)
	for range n {
		d.items = append(d.items, item)
	}
}

// Shuffle reorders the deck into a uniform random permutation, repeated
// rounds times. rounds <= 0 leaves the order as is.
func (d *Deck[T]) Shuffle(rounds int) {
	d.shuffle(rand.Shuffle, rounds)
}

// ShuffleWith is Shuffle using r as the randomness source
func (d *Deck[T]) ShuffleWith(r *rand.Rand, rounds int) {
	d.shuffle(r.Shuffle, rounds)
}

func (d *Deck[T]) shuffle(shuffleFn func(n int, swap func(i, j int)), rounds int) {
	for range rounds {
		shuffleFn(len(d.items), func(i, j int) {
			d.items[i], d.items[j] = d.items[j], d.items[i]
		})
	}
}

// Len returns the number of items in the deck
func (d *Deck[T]) Len() int {
	return len(d.items)
}

// Items returns a copy of the deck contents, top first
func (d *Deck[T]) Items() []T {
	out := slices.Clone(d.items)
	slices.Reverse(out)
	return out
}
