package deck

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain[T any](t *testing.T, d *Deck[T]) []T {
	t.Helper()
	var out []T
	for d.Len() > 0 {
		v, err := d.Pop()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestNew_Empty(t *testing.T) {
	d := New[int]()
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Items())
}

func TestPushPop_LIFO(t *testing.T) {
	d := New[int]()
	for i := 1; i <= 10; i++ {
		d.Push(i)
	}
	assert.Equal(t, 10, d.Len())

	assert.Equal(t, []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, drain(t, d))
	assert.Equal(t, 0, d.Len())
}

func TestPop_Empty(t *testing.T) {
	d := New[string]()

	v, err := d.Pop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, "", v)
	assert.Equal(t, 0, d.Len())

	// A second empty pop must not push the length below zero
	_, err = d.Pop()
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Equal(t, 0, d.Len())

	d.Push("a")
	assert.Equal(t, 1, d.Len())
}

func TestPeek(t *testing.T) {
	d := New[int]()
	_, err := d.Peek()
	assert.ErrorIs(t, err, ErrEmptyDeck)

	d.Push(1)
	d.Push(2)
	top, err := d.Peek()
	require.NoError(t, err)
	assert.Equal(t, 2, top)
	assert.Equal(t, 2, d.Len())
}

func TestPushMany(t *testing.T) {
	d := New[string]()
	d.Push("bottom")
	d.PushMany("x", 3)

	assert.Equal(t, 4, d.Len())
	for range 3 {
		v, err := d.Pop()
		require.NoError(t, err)
		assert.Equal(t, "x", v)
	}
	v, _ := d.Pop()
	assert.Equal(t, "bottom", v)
}

func TestPushMany_NonPositive(t *testing.T) {
	d := New[int]()
	d.PushMany(7, 0)
	d.PushMany(7, -3)
	assert.Equal(t, 0, d.Len())
}

func TestLenMatchesDrain(t *testing.T) {
	d := New[int]()
	d.PushMany(1, 5)
	d.Push(2)
	_, _ = d.Pop()
	d.PushMany(3, 2)

	n := d.Len()
	assert.Len(t, drain(t, d), n)
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	d := New[int]()
	for i := range 50 {
		d.PushMany(i%7, 2)
	}
	before := d.Items()

	for _, rounds := range []int{1, 2, 5} {
		d.Shuffle(rounds)
		assert.Equal(t, len(before), d.Len())

		after := d.Items()
		a, b := slices.Clone(before), slices.Clone(after)
		slices.Sort(a)
		slices.Sort(b)
		assert.Equal(t, a, b)
	}
}

func TestShuffle_ZeroRoundsKeepsOrder(t *testing.T) {
	d := New[int]()
	for i := range 20 {
		d.Push(i)
	}
	before := d.Items()

	d.Shuffle(0)
	assert.Equal(t, before, d.Items())
}

func TestShuffle_ChangesOrder(t *testing.T) {
	d := New[int]()
	for i := range 100 {
		d.Push(i)
	}
	before := d.Items()

	d.ShuffleWith(rand.New(rand.NewPCG(1, 2)), 1)
	assert.NotEqual(t, before, d.Items())
}

func TestShuffleWith_Deterministic(t *testing.T) {
	build := func() *Deck[int] {
		d := New[int]()
		for i := range 30 {
			d.Push(i)
		}
		return d
	}

	a, b := build(), build()
	a.ShuffleWith(rand.New(rand.NewPCG(42, 7)), 5)
	b.ShuffleWith(rand.New(rand.NewPCG(42, 7)), 5)
	assert.Equal(t, a.Items(), b.Items())
}

func TestItems_TopFirstCopy(t *testing.T) {
	d := New[int]()
	d.Push(1)
	d.Push(2)
	d.Push(3)

	items := d.Items()
	assert.Equal(t, []int{3, 2, 1}, items)

	items[0] = 99
	top, _ := d.Peek()
	assert.Equal(t, 3, top)
}
