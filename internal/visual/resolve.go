package visual

import (
	"fmt"
	"math/rand/v2"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/catalog"
)

// BackGlyph is the face-down card art. It is drawn from here rather than
// the asset file so the bank can always be shown.
var BackGlyph = []string{
	"░░░░░░░",
	"░░░░░░░",
	"░TAKI!░",
	"░░░░░░░",
	"░░░░░░░",
	"░░░░░░░",
}

// Face is a resolved card: the glyph lines and how to color them
type Face struct {
	Lines []string
	Style Style
}

// Resolver turns cards into faces using an asset catalog. Wild card styles
// are drawn fresh on every call.
type Resolver struct {
	catalog *catalog.Catalog
	rng     *rand.Rand
}

// Option configures a Resolver
type Option func(*Resolver)

// WithRand makes the resolver draw wild colors from r
func WithRand(r *rand.Rand) Option {
	return func(res *Resolver) {
		res.rng = r
	}
}

// NewResolver returns a resolver reading glyphs from cat
func NewResolver(cat *catalog.Catalog, opts ...Option) *Resolver {
	r := &Resolver{catalog: cat}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve is a convenience for NewResolver(cat).Resolve(c)
func Resolve(cat *catalog.Catalog, c card.Card) (Face, error) {
	return NewResolver(cat).Resolve(c)
}

// Resolve returns the glyph lines and style of c. A card whose asset is
// missing from the catalog fails with catalog.ErrAssetNotFound.
func (r *Resolver) Resolve(c card.Card) (Face, error) {
	lines, err := r.lines(c)
	if err != nil {
		return Face{}, err
	}

	style, err := r.Style(c)
	if err != nil {
		return Face{}, err
	}

	return Face{Lines: lines, Style: style}, nil
}

func (r *Resolver) lines(c card.Card) ([]string, error) {
	if c.Kind() == card.CardsBack {
		return append([]string(nil), BackGlyph...), nil
	}

	name, ok := c.AssetName()
	if !ok {
		return nil, fmt.Errorf("%w: no asset for %s", catalog.ErrAssetNotFound, c)
	}
	return r.catalog.Lines(name)
}

// Style picks the card's style. It does not touch the catalog.
func (r *Resolver) Style(c card.Card) (Style, error) {
	switch c.Kind() {
	case card.Numeric, card.ChangeDir, card.Take2, card.Plus, card.Taki, card.Stop:
		col, _ := c.Color()
		return solid(PaletteSwatch(col)), nil

	case card.King:
		return solid(KingAccent), nil

	case card.ChangeColor:
		return Style{Kind: Rotating, Swatches: r.randomSwatches(0, 255)}, nil

	case card.SuperTaki:
		return Style{Kind: BoldRotating, Swatches: r.randomSwatches(127, 255), Bold: true}, nil

	case card.CardsBack:
		s := solid(SwatchGray)
		s.Background = true
		return s, nil
	}

	return Style{}, fmt.Errorf("%w: no style for %s", catalog.ErrAssetNotFound, c)
}

// randomSwatches draws PaletteSize colors with every channel in [lo, hi]
func (r *Resolver) randomSwatches(lo, hi int) []Swatch {
	swatches := make([]Swatch, PaletteSize)
	for i := range swatches {
		swatches[i] = RGB(r.channel(lo, hi), r.channel(lo, hi), r.channel(lo, hi))
	}
	return swatches
}

func (r *Resolver) channel(lo, hi int) uint8 {
	span := hi - lo + 1
	if r.rng != nil {
		return uint8(lo + r.rng.IntN(span))
	}
	return uint8(lo + rand.IntN(span))
}
