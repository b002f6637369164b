package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arcanaland/taki/internal/card"
	"github.com/arcanaland/taki/internal/catalog"
	"github.com/arcanaland/taki/internal/game"
	"github.com/arcanaland/taki/internal/visual"
)

const (
	// GlyphHeight is the number of lines a card glyph is drawn with
	GlyphHeight = visual.PaletteSize
	// GlyphWidth is the widest line a card slot can hold
	GlyphWidth = 7
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	AssetPath string
	Results   ValidationResults

	catalog *catalog.Catalog
}

// NewValidator returns a validator for the asset file at assetPath
func NewValidator(assetPath string) *Validator {
	return &Validator{
		AssetPath: assetPath,
		Results:   ValidationResults{},
	}
}

// NewCatalogValidator returns a validator for an already loaded catalog
func NewCatalogValidator(name string, cat *catalog.Catalog) *Validator {
	return &Validator{
		AssetPath: name,
		Results:   ValidationResults{},
		catalog:   cat,
	}
}

// Validate runs every check. The returned error is set only when the asset
// file could not be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if v.catalog == nil {
		cat, err := catalog.Load(v.AssetPath)
		if err != nil {
			return v.Results, err
		}
		v.catalog = cat
	}

	v.validateRequiredAssets()
	v.validateEmptySections()
	v.validateGlyphSize()
	v.validateUnknownSections()
	v.validateStandardDeck()

	return v.Results, nil
}

// validateRequiredAssets checks that every card asset has a section
func (v *Validator) validateRequiredAssets() {
	missing := []string{}
	for _, name := range card.AssetNames() {
		if !v.catalog.Has(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("missing card assets: %s", strings.Join(missing, ", ")))
	}
}

// validateEmptySections warns about sections with no glyph lines
func (v *Validator) validateEmptySections() {
	for _, s := range v.catalog.Sections() {
		if s.Glyph == "" {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("section [%s] is empty", s.Name))
		}
	}
}

// validateGlyphSize warns about glyphs that will not fit a card slot
func (v *Validator) validateGlyphSize() {
	for _, s := range v.catalog.Sections() {
		if s.Glyph == "" {
			continue // Already warned
		}

		lines := catalog.SplitLines(s.Glyph)
		if len(lines) != GlyphHeight {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("section [%s] has %d lines, expected %d", s.Name, len(lines), GlyphHeight))
		}

		for i, line := range lines {
			if w := runewidth.StringWidth(line); w > GlyphWidth {
				v.Results.Warnings = append(v.Results.Warnings,
					fmt.Sprintf("section [%s] line %d is %d columns wide, max %d", s.Name, i+1, w, GlyphWidth))
			}
		}
	}
}

// validateUnknownSections warns about sections no card uses
func (v *Validator) validateUnknownSections() {
	known := make(map[string]bool)
	for _, name := range card.AssetNames() {
		known[name] = true
	}

	unknown := []string{}
	for _, name := range v.catalog.Names() {
		if !known[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)

	if len(unknown) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unused sections: %s", strings.Join(unknown, ", ")))
	}
}

// validateStandardDeck resolves every distinct card of the standard deck
func (v *Validator) validateStandardDeck() {
	res := visual.NewResolver(v.catalog)
	failed := 0
	for _, e := range game.Composition() {
		if _, err := res.Resolve(e.Card); err != nil {
			failed += e.Copies
		}
	}

	if failed > 0 {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("%d of %d cards in the standard deck cannot be drawn", failed, game.StandardDeckSize))
	}
}
