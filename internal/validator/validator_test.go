package validator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/taki/assets"
	"github.com/arcanaland/taki/internal/catalog"
)

func TestValidate_Embedded(t *testing.T) {
	cat, err := catalog.LoadFS(assets.FS(), assets.DefaultFile)
	require.NoError(t, err)

	results, err := NewCatalogValidator(assets.DefaultFile, cat).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid(), results.Errors)
	assert.Empty(t, results.Warnings)
}

func TestValidate_MissingKing(t *testing.T) {
	src, err := catalog.LoadFS(assets.FS(), assets.DefaultFile)
	require.NoError(t, err)

	var b strings.Builder
	for _, s := range src.Sections() {
		if s.Name != "King" {
			b.WriteString("[" + s.Name + "]\n" + s.Glyph)
		}
	}

	path := filepath.Join(t.TempDir(), "cards.txt")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0644))

	results, err := NewValidator(path).Validate()
	require.NoError(t, err)
	assert.False(t, results.Valid())
	require.Len(t, results.Errors, 2)
	assert.Contains(t, results.Errors[0], "King")
	assert.Contains(t, results.Errors[1], "2 of 118")
}

func TestValidate_Warnings(t *testing.T) {
	src, err := catalog.LoadFS(assets.FS(), assets.DefaultFile)
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, catalog.Write(&b, src.Sections()))
	b.WriteString("[Extra]\n[Card1]\ntoo wide for a card\n")

	cat, err := catalog.Parse(strings.NewReader(b.String()))
	require.NoError(t, err)

	results, err := NewCatalogValidator("test", cat).Validate()
	require.NoError(t, err)
	assert.True(t, results.Valid(), results.Errors)

	joined := strings.Join(results.Warnings, "\n")
	assert.Contains(t, joined, "section [Extra] is empty")
	assert.Contains(t, joined, "section [Card1] has 1 lines, expected 6")
	assert.Contains(t, joined, "section [Card1] line 1 is 19 columns wide")
	assert.Contains(t, joined, "unused sections: Extra")
}

func TestValidate_MissingFile(t *testing.T) {
	_, err := NewValidator(filepath.Join(t.TempDir(), "missing.txt")).Validate()
	assert.ErrorIs(t, err, catalog.ErrAssetFile)
}
