package glyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/taki/internal/catalog"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestFromImage_Shape(t *testing.T) {
	out := FromImage(solidImage(40, 60, color.White), Options{})

	lines := catalog.SplitLines(out)
	require.Len(t, lines, DefaultHeight)
	for _, line := range lines {
		assert.Len(t, line, DefaultWidth)
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestFromImage_WhiteIsBlank(t *testing.T) {
	out := FromImage(solidImage(20, 20, color.White), Options{Width: 4, Height: 2})
	assert.Equal(t, "    \n    \n", out)
}

func TestFromImage_BlackIsDense(t *testing.T) {
	out := FromImage(solidImage(20, 20, color.Black), Options{Width: 3, Height: 1})
	assert.Equal(t, "@@@\n", out)
}

func TestFromImage_Invert(t *testing.T) {
	out := FromImage(solidImage(20, 20, color.Black), Options{Width: 3, Height: 1, Invert: true})
	assert.Equal(t, "   \n", out)
}

func TestFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solidImage(14, 24, color.Black)))
	require.NoError(t, f.Close())

	out, err := FromFile(path, Options{})
	require.NoError(t, err)
	assert.Len(t, catalog.SplitLines(out), DefaultHeight)
}

func TestFromFile_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	require.NoError(t, os.WriteFile(path, []byte("not a png"), 0644))

	_, err := FromFile(path, Options{})
	assert.Error(t, err)
}
