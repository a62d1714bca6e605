package placeholders

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGradientEnds(t *testing.T) {
	top := color.RGBA{0, 0, 0, 255}
	bottom := color.RGBA{200, 100, 50, 255}
	img := Gradient(4, 11, top, bottom)

	assert.Equal(t, top, img.RGBAAt(2, 0))
	assert.Equal(t, bottom, img.RGBAAt(2, 10))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, img.RGBAAt(0, 5))
}

func TestGradientMinimumSize(t *testing.T) {
	img := Background(0, -3)
	assert.Equal(t, 1, img.Bounds().Dx())
	assert.Equal(t, 1, img.Bounds().Dy())
}

func TestDisc(t *testing.T) {
	fill := color.RGBA{255, 0, 0, 255}
	img := Disc(SpriteSize, fill, Darken(fill, 0.5))

	assert.Equal(t, fill, img.RGBAAt(SpriteSize/2, SpriteSize/2))
	assert.Equal(t, uint8(0), img.RGBAAt(0, 0).A, "corners stay transparent")
}

func TestColorFor(t *testing.T) {
	assert.Equal(t, ColorPalette.Flower, ColorFor("item_flower"))
	assert.Equal(t, ColorPalette.Stone, ColorFor("item_stone"))
	assert.Equal(t, ColorPalette.Crystal, ColorFor("ITEM_CRYSTAL"))
	assert.Equal(t, ColorPalette.Creature, ColorFor("char_pixel_fox"))
	assert.Equal(t, ColorPalette.Character, ColorFor("character"))
	assert.Equal(t, ColorFor("mystery"), ColorFor("mystery"))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flower.png")
	require.NoError(t, SavePNG(Sprite("item_flower"), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, SpriteSize, img.Bounds().Dx())
}
