package placeholders

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"strings"
)

// SpriteSize is the edge length of generated sprites.
const SpriteSize = 64

// ColorPalette holds the placeholder colours.
var ColorPalette = struct {
	SkyTop    color.RGBA
	SkyBottom color.RGBA

	Character color.RGBA
	Flower    color.RGBA
	Stone     color.RGBA
	Crystal   color.RGBA
	Creature  color.RGBA
	Unknown   color.RGBA
}{
	SkyTop:    color.RGBA{135, 206, 235, 255}, // Sky blue
	SkyBottom: color.RGBA{120, 180, 90, 255},  // Meadow green

	Character: color.RGBA{70, 130, 220, 255},
	Flower:    color.RGBA{240, 110, 170, 255},
	Stone:     color.RGBA{140, 135, 125, 255},
	Crystal:   color.RGBA{150, 110, 230, 255},
	Creature:  color.RGBA{210, 150, 80, 255},
	Unknown:   color.RGBA{200, 200, 200, 255},
}

// Gradient creates a vertical gradient used when a background fails to load.
func Gradient(width, height int, top, bottom color.RGBA) *image.RGBA {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		row := lerp(top, bottom, t)
		draw.Draw(img, image.Rect(0, y, width, y+1), &image.Uniform{row}, image.Point{}, draw.Src)
	}
	return img
}

// Background returns the default gradient.
func Background(width, height int) *image.RGBA {
	return Gradient(width, height, ColorPalette.SkyTop, ColorPalette.SkyBottom)
}

// Disc creates a filled circle with a one pixel outline on a transparent
// square.
func Disc(size int, fillColor, outlineColor color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	center := size / 2
	radius := size/2 - 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := x - center
			dy := y - center
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}

	return img
}

// ColorFor picks a placeholder colour from a sprite id such as
// "item_flower" or "char_pixel_fox".
func ColorFor(spriteID string) color.RGBA {
	id := strings.ToLower(spriteID)
	switch {
	case id == "character":
		return ColorPalette.Character
	case strings.Contains(id, "flower"):
		return ColorPalette.Flower
	case strings.Contains(id, "stone"):
		return ColorPalette.Stone
	case strings.Contains(id, "crystal"):
		return ColorPalette.Crystal
	case strings.HasPrefix(id, "char_"):
		return ColorPalette.Creature
	case id == "":
		return ColorPalette.Unknown
	}

	// Stable tint for anything else
	h := fnv.New32a()
	_, _ = h.Write([]byte(id))
	v := h.Sum32()
	return color.RGBA{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 255}
}

// Sprite creates the placeholder disc for a sprite id.
func Sprite(spriteID string) *image.RGBA {
	c := ColorFor(spriteID)
	return Disc(SpriteSize, c, Darken(c, 0.6))
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}
