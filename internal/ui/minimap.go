package ui

import (
	"image/color"

	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/world"
)

// MinimapWidth is the minimap's on-screen width; its height follows the
// world's aspect ratio.
const MinimapWidth = 180.0

// Minimap maps world coordinates into a corner rectangle.
type Minimap struct {
	Box   Rect
	scale float64
}

// LayoutMinimap places the minimap in the top right corner.
func LayoutMinimap(screenW int, worldW, worldH float64) Minimap {
	if worldW <= 0 || worldH <= 0 {
		return Minimap{}
	}
	scale := MinimapWidth / worldW
	h := worldH * scale
	return Minimap{
		Box:   Rect{X: float64(screenW) - MinimapWidth - 12, Y: 12, W: MinimapWidth, H: h},
		scale: scale,
	}
}

// Project converts a world point to screen space on the minimap.
func (m Minimap) Project(p world.Point) (x, y float64) {
	return m.Box.X + p.X*m.scale, m.Box.Y + p.Y*m.scale
}

// Draw renders objects, the character and the camera viewport.
func (m Minimap) Draw(r render.Renderer, screen render.Image, w *world.World, actor world.Point) {
	if m.scale == 0 {
		return
	}
	b := m.Box
	r.FillRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), color.RGBA{0, 0, 0, 140})
	r.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, color.RGBA{255, 255, 255, 160})

	for _, obj := range w.Objects() {
		x, y := m.Project(obj.Pos())
		clr := color.RGBA{255, 215, 0, 255}
		if obj.Kind == world.KindCharacter {
			clr = color.RGBA{255, 120, 120, 255}
		}
		r.FillCircle(screen, float32(x), float32(y), 2, clr)
	}

	cam := w.Camera()
	vw, vh := w.Viewport()
	cx, cy := m.Project(cam)
	r.StrokeRect(screen, float32(cx), float32(cy), float32(vw*m.scale), float32(vh*m.scale), 1, color.RGBA{255, 255, 255, 200})

	ax, ay := m.Project(actor)
	r.FillCircle(screen, float32(ax), float32(ay), 3, color.RGBA{80, 160, 255, 255})
}
