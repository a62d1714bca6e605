package ui

import (
	"image/color"
	"time"

	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/timer"
	"chosenoffset.com/wayfarer/internal/world"
)

// MarkerDuration is how long the arrival marker stays up.
const MarkerDuration = 2 * time.Second

const markerOwner timer.Owner = "arrival-marker"

// Marker is the "!" shown over an object the character stopped on.
type Marker struct {
	clock   Clock
	pos     world.Point
	visible bool
}

// NewMarker creates a hidden marker.
func NewMarker(clock Clock) *Marker {
	return &Marker{clock: clock}
}

// Show places the marker at a world position, restarting its timer.
func (m *Marker) Show(p world.Point) {
	m.clock.CancelOwner(markerOwner)
	m.pos = p
	m.visible = true
	m.clock.After(MarkerDuration, markerOwner, func() { m.visible = false })
}

// Visible returns the marker position when shown.
func (m *Marker) Visible() (world.Point, bool) {
	return m.pos, m.visible
}

// Draw renders the marker above its world position.
func (m *Marker) Draw(r render.Renderer, screen render.Image, w *world.World) {
	if !m.visible {
		return
	}
	p := w.WorldToScreen(m.pos.X, m.pos.Y)
	y := p.Y - 48
	r.FillCircle(screen, float32(p.X), float32(y), 14, color.RGBA{255, 220, 60, 255})
	tw, th := r.MeasureText("!", TitleSize)
	r.DrawText(screen, "!", p.X-tw/2, y-th/2, color.RGBA{80, 50, 0, 255}, TitleSize)
}
