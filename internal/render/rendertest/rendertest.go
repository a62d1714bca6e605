// Package rendertest provides in-memory render backends for tests.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"chosenoffset.com/wayfarer/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return &GeoM{} }
	}
}

// GeoM records translation and scale only.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

func (g *GeoM) Reset() { *g = GeoM{} }

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	if g.SX == 0 {
		g.SX, g.SY = 1, 1
	}
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

// Image is a blank surface that counts what was drawn onto it.
type Image struct {
	W, H     int
	Name     string
	Draws    int
	Fills    int
	Disposed bool
	Source   image.Image
}

// NewImage creates a w×h image.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }
func (i *Image) Size() (int, int)        { return i.W, i.H }
func (i *Image) Fill(color.Color)        { i.Fills++ }
func (i *Image) Dispose()                { i.Disposed = true }

func (i *Image) DrawImage(render.Image, *render.DrawImageOptions) { i.Draws++ }

// TextCall is one DrawText invocation.
type TextCall struct {
	Text string
	X, Y float64
	Size float64
}

// Renderer records shapes and text.
type Renderer struct {
	mu      sync.Mutex
	Texts   []TextCall
	Circles int
	Rects   int
}

func (r *Renderer) NewImage(w, h int) render.Image { return NewImage(w, h) }

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	b := src.Bounds()
	return &Image{W: b.Dx(), H: b.Dy(), Source: src}
}

func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.mu.Lock()
	r.Circles++
	r.mu.Unlock()
}

func (r *Renderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.mu.Lock()
	r.Circles++
	r.mu.Unlock()
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.mu.Lock()
	r.Rects++
	r.mu.Unlock()
}

func (r *Renderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.mu.Lock()
	r.Rects++
	r.mu.Unlock()
}

func (r *Renderer) DrawText(_ render.Image, text string, x, y float64, _ color.Color, size float64) {
	r.mu.Lock()
	r.Texts = append(r.Texts, TextCall{Text: text, X: x, Y: y, Size: size})
	r.mu.Unlock()
}

// MeasureText treats every rune as half the font size wide.
func (r *Renderer) MeasureText(text string, size float64) (float64, float64) {
	return float64(len([]rune(text))) * size / 2, size
}

// HasText reports whether s was drawn.
func (r *Renderer) HasText(s string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

// Reset forgets everything recorded.
func (r *Renderer) Reset() {
	r.mu.Lock()
	r.Texts, r.Circles, r.Rects = nil, 0, 0
	r.mu.Unlock()
}

// Loader serves images from a map of path to size. Missing paths fail.
type Loader struct {
	mu     sync.Mutex
	Images map[string]image.Point
	Calls  []string
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Calls = append(l.Calls, path)
	size, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file", path)
	}
	return &Image{W: size.X, H: size.Y, Name: path}, nil
}

// Input is a scriptable InputManager.
type Input struct {
	State       render.Pointer
	JustPressed map[render.Key]bool
}

func (in *Input) IsKeyJustPressed(k render.Key) bool { return in.JustPressed[k] }
func (in *Input) Pointer() render.Pointer            { return in.State }
