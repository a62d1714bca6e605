// Package world owns the spatial state of a play session: world size, the
// camera and the ordered list of live interactive objects.
package world

import "math"

// Default world size when no background image is available.
const (
	DefaultWidth  = 5000.0
	DefaultHeight = 3000.0
)

// World tracks the map, the camera and everything placed on it.
type World struct {
	width, height float64
	viewportW     float64
	viewportH     float64
	camera        Point // top-left of the viewport in world coords
	objects       []*Object
	customBG      bool
}

// New creates an empty world of the given size.
func New(width, height float64) *World {
	if width <= 0 || height <= 0 {
		width, height = DefaultWidth, DefaultHeight
	}
	return &World{width: width, height: height}
}

// Size returns the world dimensions.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Clamp returns p constrained to [0,width]×[0,height].
func (w *World) Clamp(p Point) Point {
	return Point{X: clamp(p.X, 0, w.width), Y: clamp(p.Y, 0, w.height)}
}

// SetViewport records the visible screen size.
func (w *World) SetViewport(width, height float64) {
	w.viewportW = width
	w.viewportH = height
}

// Viewport returns the visible screen size.
func (w *World) Viewport() (width, height float64) {
	return w.viewportW, w.viewportH
}

// Camera returns the top-left corner of the viewport in world space.
func (w *World) Camera() Point {
	return w.camera
}

// ScreenToWorld converts viewport coordinates to world coordinates.
func (w *World) ScreenToWorld(sx, sy float64) Point {
	return Point{X: sx + w.camera.X, Y: sy + w.camera.Y}
}

// WorldToScreen converts world coordinates to viewport coordinates.
func (w *World) WorldToScreen(x, y float64) Point {
	return Point{X: x - w.camera.X, Y: y - w.camera.Y}
}

// UpdateCamera centres the camera on focus and clamps it so the viewport
// never shows outside the world. When the world is smaller than the
// viewport on an axis the camera sits at 0 on that axis.
func (w *World) UpdateCamera(focus Point) {
	x := focus.X - w.viewportW/2
	y := focus.Y - w.viewportH/2

	w.camera.X = clamp(x, 0, math.Max(0, w.width-w.viewportW))
	w.camera.Y = clamp(y, 0, math.Max(0, w.height-w.viewportH))
}

// FindObjectAt returns the first object, in insertion order, whose hit
// radius contains (x, y). Overlapping objects resolve to the earliest one.
func (w *World) FindObjectAt(x, y float64) *Object {
	p := Point{X: x, Y: y}
	for _, obj := range w.objects {
		if obj.Pos().Dist(p) <= obj.HitRadius() {
			return obj
		}
	}
	return nil
}

// FindObjectNear returns the closest object within radius of (x, y).
// Unlike FindObjectAt this ranks by distance; among exactly equidistant
// candidates the later one in the list wins.
func (w *World) FindObjectNear(x, y, radius float64) *Object {
	p := Point{X: x, Y: y}
	var closest *Object
	closestDist := radius
	for _, obj := range w.objects {
		d := obj.Pos().Dist(p)
		if d <= closestDist {
			closest = obj
			closestDist = d
		}
	}
	return closest
}

// AddObject places obj in the world, clamping its position into bounds.
func (w *World) AddObject(obj *Object) {
	obj.X = clamp(obj.X, 0, w.width)
	obj.Y = clamp(obj.Y, 0, w.height)
	w.objects = append(w.objects, obj)
}

// RemoveObject removes the object with the given id.
func (w *World) RemoveObject(id string) bool {
	for i, obj := range w.objects {
		if obj.ID == id {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return true
		}
	}
	return false
}

// ObjectByID looks up a live object.
func (w *World) ObjectByID(id string) (*Object, bool) {
	for _, obj := range w.objects {
		if obj.ID == id {
			return obj, true
		}
	}
	return nil, false
}

// Objects returns the live objects in insertion order.
// The slice is a copy; the objects are shared.
func (w *World) Objects() []*Object {
	out := make([]*Object, len(w.objects))
	copy(out, w.objects)
	return out
}

// Len returns the number of live objects.
func (w *World) Len() int {
	return len(w.objects)
}

// SetBackgroundSize sizes the world from a background image scaled by
// scale. It is ignored while a custom background is active.
func (w *World) SetBackgroundSize(imgW, imgH int, scale float64) {
	if w.customBG || imgW <= 0 || imgH <= 0 {
		return
	}
	w.resize(float64(imgW)*scale, float64(imgH)*scale)
}

// SetCustomBackground switches to a user-supplied background at its native
// size. Objects are pulled in to the new far edges.
func (w *World) SetCustomBackground(imgW, imgH int) {
	if imgW <= 0 || imgH <= 0 {
		return
	}
	w.customBG = true
	w.width = float64(imgW)
	w.height = float64(imgH)
	for _, obj := range w.objects {
		obj.X = math.Min(obj.X, w.width)
		obj.Y = math.Min(obj.Y, w.height)
	}
}

// ClearCustomBackground drops the custom background and sizes the world
// from the regular background, or the default size when there is none.
func (w *World) ClearCustomBackground(bgW, bgH int, scale float64) {
	w.customBG = false
	if bgW > 0 && bgH > 0 {
		w.resize(float64(bgW)*scale, float64(bgH)*scale)
		return
	}
	w.resize(DefaultWidth, DefaultHeight)
}

// HasCustomBackground reports whether a custom background sizes the world.
func (w *World) HasCustomBackground() bool {
	return w.customBG
}

func (w *World) resize(width, height float64) {
	w.width = width
	w.height = height
	for _, obj := range w.objects {
		obj.X = clamp(obj.X, 0, w.width)
		obj.Y = clamp(obj.Y, 0, w.height)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
