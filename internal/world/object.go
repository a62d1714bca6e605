package world

import "math"

// DefaultRadius is used by FindObjectAt for objects without a radius.
const DefaultRadius = 25.0

// Point is a position in world space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Kind classifies an object. Capabilities are carried separately by the
// flags on Object, so a character may still be pickupable.
type Kind string

const (
	KindItem      Kind = "item"
	KindCharacter Kind = "character"
)

// Object is an interactive thing placed in the world.
type Object struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Kind   Kind    `json:"type"`
	Radius float64 `json:"radius,omitempty"`

	CanPickup    bool `json:"canPickup,omitempty"`
	CanTalk      bool `json:"canTalk,omitempty"`
	AcceptsGifts bool `json:"acceptsGifts,omitempty"`

	Image       string `json:"image,omitempty"` // Sprite id, e.g. "item_flower"
	Name        string `json:"name"`
	Description string `json:"description"`
	Dialogue    string `json:"dialogue,omitempty"`

	// GiftReactions maps a collected item id to a fixed reaction line.
	GiftReactions map[string]string `json:"giftReactions,omitempty"`
}

// Pos returns the object's position.
func (o *Object) Pos() Point {
	return Point{X: o.X, Y: o.Y}
}

// HitRadius returns the radius used for click hit-testing.
func (o *Object) HitRadius() float64 {
	if o.Radius > 0 {
		return o.Radius
	}
	return DefaultRadius
}

// Clone returns a deep copy.
func (o *Object) Clone() *Object {
	c := *o
	if o.GiftReactions != nil {
		c.GiftReactions = make(map[string]string, len(o.GiftReactions))
		for k, v := range o.GiftReactions {
			c.GiftReactions[k] = v
		}
	}
	return &c
}
