// Package actor moves the player character across the world and decides
// when walking near something should trigger an interaction.
package actor

import (
	"math"
	"math/rand"

	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/world"
)

// Facing is the horizontal direction the character sprite looks.
type Facing string

const (
	FacingLeft  Facing = "left"
	FacingRight Facing = "right"
)

// Default start position, also used when a saved position is missing.
const (
	DefaultX = 2500.0
	DefaultY = 1500.0
)

// Bounds constrains positions to the playable area.
type Bounds interface {
	Clamp(p world.Point) world.Point
}

// Step reports what happened during one tick.
type Step struct {
	Moved   bool
	Arrived bool
	Probe   bool // A proximity check should run this tick
}

// Controller owns the character's position and movement target.
type Controller struct {
	bounds      Bounds
	pos         world.Point
	target      world.Point
	speed       float64 // World units per tick
	probeChance float64
	moving      bool
	facing      Facing
}

// New creates a controller at the configured start position.
func New(bounds Bounds, cfg config.ActorConfig) *Controller {
	c := &Controller{
		bounds:      bounds,
		speed:       cfg.Speed,
		probeChance: cfg.ProbeChance,
		facing:      FacingRight,
	}
	if c.speed <= 0 {
		c.speed = 5
	}
	c.Place(cfg.StartX, cfg.StartY)
	return c
}

// MoveTo sets a new movement target, clamped into the world.
func (c *Controller) MoveTo(x, y float64) {
	c.target = c.bounds.Clamp(world.Point{X: x, Y: y})
	c.moving = true
}

// Target returns the current movement target.
func (c *Controller) Target() world.Point {
	return c.target
}

// Tick advances the character one step toward its target. Once the
// remaining distance fits within one step it snaps to the target, stops and
// reports Arrived. Arrival always requests a proximity probe; each moving
// tick requests one with probability probeChance.
func (c *Controller) Tick(rng *rand.Rand) Step {
	if !c.moving {
		return Step{}
	}

	dx := c.target.X - c.pos.X
	dy := c.target.Y - c.pos.Y
	dist := math.Hypot(dx, dy)

	if dist > c.speed {
		mx := dx / dist * c.speed
		my := dy / dist * c.speed
		c.pos = c.bounds.Clamp(world.Point{X: c.pos.X + mx, Y: c.pos.Y + my})
		if mx > 0 {
			c.facing = FacingRight
		} else if mx < 0 {
			c.facing = FacingLeft
		}
		return Step{Moved: true, Probe: rng != nil && rng.Float64() < c.probeChance}
	}

	c.pos = c.target
	c.moving = false
	return Step{Moved: dist > 0, Arrived: true, Probe: true}
}

// Stop halts movement where the character stands.
func (c *Controller) Stop() {
	c.moving = false
	c.target = c.pos
}

// Place teleports the character, clamped into the world, and stops it.
func (c *Controller) Place(x, y float64) {
	c.pos = c.bounds.Clamp(world.Point{X: x, Y: y})
	c.target = c.pos
	c.moving = false
}

func (c *Controller) Position() world.Point { return c.pos }
func (c *Controller) Facing() Facing        { return c.facing }
func (c *Controller) Moving() bool          { return c.moving }

// State is the persisted form of the character.
type State struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Direction Facing  `json:"direction"`
}

// State captures the character for a snapshot.
func (c *Controller) State() State {
	return State{X: c.pos.X, Y: c.pos.Y, Direction: c.facing}
}

// LoadState restores a saved character. Zero coordinates fall back to the
// default start and any direction other than left means right.
func (c *Controller) LoadState(s State) {
	x, y := s.X, s.Y
	if x == 0 {
		x = DefaultX
	}
	if y == 0 {
		y = DefaultY
	}
	c.Place(x, y)
	c.facing = FacingRight
	if s.Direction == FacingLeft {
		c.facing = FacingLeft
	}
}
