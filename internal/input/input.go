// Package input turns per-tick device state into a queue of discrete events
// and decides which layer of the game receives them.
package input

import (
	"chosenoffset.com/wayfarer/internal/render"
)

// Kind is the type of an input event.
type Kind int

const (
	PointerDown Kind = iota
	PointerMove      // Pointer moved while held
	PointerUp
	KeyDown
)

func (k Kind) String() string {
	switch k {
	case PointerDown:
		return "pointer-down"
	case PointerMove:
		return "pointer-move"
	case PointerUp:
		return "pointer-up"
	case KeyDown:
		return "key-down"
	default:
		return "unknown"
	}
}

// Event is a single input occurrence in screen coordinates.
type Event struct {
	Kind Kind
	X, Y float64
	Key  render.Key
}

// Queue buffers events until the game drains them once per tick.
type Queue struct {
	events []Event
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Drain returns the buffered events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	out := q.events
	q.events = nil
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Poller converts InputManager state into events.
type Poller struct {
	input  render.InputManager
	keys   []render.Key
	lastX  int
	lastY  int
	isDown bool
}

// NewPoller creates a poller watching the given keys.
func NewPoller(input render.InputManager, keys ...render.Key) *Poller {
	if len(keys) == 0 {
		keys = render.AllKeys
	}
	return &Poller{input: input, keys: keys}
}

// Poll pushes this tick's events onto q.
func (p *Poller) Poll(q *Queue) {
	for _, k := range p.keys {
		if p.input.IsKeyJustPressed(k) {
			q.Push(Event{Kind: KeyDown, Key: k})
		}
	}

	ptr := p.input.Pointer()
	x, y := float64(ptr.X), float64(ptr.Y)
	switch {
	case ptr.JustPressed:
		q.Push(Event{Kind: PointerDown, X: x, Y: y})
		p.isDown = true
	case ptr.JustReleased:
		q.Push(Event{Kind: PointerUp, X: x, Y: y})
		p.isDown = false
	case ptr.Down && p.isDown && (ptr.X != p.lastX || ptr.Y != p.lastY):
		q.Push(Event{Kind: PointerMove, X: x, Y: y})
	}
	p.lastX, p.lastY = ptr.X, ptr.Y
}

// Target is the layer that receives input.
type Target int

const (
	TargetWorld Target = iota
	TargetMenu
	TargetModal
)

func (t Target) String() string {
	switch t {
	case TargetModal:
		return "modal"
	case TargetMenu:
		return "menu"
	default:
		return "world"
	}
}

// Route picks the input target: an open popup wins over an open menu, and
// the world only sees input when neither is open.
func Route(modalOpen, menuOpen bool) Target {
	switch {
	case modalOpen:
		return TargetModal
	case menuOpen:
		return TargetMenu
	default:
		return TargetWorld
	}
}
