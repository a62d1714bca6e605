package actor

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/world"
)

func newController(t *testing.T) (*Controller, *world.World) {
	t.Helper()
	w := world.New(5000, 3000)
	return New(w, config.DefaultConfig().Actor), w
}

func TestMoveToClampsTarget(t *testing.T) {
	c, _ := newController(t)
	c.MoveTo(-100, 99999)
	assert.Equal(t, world.Point{X: 0, Y: 3000}, c.Target())
	assert.True(t, c.Moving())
}

func TestTickWalksThenArrives(t *testing.T) {
	c, _ := newController(t)
	c.Place(100, 100)
	c.MoveTo(112, 100)
	rng := rand.New(rand.NewSource(1))

	step := c.Tick(rng)
	assert.True(t, step.Moved)
	assert.False(t, step.Arrived)
	assert.Equal(t, world.Point{X: 105, Y: 100}, c.Position())

	c.Tick(rng)
	assert.Equal(t, world.Point{X: 110, Y: 100}, c.Position())

	step = c.Tick(rng)
	assert.True(t, step.Arrived)
	assert.True(t, step.Probe)
	assert.False(t, c.Moving())
	assert.Equal(t, world.Point{X: 112, Y: 100}, c.Position())

	assert.Equal(t, Step{}, c.Tick(rng))
}

func TestFacingOnlyChangesOnHorizontalMovement(t *testing.T) {
	c, _ := newController(t)
	c.Place(500, 500)
	assert.Equal(t, FacingRight, c.Facing())

	c.MoveTo(400, 500)
	c.Tick(nil)
	assert.Equal(t, FacingLeft, c.Facing())

	c.MoveTo(c.Position().X, 900)
	c.Tick(nil)
	assert.Equal(t, FacingLeft, c.Facing(), "vertical movement keeps facing")

	c.MoveTo(900, c.Position().Y)
	c.Tick(nil)
	assert.Equal(t, FacingRight, c.Facing())
}

func TestProbeChance(t *testing.T) {
	w := world.New(5000, 3000)
	cfg := config.DefaultConfig().Actor

	cfg.ProbeChance = 1
	always := New(w, cfg)
	always.MoveTo(0, 0)
	assert.True(t, always.Tick(rand.New(rand.NewSource(1))).Probe)

	cfg.ProbeChance = 0
	never := New(w, cfg)
	never.MoveTo(0, 0)
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		assert.False(t, never.Tick(rng).Probe)
	}
}

func TestPositionStaysInBounds(t *testing.T) {
	c, _ := newController(t)
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 2000; i++ {
		if !c.Moving() {
			c.MoveTo(rng.Float64()*8000-1500, rng.Float64()*6000-1500)
		}
		c.Tick(rng)
		p := c.Position()
		require.True(t, p.X >= 0 && p.X <= 5000)
		require.True(t, p.Y >= 0 && p.Y <= 3000)
	}
}

func TestStateDefaults(t *testing.T) {
	c, _ := newController(t)
	c.MoveTo(10, 10)
	c.LoadState(State{})
	assert.Equal(t, world.Point{X: DefaultX, Y: DefaultY}, c.Position())
	assert.Equal(t, FacingRight, c.Facing())
	assert.False(t, c.Moving())

	c.LoadState(State{X: 300, Y: 200, Direction: FacingLeft})
	assert.Equal(t, State{X: 300, Y: 200, Direction: FacingLeft}, c.State())
}

func TestStopKeepsPosition(t *testing.T) {
	c, _ := newController(t)
	c.MoveTo(0, 0)
	c.Tick(nil)
	pos := c.Position()
	c.Stop()
	assert.False(t, c.Moving())
	assert.Equal(t, Step{}, c.Tick(nil))
	assert.Equal(t, pos, c.Position())
}

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestTriggerPickupCooldown(t *testing.T) {
	tr := NewTrigger(config.DefaultConfig().Interaction)
	flower := &world.Object{ID: "flower1", Kind: world.KindItem, CanPickup: true}

	assert.Equal(t, DecisionCollect, tr.Decide(flower, ms(1000)))
	assert.Equal(t, DecisionNone, tr.Decide(flower, ms(1500)))
	assert.Equal(t, DecisionNone, tr.Decide(flower, ms(2499)))
	assert.Equal(t, DecisionCollect, tr.Decide(flower, ms(2500)))
}

type focusStep struct {
	id   string
	at   int
	want Decision
}

func TestTriggerFocusRules(t *testing.T) {
	tests := []struct {
		name  string
		steps []focusStep
	}{
		{
			name: "same object blocked inside cooldown",
			steps: []focusStep{
				{"fox1", 0, DecisionFocus},
				{"fox1", 1000, DecisionNone},
				{"fox1", 1999, DecisionNone},
				{"fox1", 2000, DecisionFocus},
			},
		},
		{
			name: "different object always allowed",
			steps: []focusStep{
				{"fox1", 0, DecisionFocus},
				{"rabbit1", 100, DecisionFocus},
				{"fox1", 200, DecisionFocus},
				{"fox1", 300, DecisionNone},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTrigger(config.DefaultConfig().Interaction)
			for _, s := range tt.steps {
				obj := &world.Object{ID: s.id, Kind: world.KindCharacter, CanTalk: true}
				assert.Equal(t, s.want, tr.Decide(obj, ms(s.at)), "%s at %dms", s.id, s.at)
			}
		})
	}
}

func TestTriggerSameObjectGrace(t *testing.T) {
	cfg := config.DefaultConfig().Interaction
	cfg.InteractCooldown = 10 * time.Second
	tr := NewTrigger(cfg)
	fox := &world.Object{ID: "fox1", Kind: world.KindCharacter}

	assert.Equal(t, DecisionFocus, tr.Decide(fox, 0))
	assert.Equal(t, DecisionNone, tr.Decide(fox, ms(3000)))
	assert.Equal(t, DecisionFocus, tr.Decide(fox, ms(3001)))
}

func TestTriggerNonPickupItemFocuses(t *testing.T) {
	tr := NewTrigger(config.DefaultConfig().Interaction)
	sign := &world.Object{ID: "sign", Kind: world.KindItem}
	assert.Equal(t, DecisionFocus, tr.Decide(sign, 0))
	assert.Equal(t, DecisionNone, tr.Decide(nil, 0))
}
