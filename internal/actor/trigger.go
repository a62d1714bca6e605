package actor

import (
	"time"

	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/world"
)

// Decision is the outcome of a proximity check.
type Decision int

const (
	DecisionNone    Decision = iota
	DecisionCollect          // Pick the item up without a popup
	DecisionFocus            // Open the interaction popup
)

func (d Decision) String() string {
	switch d {
	case DecisionCollect:
		return "collect"
	case DecisionFocus:
		return "focus"
	default:
		return "none"
	}
}

// Trigger rate-limits proximity interactions.
//
// Pickup-able items are collected at most once per pickupCooldown per id.
// Anything else opens a popup when it differs from the last object, when
// interactCooldown has passed since the last popup, or when sameObjectGrace
// has passed since this particular object last opened one.
type Trigger struct {
	pickupCooldown   time.Duration
	interactCooldown time.Duration
	sameObjectGrace  time.Duration

	lastPickup map[string]time.Duration
	lastID     string
	lastAt     time.Duration
	lastByID   map[string]time.Duration
}

// NewTrigger creates a trigger from the interaction config.
func NewTrigger(cfg config.InteractionConfig) *Trigger {
	return &Trigger{
		pickupCooldown:   cfg.PickupCooldown,
		interactCooldown: cfg.InteractCooldown,
		sameObjectGrace:  cfg.SameObjectGrace,
		lastPickup:       make(map[string]time.Duration),
		lastByID:         make(map[string]time.Duration),
	}
}

// Decide classifies obj at simulated time now and records the decision.
func (t *Trigger) Decide(obj *world.Object, now time.Duration) Decision {
	if obj == nil {
		return DecisionNone
	}

	if obj.Kind == world.KindItem && obj.CanPickup {
		if at, ok := t.lastPickup[obj.ID]; ok && now-at < t.pickupCooldown {
			return DecisionNone
		}
		t.lastPickup[obj.ID] = now
		return DecisionCollect
	}

	if !t.allowFocus(obj.ID, now) {
		return DecisionNone
	}
	t.lastID = obj.ID
	t.lastAt = now
	t.lastByID[obj.ID] = now
	return DecisionFocus
}

func (t *Trigger) allowFocus(id string, now time.Duration) bool {
	if id != t.lastID {
		return true
	}
	if now-t.lastAt >= t.interactCooldown {
		return true
	}
	at, ok := t.lastByID[id]
	return !ok || now-at > t.sameObjectGrace
}

// Reset forgets all cooldowns.
func (t *Trigger) Reset() {
	t.lastPickup = make(map[string]time.Duration)
	t.lastByID = make(map[string]time.Duration)
	t.lastID = ""
	t.lastAt = 0
}
