package interaction

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"math/rand"
)

//go:embed reactions.json
var defaultReactions []byte

// ReactionSet holds the lines characters say when given a gift.
type ReactionSet struct {
	Pools   map[string][]string `json:"pools"`   // Keyed by item type
	Generic []string            `json:"generic"` // Used when no pool matches
}

// Validate checks that a fallback line is always available.
func (s *ReactionSet) Validate() error {
	if len(s.Generic) == 0 {
		return fmt.Errorf("reaction set must have at least one generic line")
	}
	for itemType, lines := range s.Pools {
		if len(lines) == 0 {
			return fmt.Errorf("reaction pool %q is empty", itemType)
		}
	}
	return nil
}

// ParseReactionSet parses a ReactionSet from JSON data
func ParseReactionSet(data []byte) (*ReactionSet, error) {
	var set ReactionSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse reaction set: %w", err)
	}
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return &set, nil
}

// DefaultReactions returns the embedded reaction set.
func DefaultReactions() *ReactionSet {
	set, err := ParseReactionSet(defaultReactions)
	if err != nil {
		panic(err)
	}
	return set
}

// Pick returns a uniformly random line from the pool for itemType, or from
// the generic pool when there is none.
func (s *ReactionSet) Pick(rng *rand.Rand, itemType string) string {
	pool := s.Pools[itemType]
	if len(pool) == 0 {
		pool = s.Generic
	}
	if len(pool) == 0 {
		return "Thank you..."
	}
	return pool[rng.Intn(len(pool))]
}
