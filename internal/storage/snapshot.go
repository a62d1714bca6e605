package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"chosenoffset.com/wayfarer/internal/actor"
	"chosenoffset.com/wayfarer/internal/collection"
	"chosenoffset.com/wayfarer/internal/journal"
	"chosenoffset.com/wayfarer/internal/world"
)

// ErrInvalidSnapshot is returned by Validate for data that must be treated
// as if no save existed.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// Snapshot is the persisted game document. Sections may be nil: a caller
// that wants a fresh world keeps only the journal and the collection.
type Snapshot struct {
	World      *world.State      `json:"world,omitempty"`
	Character  *actor.State      `json:"character,omitempty"`
	Journal    *journal.State    `json:"journal,omitempty"`
	Collection *collection.State `json:"collection,omitempty"`
	Timestamp  int64             `json:"timestamp"` // Unix milliseconds
}

// Validate parses raw snapshot data. It rejects anything that is not a JSON
// object, has a missing, zero or non-numeric timestamp, or has neither a
// journal nor a collection section.
func Validate(raw []byte) (*Snapshot, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return nil, fmt.Errorf("%w: not a JSON object", ErrInvalidSnapshot)
	}

	var ts any
	if r, ok := fields["timestamp"]; ok {
		_ = json.Unmarshal(r, &ts)
	}
	if n, ok := ts.(float64); !ok || n == 0 {
		return nil, fmt.Errorf("%w: missing or non-numeric timestamp", ErrInvalidSnapshot)
	}

	if !present(fields, "journal") && !present(fields, "collection") {
		return nil, fmt.Errorf("%w: neither journal nor collection present", ErrInvalidSnapshot)
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, err)
	}
	return &snap, nil
}

func present(fields map[string]json.RawMessage, key string) bool {
	r, ok := fields[key]
	return ok && !bytes.Equal(bytes.TrimSpace(r), []byte("null"))
}
