// Package journal records the player's discoveries, newest first.
package journal

import (
	"strings"
	"sync"
	"time"
)

// EntryType categorises journal entries.
type EntryType string

const (
	TypeItem         EntryType = "item"
	TypeConversation EntryType = "conversation"
	TypeGift         EntryType = "gift"
	TypeExamine      EntryType = "examine"
	TypeSystem       EntryType = "system"
	TypeLetter       EntryType = "letter"
)

// Entry is a single journal record.
type Entry struct {
	Type      EntryType `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Timestamp int64     `json:"timestamp"` // Unix milliseconds
}

// Welcome is the entry a brand new journal starts with.
var Welcome = Entry{
	Type:    TypeSystem,
	Title:   "The journey begins",
	Content: "Today the journey starts. Let's record every encounter and discovery along the way.",
}

// Journal is an ordered list of entries.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry

	// Now is the clock used for entries without a timestamp.
	Now func() time.Time
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{Now: time.Now}
}

// AddEntry prepends an entry. Entries without a title or content are
// ignored. A zero timestamp is replaced with the current time.
func (j *Journal) AddEntry(e Entry) bool {
	if e.Title == "" || e.Content == "" {
		return false
	}
	if e.Timestamp == 0 {
		e.Timestamp = j.Now().UnixMilli()
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append([]Entry{e}, j.entries...)
	return true
}

// EnsureWelcome adds the welcome entry to an empty journal.
func (j *Journal) EnsureWelcome() {
	j.mu.RLock()
	empty := len(j.entries) == 0
	j.mu.RUnlock()
	if empty {
		j.AddEntry(Welcome)
	}
}

// Entries returns a copy of all entries, newest first.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	out := make([]Entry, len(j.entries))
	copy(out, j.entries)
	return out
}

// Len returns the number of entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Search returns entries whose title or content contains term, ignoring
// case. An empty term matches nothing.
func (j *Journal) Search(term string) []Entry {
	if term == "" {
		return nil
	}
	lower := strings.ToLower(term)

	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []Entry
	for _, e := range j.entries {
		if strings.Contains(strings.ToLower(e.Title), lower) ||
			strings.Contains(strings.ToLower(e.Content), lower) {
			out = append(out, e)
		}
	}
	return out
}

// ByType returns entries of one type, newest first.
func (j *Journal) ByType(t EntryType) []Entry {
	j.mu.RLock()
	defer j.mu.RUnlock()
	var out []Entry
	for _, e := range j.entries {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Remove deletes the first entry with the given timestamp.
func (j *Journal) Remove(timestamp int64) bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	for i, e := range j.entries {
		if e.Timestamp == timestamp {
			j.entries = append(j.entries[:i], j.entries[i+1:]...)
			return true
		}
	}
	return false
}

// Clear removes every entry.
func (j *Journal) Clear() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = nil
}

// State is the persisted form of the journal.
type State struct {
	Entries []Entry `json:"entries"`
}

// State captures the journal for a snapshot.
func (j *Journal) State() State {
	return State{Entries: j.Entries()}
}

// LoadState replaces the journal with saved entries.
func (j *Journal) LoadState(s State) {
	entries := make([]Entry, len(s.Entries))
	copy(entries, s.Entries)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = entries
}
