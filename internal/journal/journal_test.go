package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddEntryNewestFirst(t *testing.T) {
	j := New()
	j.Now = func() time.Time { return time.UnixMilli(5000) }

	assert.True(t, j.AddEntry(Entry{Type: TypeItem, Title: "Found Sunflower", Content: "Picked it up.", Timestamp: 1000}))
	assert.True(t, j.AddEntry(Entry{Type: TypeExamine, Title: "Examined Fox", Content: "An orange coat."}))

	entries := j.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, TypeExamine, entries[0].Type)
	assert.Equal(t, int64(5000), entries[0].Timestamp)
	assert.Equal(t, int64(1000), entries[1].Timestamp)
}

func TestAddEntryRequiresTitleAndContent(t *testing.T) {
	j := New()
	assert.False(t, j.AddEntry(Entry{Type: TypeItem, Content: "x"}))
	assert.False(t, j.AddEntry(Entry{Type: TypeItem, Title: "x"}))
	assert.Zero(t, j.Len())
}

func TestEnsureWelcome(t *testing.T) {
	j := New()
	j.EnsureWelcome()
	j.EnsureWelcome()
	require.Equal(t, 1, j.Len())
	assert.Equal(t, TypeSystem, j.Entries()[0].Type)
}

func TestSearchAndByType(t *testing.T) {
	j := New()
	j.AddEntry(Entry{Type: TypeConversation, Title: "Talked with Fox", Content: "Found anything interesting?", Timestamp: 1})
	j.AddEntry(Entry{Type: TypeGift, Title: "Gave Sunflower to Rabbit", Content: "It smells like the meadow.", Timestamp: 2})

	assert.Len(t, j.Search("fox"), 1)
	assert.Len(t, j.Search("MEADOW"), 1)
	assert.Len(t, j.Search("a"), 2)
	assert.Empty(t, j.Search(""))

	gifts := j.ByType(TypeGift)
	require.Len(t, gifts, 1)
	assert.Equal(t, int64(2), gifts[0].Timestamp)
}

func TestRemoveAndClear(t *testing.T) {
	j := New()
	j.AddEntry(Entry{Type: TypeItem, Title: "a", Content: "a", Timestamp: 10})
	j.AddEntry(Entry{Type: TypeItem, Title: "b", Content: "b", Timestamp: 20})

	assert.True(t, j.Remove(10))
	assert.False(t, j.Remove(10))
	assert.Equal(t, 1, j.Len())

	j.Clear()
	assert.Zero(t, j.Len())
}

func TestStateRoundTrip(t *testing.T) {
	j := New()
	j.AddEntry(Entry{Type: TypeLetter, Title: "A letter", Content: "Dear traveller", Timestamp: 42})

	restored := New()
	restored.LoadState(j.State())
	assert.Equal(t, j.Entries(), restored.Entries())
}
