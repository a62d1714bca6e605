package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCollection() *Collection {
	c := New()
	c.Now = func() time.Time { return time.UnixMilli(1_700_000_000_000) }
	return c
}

func TestInferType(t *testing.T) {
	tests := []struct {
		image, name string
		want        string
	}{
		{"item_flower", "", "flower"},
		{"char_pixel_rabbit", "Rabbit", "pixel"},
		{"flower", "Sunflower", "flower"},
		{"", "ひまわり", "flower"},
		{"", "野の花", "flower"},
		{"", "不思議な石", "stone"},
		{"", "輝く結晶", "crystal"},
		{"", "ＣＲＹＳＴＡＬ shard", "crystal"},
		{"", "Smooth PEBBLE", "stone"},
		{"item_", "Old Stone", "stone"},
		{"", "Feather", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InferType(tt.image, tt.name), "image=%q name=%q", tt.image, tt.name)
	}
}

func TestAddItemRejectsIncomplete(t *testing.T) {
	c := newTestCollection()
	assert.False(t, c.AddItem(Item{Name: "No id"}))
	assert.False(t, c.AddItem(Item{ID: "no-name"}))
	assert.False(t, c.HasItems())
}

func TestAddItemNew(t *testing.T) {
	c := newTestCollection()
	require.True(t, c.AddItem(Item{ID: "flower1", Name: "Sunflower", Image: "item_flower"}))

	it, ok := c.ItemByID("flower1")
	require.True(t, ok)
	assert.Equal(t, 1, it.Quantity)
	assert.Equal(t, "flower", it.ItemType)
	assert.Equal(t, int64(1_700_000_000_000), it.Acquired)

	require.True(t, c.AddItem(Item{ID: "feather", Name: "Feather"}))
	it, _ = c.ItemByID("feather")
	assert.Equal(t, UnknownType, it.ItemType)
}

func TestAddItemStacking(t *testing.T) {
	tests := []struct {
		name     string
		first    Item
		second   Item
		stacked  bool
		entryID  string
		quantity int
	}{
		{
			name:    "same inferred type with different ids",
			first:   Item{ID: "flower1", Name: "Sunflower", Image: "item_flower"},
			second:  Item{ID: "item_extra_3", Name: "Wildflower", Image: "item_flower"},
			stacked: true, entryID: "flower1", quantity: 2,
		},
		{
			name:    "explicit type matches stored type",
			first:   Item{ID: "a", Name: "Thing", ItemType: "relic"},
			second:  Item{ID: "b", Name: "Other", ItemType: "relic"},
			stacked: true, entryID: "a", quantity: 2,
		},
		{
			name:    "image containing the type",
			first:   Item{ID: "a", Name: "Blue", Image: "gem_shell", ItemType: "mystery"},
			second:  Item{ID: "b", Name: "Shell", ItemType: "shell"},
			stacked: true, entryID: "a", quantity: 2,
		},
		{
			name:    "name containment",
			first:   Item{ID: "a", Name: "Old Map", ItemType: "paper"},
			second:  Item{ID: "b", Name: "Old Map Fragment", ItemType: "scroll"},
			stacked: true, entryID: "a", quantity: 2,
		},
		{
			name:    "untyped falls back to id",
			first:   Item{ID: "feather", Name: "Feather"},
			second:  Item{ID: "feather", Name: "Feather"},
			stacked: true, entryID: "feather", quantity: 2,
		},
		{
			name:    "different kinds stay separate",
			first:   Item{ID: "flower1", Name: "Sunflower", Image: "item_flower"},
			second:  Item{ID: "stone1", Name: "Strange Stone", Image: "item_stone"},
			stacked: false, entryID: "stone1", quantity: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCollection()
			require.True(t, c.AddItem(tt.first))
			require.True(t, c.AddItem(tt.second))

			if tt.stacked {
				assert.Equal(t, 1, c.Count())
			} else {
				assert.Equal(t, 2, c.Count())
			}
			it, ok := c.ItemByID(tt.entryID)
			require.True(t, ok)
			assert.Equal(t, tt.quantity, it.Quantity)
		})
	}
}

func TestDecreaseQuantity(t *testing.T) {
	c := newTestCollection()
	for i := 0; i < 3; i++ {
		c.AddItem(Item{ID: "crystal1", Name: "Shining Crystal", Image: "item_crystal"})
	}
	it, _ := c.ItemByID("crystal1")
	require.Equal(t, 3, it.Quantity)

	assert.True(t, c.DecreaseQuantity("crystal1"))
	it, _ = c.ItemByID("crystal1")
	assert.Equal(t, 2, it.Quantity)

	assert.True(t, c.DecreaseQuantity("crystal1"))
	assert.True(t, c.DecreaseQuantity("crystal1"))
	assert.False(t, c.HasItem("crystal1"))
	assert.False(t, c.DecreaseQuantity("crystal1"))
}

func TestDecreaseQuantityRemovesLastInPlace(t *testing.T) {
	c := newTestCollection()
	c.AddItem(Item{ID: "flower1", Name: "Sunflower", ItemType: "flower"})
	c.AddItem(Item{ID: "stone1", Name: "Pebble", ItemType: "stone"})
	c.AddItem(Item{ID: "crystal1", Name: "Shard", ItemType: "crystal"})

	calls := 0
	c.OnChange = func() { calls++ }

	require.True(t, c.DecreaseQuantity("stone1"))
	assert.Equal(t, 1, calls, "one notification per change")

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "flower1", items[0].ID)
	assert.Equal(t, "crystal1", items[1].ID)

	assert.False(t, c.DecreaseQuantity("stone1"))
	assert.Equal(t, 1, calls)
}

func TestOnChange(t *testing.T) {
	c := newTestCollection()
	calls := 0
	c.OnChange = func() {
		calls++
		_ = c.Items()
	}

	c.AddItem(Item{ID: "a", Name: "A"})
	c.RemoveItem("missing")
	c.RemoveItem("a")
	c.Clear()
	assert.Equal(t, 3, calls)
}

func TestItemsReturnsCopy(t *testing.T) {
	c := newTestCollection()
	c.AddItem(Item{ID: "a", Name: "A"})
	items := c.Items()
	items[0].Quantity = 99

	it, _ := c.ItemByID("a")
	assert.Equal(t, 1, it.Quantity)
}

func TestStateRoundTrip(t *testing.T) {
	c := newTestCollection()
	c.AddItem(Item{ID: "a", Name: "A"})
	c.AddItem(Item{ID: "b", Name: "B", Image: "item_stone"})

	restored := New()
	restored.LoadState(c.State())
	assert.Equal(t, c.Items(), restored.Items())
	assert.Equal(t, 2, restored.TotalItems())

	restored.LoadState(State{Items: []Item{{Name: "no id"}, {ID: "z", Name: "Z"}}})
	require.Equal(t, 1, restored.Count())
	it, _ := restored.ItemByID("z")
	assert.Equal(t, 1, it.Quantity)
}
