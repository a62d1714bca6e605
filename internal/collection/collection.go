// Package collection holds the items the player has picked up. Items of the
// same kind stack even when their ids differ, so picking up a second wild
// flower bumps the quantity of the first.
package collection

import (
	"strings"
	"time"
)

// UnknownType is stored for items whose type could not be inferred.
const UnknownType = "unknown"

// Item is one stack in the collection.
type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ItemType    string `json:"itemType,omitempty"`
	Quantity    int    `json:"quantity"`
	Acquired    int64  `json:"acquired"` // Unix milliseconds
}

// Collection holds collected items in acquisition order.
type Collection struct {
	items []*Item

	// Now is the clock used for acquisition timestamps.
	Now func() time.Time

	// OnChange is called after every modification (for UI updates).
	OnChange func()
}

// New creates an empty collection.
func New() *Collection {
	return &Collection{Now: time.Now}
}

// AddItem adds an item, stacking it onto an existing entry of the same
// kind. Items without an id or a name are rejected.
//
// The type is the explicit ItemType, else inferred by InferType. With a
// type, an existing entry matches by type, then by image containing the
// type, then by name equality or containment. Without a match (or without a
// type) an entry with the same id matches. A match gains one quantity;
// otherwise the item is appended with quantity 1.
func (c *Collection) AddItem(item Item) bool {
	if item.ID == "" || item.Name == "" {
		return false
	}

	itemType := item.ItemType
	if itemType == "" {
		itemType = InferType(item.Image, item.Name)
	}

	existing := c.match(item, itemType)
	if existing != nil {
		if existing.Quantity < 1 {
			existing.Quantity = 1
		}
		existing.Quantity++
	} else {
		item.ItemType = itemType
		if item.ItemType == "" {
			item.ItemType = UnknownType
		}
		item.Quantity = 1
		item.Acquired = c.Now().UnixMilli()
		c.items = append(c.items, &item)
	}

	c.notifyChange()
	return true
}

func (c *Collection) match(item Item, itemType string) *Item {
	if itemType != "" {
		for _, it := range c.items {
			if it.ItemType == itemType {
				return it
			}
		}
		for _, it := range c.items {
			if it.Image != "" && strings.Contains(it.Image, itemType) {
				return it
			}
		}
		for _, it := range c.items {
			if it.Name == item.Name || strings.Contains(it.Name, item.Name) || strings.Contains(item.Name, it.Name) {
				return it
			}
		}
	}
	for _, it := range c.items {
		if it.ID == item.ID {
			return it
		}
	}
	return nil
}

// RemoveItem removes the entry with the given id.
func (c *Collection) RemoveItem(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	c.notifyChange()
	return true
}

// DecreaseQuantity takes one from a stack, removing the entry when it was
// the last one.
func (c *Collection) DecreaseQuantity(id string) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	if c.items[i].Quantity > 1 {
		c.items[i].Quantity--
	} else {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
	c.notifyChange()
	return true
}

func (c *Collection) index(id string) int {
	for i, it := range c.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Items returns a copy of the entries in acquisition order.
func (c *Collection) Items() []Item {
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = *it
	}
	return out
}

// ItemByID returns the entry with the given id.
func (c *Collection) ItemByID(id string) (Item, bool) {
	for _, it := range c.items {
		if it.ID == id {
			return *it, true
		}
	}
	return Item{}, false
}

// HasItem checks if an entry with the given id exists.
func (c *Collection) HasItem(id string) bool {
	_, ok := c.ItemByID(id)
	return ok
}

// HasItems returns true if anything has been collected.
func (c *Collection) HasItems() bool {
	return len(c.items) > 0
}

// Count returns the number of distinct entries.
func (c *Collection) Count() int {
	return len(c.items)
}

// TotalItems returns the sum of all quantities.
func (c *Collection) TotalItems() int {
	total := 0
	for _, it := range c.items {
		total += it.Quantity
	}
	return total
}

// Clear removes everything.
func (c *Collection) Clear() {
	c.items = nil
	c.notifyChange()
}

func (c *Collection) notifyChange() {
	if c.OnChange != nil {
		c.OnChange()
	}
}

// --- Serialization ---

// State is the persisted form of the collection.
type State struct {
	Items []Item `json:"items"`
}

// State captures the collection for a snapshot.
func (c *Collection) State() State {
	return State{Items: c.Items()}
}

// LoadState replaces the collection. Entries without an id are dropped and
// quantities below one are raised to one.
func (c *Collection) LoadState(s State) {
	items := make([]*Item, 0, len(s.Items))
	for _, it := range s.Items {
		if it.ID == "" {
			continue
		}
		it := it
		if it.Quantity < 1 {
			it.Quantity = 1
		}
		items = append(items, &it)
	}

	c.items = items
	c.notifyChange()
}
