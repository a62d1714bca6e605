package world

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Template describes an object before it is placed.
type Template struct {
	ID           string            `yaml:"id"`
	Kind         Kind              `yaml:"kind"`
	FX           float64           `yaml:"fx"` // Fraction of world width (fixed objects only)
	FY           float64           `yaml:"fy"` // Fraction of world height (fixed objects only)
	Image        string            `yaml:"image"`
	Name         string            `yaml:"name"`
	Description  string            `yaml:"description"`
	Dialogue     string            `yaml:"dialogue"`
	Radius       float64           `yaml:"radius"`
	CanPickup    bool              `yaml:"can_pickup"`
	CanTalk      bool              `yaml:"can_talk"`
	AcceptsGifts bool              `yaml:"accepts_gifts"`
	Reactions    map[string]string `yaml:"gift_reactions"`
}

// Catalog lists the hand-placed objects and the pools random ones are
// drawn from.
type Catalog struct {
	Fixed      []Template `yaml:"fixed"`
	Items      []Template `yaml:"items"`
	Characters []Template `yaml:"characters"`
}

// LoadCatalog parses a catalog from YAML.
func LoadCatalog(data []byte) (*Catalog, error) {
	var cat Catalog
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(cat.Items) == 0 || len(cat.Characters) == 0 {
		return nil, fmt.Errorf("catalog needs at least one item and one character template")
	}
	for i, t := range cat.Fixed {
		if t.ID == "" {
			return nil, fmt.Errorf("fixed object %d has no id", i)
		}
		if t.Kind != KindItem && t.Kind != KindCharacter {
			return nil, fmt.Errorf("fixed object %s: unknown kind %q", t.ID, t.Kind)
		}
	}
	return &cat, nil
}

// DefaultCatalog returns the embedded catalog.
func DefaultCatalog() *Catalog {
	cat, err := LoadCatalog(defaultCatalog)
	if err != nil {
		panic(err)
	}
	return cat
}

// Build creates an object from the template at (x, y).
func (t Template) Build(id string, kind Kind, x, y float64) *Object {
	obj := &Object{
		ID:           id,
		X:            x,
		Y:            y,
		Kind:         kind,
		Radius:       t.Radius,
		CanPickup:    t.CanPickup,
		CanTalk:      t.CanTalk,
		AcceptsGifts: t.AcceptsGifts,
		Image:        t.Image,
		Name:         t.Name,
		Description:  t.Description,
		Dialogue:     t.Dialogue,
	}
	if len(t.Reactions) > 0 {
		obj.GiftReactions = make(map[string]string, len(t.Reactions))
		for k, v := range t.Reactions {
			obj.GiftReactions[k] = v
		}
	}
	return obj
}

// CharacterSprite is the sprite id of the walking character.
const CharacterSprite = "character"

// SpriteIDs lists every sprite the catalog can place, plus the character,
// without duplicates.
func (c *Catalog) SpriteIDs() []string {
	ids := []string{CharacterSprite}
	seen := map[string]bool{CharacterSprite: true}
	for _, group := range [][]Template{c.Fixed, c.Items, c.Characters} {
		for _, t := range group {
			if t.Image != "" && !seen[t.Image] {
				seen[t.Image] = true
				ids = append(ids, t.Image)
			}
		}
	}
	return ids
}
