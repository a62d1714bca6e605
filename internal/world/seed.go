package world

import (
	"fmt"
	"math/rand"
)

// Seed populates an empty world with the catalog's fixed objects followed
// by scatter randomly placed ones. Each random object is an item or a
// character with equal probability, with its template drawn uniformly from
// that kind's pool. A world that already has objects is left alone.
// Returns the number of objects added.
func (w *World) Seed(rng *rand.Rand, cat *Catalog, scatter int) int {
	if w.Len() > 0 || cat == nil {
		return 0
	}

	for _, t := range cat.Fixed {
		w.AddObject(t.Build(t.ID, t.Kind, w.width*t.FX, w.height*t.FY))
	}

	for i := 0; i < scatter; i++ {
		kind := KindCharacter
		pool := cat.Characters
		if rng.Float64() < 0.5 {
			kind = KindItem
			pool = cat.Items
		}
		t := pool[rng.Intn(len(pool))]
		id := fmt.Sprintf("%s_extra_%d", kind, i)
		x := rng.Float64() * w.width
		y := rng.Float64() * w.height
		w.AddObject(t.Build(id, kind, x, y))
	}

	return len(cat.Fixed) + scatter
}
