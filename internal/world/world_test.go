package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFallsBackToDefaultSize(t *testing.T) {
	w := New(0, -1)
	width, height := w.Size()
	assert.Equal(t, DefaultWidth, width)
	assert.Equal(t, DefaultHeight, height)
}

func TestCameraStaysInBounds(t *testing.T) {
	w := New(5000, 3000)
	rng := rand.New(rand.NewSource(7))

	viewports := [][2]float64{{1280, 800}, {800, 600}, {6000, 4000}, {320, 240}}
	for i := 0; i < 500; i++ {
		vp := viewports[rng.Intn(len(viewports))]
		w.SetViewport(vp[0], vp[1])
		focus := Point{X: rng.Float64()*7000 - 1000, Y: rng.Float64()*5000 - 1000}
		w.UpdateCamera(focus)

		cam := w.Camera()
		maxX := 5000 - vp[0]
		if maxX < 0 {
			maxX = 0
		}
		maxY := 3000 - vp[1]
		if maxY < 0 {
			maxY = 0
		}
		require.GreaterOrEqual(t, cam.X, 0.0)
		require.GreaterOrEqual(t, cam.Y, 0.0)
		require.LessOrEqual(t, cam.X, maxX)
		require.LessOrEqual(t, cam.Y, maxY)
	}
}

func TestCameraCentresOnFocus(t *testing.T) {
	w := New(5000, 3000)
	w.SetViewport(1000, 600)
	w.UpdateCamera(Point{X: 2500, Y: 1500})
	assert.Equal(t, Point{X: 2000, Y: 1200}, w.Camera())
}

func TestScreenWorldRoundTrip(t *testing.T) {
	w := New(5000, 3000)
	w.SetViewport(800, 600)
	w.UpdateCamera(Point{X: 1234, Y: 987})

	tests := [][2]float64{{0, 0}, {400, 300}, {-50, 12.5}, {799.9, 599.9}, {1e6, -1e6}}
	for _, tt := range tests {
		p := w.ScreenToWorld(tt[0], tt[1])
		s := w.WorldToScreen(p.X, p.Y)
		assert.InDelta(t, tt[0], s.X, 1e-9)
		assert.InDelta(t, tt[1], s.Y, 1e-9)
	}
}

func TestFindObjectAtReturnsFirstInsertedOnOverlap(t *testing.T) {
	w := New(5000, 3000)
	a := &Object{ID: "a", X: 100, Y: 100, Radius: 30}
	b := &Object{ID: "b", X: 110, Y: 100, Radius: 30}
	w.AddObject(a)
	w.AddObject(b)

	// Closer to b, but a was inserted first.
	got := w.FindObjectAt(108, 100)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)

	assert.Nil(t, w.FindObjectAt(500, 500))
}

func TestFindObjectAtUsesDefaultRadius(t *testing.T) {
	w := New(5000, 3000)
	w.AddObject(&Object{ID: "r0", X: 100, Y: 100})

	assert.NotNil(t, w.FindObjectAt(124, 100))
	assert.Nil(t, w.FindObjectAt(126, 100))
}

func TestFindObjectNearReturnsClosest(t *testing.T) {
	w := New(5000, 3000)
	w.AddObject(&Object{ID: "a", X: 140, Y: 100})
	w.AddObject(&Object{ID: "b", X: 110, Y: 100})

	got := w.FindObjectNear(100, 100, 50)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.ID)

	assert.Nil(t, w.FindObjectNear(100, 100, 5))
}

func TestAddObjectClampsIntoBounds(t *testing.T) {
	w := New(5000, 3000)
	obj := &Object{ID: "x", X: -20, Y: 99999}
	w.AddObject(obj)
	assert.Equal(t, 0.0, obj.X)
	assert.Equal(t, 3000.0, obj.Y)
}

func TestRemoveObject(t *testing.T) {
	w := New(5000, 3000)
	w.AddObject(&Object{ID: "a"})
	w.AddObject(&Object{ID: "b"})

	assert.True(t, w.RemoveObject("a"))
	assert.False(t, w.RemoveObject("a"))
	assert.Equal(t, 1, w.Len())
	_, ok := w.ObjectByID("b")
	assert.True(t, ok)
}

func TestCustomBackgroundSizing(t *testing.T) {
	w := New(5000, 3000)
	w.SetBackgroundSize(1000, 800, 3)
	width, height := w.Size()
	assert.Equal(t, 3000.0, width)
	assert.Equal(t, 2400.0, height)

	obj := &Object{ID: "far", X: 2900, Y: 2300}
	w.AddObject(obj)

	w.SetCustomBackground(1920, 1080)
	assert.True(t, w.HasCustomBackground())
	assert.Equal(t, 1920.0, obj.X)
	assert.Equal(t, 1080.0, obj.Y)

	// Background changes are ignored while the custom one is active.
	w.SetBackgroundSize(2000, 2000, 3)
	width, _ = w.Size()
	assert.Equal(t, 1920.0, width)

	w.ClearCustomBackground(0, 0, 3)
	assert.False(t, w.HasCustomBackground())
	width, height = w.Size()
	assert.Equal(t, DefaultWidth, width)
	assert.Equal(t, DefaultHeight, height)
}

func TestSeed(t *testing.T) {
	w := New(5000, 3000)
	cat := DefaultCatalog()

	added := w.Seed(rand.New(rand.NewSource(1)), cat, 20)
	assert.Equal(t, len(cat.Fixed)+20, added)
	assert.Equal(t, added, w.Len())

	flower, ok := w.ObjectByID("flower1")
	require.True(t, ok)
	assert.InDelta(t, 1000.0, flower.X, 1e-9)
	assert.InDelta(t, 900.0, flower.Y, 1e-9)
	assert.True(t, flower.CanPickup)

	rabbit, ok := w.ObjectByID("rabbit1")
	require.True(t, ok)
	assert.Equal(t, KindCharacter, rabbit.Kind)
	assert.NotEmpty(t, rabbit.GiftReactions)

	for _, obj := range w.Objects() {
		assert.True(t, obj.X >= 0 && obj.X <= 5000, obj.ID)
		assert.True(t, obj.Y >= 0 && obj.Y <= 3000, obj.ID)
	}

	// Seeding a populated world is a no-op.
	assert.Zero(t, w.Seed(rand.New(rand.NewSource(2)), cat, 20))
}

func TestLoadCatalogRejectsBadInput(t *testing.T) {
	_, err := LoadCatalog([]byte("fixed: [unterminated"))
	assert.Error(t, err)

	_, err = LoadCatalog([]byte("items: []\ncharacters: []\n"))
	assert.Error(t, err)

	_, err = LoadCatalog([]byte(`
fixed:
  - id: odd
    kind: building
items:
  - name: a
characters:
  - name: b
`))
	assert.Error(t, err)
}

func TestStateRoundTripAndDefaults(t *testing.T) {
	w := New(4000, 2000)
	w.SetViewport(800, 600)
	w.AddObject(&Object{ID: "a", X: 10, Y: 20, Kind: KindItem, GiftReactions: map[string]string{"x": "y"}})
	w.UpdateCamera(Point{X: 3000, Y: 1500})

	s := w.State()
	s.Objects[0].GiftReactions["x"] = "changed"

	restored := New(1, 1)
	restored.LoadState(w.State())
	width, height := restored.Size()
	assert.Equal(t, 4000.0, width)
	assert.Equal(t, 2000.0, height)
	assert.Equal(t, w.Camera(), restored.Camera())
	obj, ok := restored.ObjectByID("a")
	require.True(t, ok)
	assert.Equal(t, "y", obj.GiftReactions["x"])

	empty := New(1, 1)
	empty.LoadState(State{})
	width, height = empty.Size()
	assert.Equal(t, DefaultWidth, width)
	assert.Equal(t, DefaultHeight, height)
	assert.Equal(t, Point{}, empty.Camera())
}

func TestCatalogSpriteIDs(t *testing.T) {
	ids := DefaultCatalog().SpriteIDs()
	assert.Equal(t, CharacterSprite, ids[0])
	assert.ElementsMatch(t, []string{
		CharacterSprite, "item_flower", "item_stone", "item_crystal", "char_pixel_rabbit", "char_pixel_fox",
	}, ids)
}
