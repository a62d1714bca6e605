package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/wayfarer/internal/collection"
	"chosenoffset.com/wayfarer/internal/interaction"
	"chosenoffset.com/wayfarer/internal/journal"
	"chosenoffset.com/wayfarer/internal/render/rendertest"
	"chosenoffset.com/wayfarer/internal/timer"
	"chosenoffset.com/wayfarer/internal/world"
)

func TestWrapText(t *testing.T) {
	r := &rendertest.Renderer{}
	// 10px per rune at size 20.
	lines := WrapText(r, "the quick brown fox", 20, 100)
	assert.Equal(t, []string{"the quick", "brown fox"}, lines)

	lines = WrapText(r, "extraordinarily long", 20, 50)
	assert.Equal(t, []string{"extraordinarily", "long"}, lines)

	assert.Equal(t, []string{"a", "", "b"}, WrapText(r, "a\n\nb", 20, 100))
}

func sampleSession() interaction.Session {
	return interaction.Session{
		Mode:    interaction.ModeDescription,
		Title:   "Sunflower",
		Content: "A bright yellow flower.",
		Options: []interaction.Option{
			{Action: interaction.ActionPickup, Label: "Pick up"},
			{Action: interaction.ActionExamine, Label: "Examine"},
		},
		Generation: 1,
	}
}

func TestLayoutPopup(t *testing.T) {
	r := &rendertest.Renderer{}
	l := LayoutPopup(r, sampleSession(), 1280, 720)

	require.False(t, l.Empty())
	assert.Equal(t, PopupMaxWidth, l.Box.W)
	assert.Equal(t, (1280-PopupMaxWidth)/2, l.Box.X)
	assert.LessOrEqual(t, l.Box.Y+l.Box.H, 720.0)
	require.Len(t, l.Options, 2)
	assert.Less(t, l.Options[0].Rect.Y, l.Options[1].Rect.Y)
	for _, ob := range l.Options {
		assert.GreaterOrEqual(t, ob.Rect.Y, l.Box.Y)
		assert.LessOrEqual(t, ob.Rect.Y+ob.Rect.H, l.Box.Y+l.Box.H)
	}
}

func TestLayoutPopupNarrowScreen(t *testing.T) {
	l := LayoutPopup(&rendertest.Renderer{}, sampleSession(), 300, 200)
	assert.Equal(t, 300-2*PopupMargin, l.Box.W)
	assert.GreaterOrEqual(t, l.Box.Y, PopupMargin)
}

func TestLayoutPopupClosed(t *testing.T) {
	l := LayoutPopup(&rendertest.Renderer{}, interaction.Session{}, 1280, 720)
	assert.True(t, l.Empty())
	hit, _ := l.HitTest(640, 360)
	assert.Equal(t, HitOutside, hit)
}

func TestPopupHitTest(t *testing.T) {
	l := LayoutPopup(&rendertest.Renderer{}, sampleSession(), 1280, 720)

	second := l.Options[1].Rect
	hit, idx := l.HitTest(second.X+5, second.Y+5)
	assert.Equal(t, HitOption, hit)
	assert.Equal(t, 1, idx)

	hit, _ = l.HitTest(l.Box.X+2, l.Box.Y+2)
	assert.Equal(t, HitBody, hit)

	hit, _ = l.HitTest(5, 5)
	assert.Equal(t, HitOutside, hit)
}

func TestDrawPopup(t *testing.T) {
	r := &rendertest.Renderer{}
	l := LayoutPopup(r, sampleSession(), 1280, 720)
	DrawPopup(r, rendertest.NewImage(1280, 720), l)

	assert.True(t, r.HasText("Sunflower"))
	assert.True(t, r.HasText("Pick up"))
	assert.True(t, r.HasText("Examine"))
}

func TestNotifications(t *testing.T) {
	sched := timer.New()
	n := NewNotifications(sched)

	n.Notify("Picked up Sunflower")
	msg, alpha := n.Current()
	assert.Equal(t, "Picked up Sunflower", msg)
	assert.Equal(t, 0.0, alpha)

	sched.Advance(NotifyFade)
	_, alpha = n.Current()
	assert.Equal(t, 1.0, alpha)

	sched.Advance(NotifyDuration - NotifyFade - 150*time.Millisecond)
	_, alpha = n.Current()
	assert.InDelta(t, 0.5, alpha, 1e-9)

	sched.Advance(150 * time.Millisecond)
	msg, _ = n.Current()
	assert.Empty(t, msg)
}

func TestNotificationReplaces(t *testing.T) {
	sched := timer.New()
	n := NewNotifications(sched)

	n.Notify("first")
	sched.Advance(2 * time.Second)
	n.Notify("second")
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(2 * time.Second)
	msg, _ := n.Current()
	assert.Equal(t, "second", msg, "the first timer must not hide the second message")

	sched.Advance(time.Second)
	msg, _ = n.Current()
	assert.Empty(t, msg)
}

func TestMarker(t *testing.T) {
	sched := timer.New()
	m := NewMarker(sched)

	_, ok := m.Visible()
	assert.False(t, ok)

	m.Show(world.Point{X: 10, Y: 20})
	p, ok := m.Visible()
	assert.True(t, ok)
	assert.Equal(t, world.Point{X: 10, Y: 20}, p)

	sched.Advance(MarkerDuration - time.Millisecond)
	_, ok = m.Visible()
	assert.True(t, ok)

	sched.Advance(time.Millisecond)
	_, ok = m.Visible()
	assert.False(t, ok)
}

func TestMinimap(t *testing.T) {
	mm := LayoutMinimap(1280, 5000, 3000)
	assert.Equal(t, MinimapWidth, mm.Box.W)
	assert.InDelta(t, 108.0, mm.Box.H, 1e-9)

	x, y := mm.Project(world.Point{X: 5000, Y: 3000})
	assert.InDelta(t, mm.Box.X+mm.Box.W, x, 1e-9)
	assert.InDelta(t, mm.Box.Y+mm.Box.H, y, 1e-9)

	r := &rendertest.Renderer{}
	w := world.New(5000, 3000)
	w.AddObject(&world.Object{ID: "a", X: 1, Y: 1, Kind: world.KindItem, Name: "A"})
	mm.Draw(r, rendertest.NewImage(1280, 720), w, world.Point{X: 2500, Y: 1500})
	assert.Equal(t, 2, r.Circles)

	assert.Zero(t, LayoutMinimap(1280, 0, 0).Box.W)
}

func TestMenu(t *testing.T) {
	var m Menu
	assert.False(t, m.IsOpen())

	m.Toggle()
	assert.True(t, m.IsOpen())
	assert.Equal(t, TabJournal, m.Tab())

	_, tabs := MenuLayout(1280, 720)
	m.HandlePress(tabs[1].X+1, tabs[1].Y+1, 1280, 720)
	assert.Equal(t, TabCollection, m.Tab())
	assert.True(t, m.IsOpen())

	m.HandlePress(5, 5, 1280, 720)
	assert.False(t, m.IsOpen())

	m.Show(TabJournal)
	r := &rendertest.Renderer{}
	m.Draw(r, rendertest.NewImage(1280, 720),
		[]journal.Entry{{Type: journal.TypeItem, Title: "Found Sunflower", Content: "Bright."}},
		[]collection.Item{{ID: "flower1", Name: "Sunflower", Quantity: 2}})
	assert.True(t, r.HasText("Found Sunflower"))
	assert.False(t, r.HasText("Sunflower x2"))

	r.Reset()
	m.Show(TabCollection)
	m.Draw(r, rendertest.NewImage(1280, 720), nil, []collection.Item{{ID: "flower1", Name: "Sunflower", Quantity: 2}})
	assert.True(t, r.HasText("Sunflower x2"))
}
