package ui

import (
	"fmt"
	"image/color"

	"chosenoffset.com/wayfarer/internal/collection"
	"chosenoffset.com/wayfarer/internal/journal"
	"chosenoffset.com/wayfarer/internal/render"
)

// Tab selects what the menu overlay lists.
type Tab int

const (
	TabJournal Tab = iota
	TabCollection
)

func (t Tab) String() string {
	if t == TabCollection {
		return "Collection"
	}
	return "Journal"
}

// Menu is the journal and collection overlay.
type Menu struct {
	open bool
	tab  Tab
}

func (m *Menu) IsOpen() bool { return m.open }
func (m *Menu) Tab() Tab     { return m.tab }
func (m *Menu) Close()       { m.open = false }

// Toggle opens or closes the overlay, keeping the last tab.
func (m *Menu) Toggle() {
	m.open = !m.open
}

// Show opens the overlay on a tab.
func (m *Menu) Show(tab Tab) {
	m.open = true
	m.tab = tab
}

const (
	menuMargin    = 40.0
	menuTabWidth  = 140.0
	menuTabHeight = 32.0
	menuRowHeight = 24.0
)

var (
	menuBg       = color.RGBA{20, 20, 30, 230}
	menuText     = color.RGBA{220, 220, 220, 255}
	menuDim      = color.RGBA{140, 140, 140, 255}
	menuSelected = color.RGBA{255, 255, 150, 255}
)

// MenuLayout returns the overlay box and the two tab rectangles.
func MenuLayout(screenW, screenH int) (box Rect, tabs [2]Rect) {
	box = Rect{X: menuMargin, Y: menuMargin, W: float64(screenW) - 2*menuMargin, H: float64(screenH) - 2*menuMargin}
	for i := range tabs {
		tabs[i] = Rect{X: box.X + 16 + float64(i)*(menuTabWidth+8), Y: box.Y + 16, W: menuTabWidth, H: menuTabHeight}
	}
	return box, tabs
}

// HandlePress applies a pointer press while the overlay is open. A press
// on a tab switches to it and a press outside the box closes the overlay.
func (m *Menu) HandlePress(x, y float64, screenW, screenH int) {
	box, tabs := MenuLayout(screenW, screenH)
	for i, r := range tabs {
		if r.Contains(x, y) {
			m.tab = Tab(i)
			return
		}
	}
	if !box.Contains(x, y) {
		m.open = false
	}
}

// Draw renders the overlay.
func (m *Menu) Draw(r render.Renderer, screen render.Image, entries []journal.Entry, items []collection.Item) {
	if !m.open {
		return
	}
	sw, sh := screen.Size()
	box, tabs := MenuLayout(sw, sh)
	r.FillRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), menuBg)

	for i, t := range tabs {
		clr := menuDim
		if Tab(i) == m.tab {
			clr = menuSelected
		}
		r.StrokeRect(screen, float32(t.X), float32(t.Y), float32(t.W), float32(t.H), 1, clr)
		r.DrawText(screen, Tab(i).String(), t.X+12, t.Y+8, clr, BodySize)
	}

	y := tabs[0].Y + menuTabHeight + 16
	maxY := box.Y + box.H - menuRowHeight
	switch m.tab {
	case TabJournal:
		if len(entries) == 0 {
			r.DrawText(screen, "No entries yet.", box.X+16, y, menuDim, BodySize)
		}
		for _, e := range entries {
			if y > maxY {
				break
			}
			r.DrawText(screen, e.Title, box.X+16, y, menuText, BodySize)
			y += menuRowHeight
			for _, line := range WrapText(r, e.Content, BodySize-2, box.W-48) {
				if y > maxY {
					break
				}
				r.DrawText(screen, line, box.X+32, y, menuDim, BodySize-2)
				y += menuRowHeight
			}
		}
	case TabCollection:
		if len(items) == 0 {
			r.DrawText(screen, "Nothing collected yet.", box.X+16, y, menuDim, BodySize)
		}
		for _, it := range items {
			if y > maxY {
				break
			}
			r.DrawText(screen, fmt.Sprintf("%s x%d", it.Name, it.Quantity), box.X+16, y, menuText, BodySize)
			y += menuRowHeight
		}
	}

	r.DrawText(screen, "M: close   J: journal   C: collection", box.X+16, box.Y+box.H-menuRowHeight, menuDim, BodySize-4)
}
