package game

import (
	"chosenoffset.com/wayfarer/internal/audio"
	"chosenoffset.com/wayfarer/internal/input"
	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/ui"
)

func (g *Game) handleEvent(ev input.Event) {
	if ev.Kind == input.KeyDown {
		g.handleKey(ev.Key)
		return
	}

	switch input.Route(g.Popup.IsOpen(), g.Menu.IsOpen()) {
	case input.TargetModal:
		g.pressing = false
		if ev.Kind == input.PointerDown {
			g.pressPopup(ev.X, ev.Y)
		}
	case input.TargetMenu:
		g.pressing = false
		if ev.Kind == input.PointerDown {
			g.Menu.HandlePress(ev.X, ev.Y, g.ScreenWidth, g.ScreenHeight)
		}
	default:
		g.pointerWorld(ev)
	}
}

func (g *Game) handleKey(key render.Key) {
	switch key {
	case render.KeyEscape:
		if g.Popup.IsOpen() {
			g.Popup.Dismiss()
		} else if g.Menu.IsOpen() {
			g.Menu.Close()
		}
	case render.KeyM:
		if !g.Popup.IsOpen() {
			g.Menu.Toggle()
		}
	case render.KeyJ:
		if !g.Popup.IsOpen() {
			g.Menu.Show(ui.TabJournal)
		}
	case render.KeyC:
		if !g.Popup.IsOpen() {
			g.Menu.Show(ui.TabCollection)
		}
	}
}

func (g *Game) pressPopup(x, y float64) {
	layout := ui.LayoutPopup(g.Renderer, g.Popup.Session(), g.ScreenWidth, g.ScreenHeight)
	switch hit, idx := layout.HitTest(x, y); hit {
	case ui.HitOption:
		g.Popup.ChooseIndex(idx)
	case ui.HitOutside:
		g.Popup.Dismiss()
	}
}

func (g *Game) pointerWorld(ev input.Event) {
	x, y := ev.X, ev.Y
	switch ev.Kind {
	case input.PointerDown:
		g.startMusic()
		p := g.World.ScreenToWorld(x, y)
		if g.cfg.Interaction.ClickToInteract {
			if obj := g.World.FindObjectAt(p.X, p.Y); obj != nil {
				g.focus(obj)
				return
			}
		}
		g.pressing = true
		g.pressX, g.pressY = x, y
		g.Actor.MoveTo(p.X, p.Y)
	case input.PointerMove:
		if g.pressing {
			g.pressX, g.pressY = x, y
		}
	case input.PointerUp:
		g.pressing = false
	}
}

// startMusic plays a random track on the first press of the session.
func (g *Game) startMusic() {
	if g.bgmStarted {
		return
	}
	g.bgmStarted = true
	track := audio.RandomTrack(g.rng)
	g.Audio.PlayBgm(track)
	g.log.WithField("track", track).Debug("Background music started")
}
