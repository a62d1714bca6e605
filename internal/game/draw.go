package game

import (
	"image/color"

	"chosenoffset.com/wayfarer/internal/actor"
	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/ui"
	"chosenoffset.com/wayfarer/internal/world"
)

var (
	groundColor = color.RGBA{120, 180, 90, 255}
	labelColor  = color.RGBA{255, 255, 255, 230}
)

// Draw renders the session to the screen.
func (g *Game) Draw(screen render.Image) {
	if g.Renderer == nil {
		return
	}

	g.drawBackground(screen)
	g.drawObjects(screen)
	g.drawCharacter(screen)
	g.Marker.Draw(g.Renderer, screen, g.World)

	w, h := g.World.Size()
	ui.LayoutMinimap(g.ScreenWidth, w, h).Draw(g.Renderer, screen, g.World, g.Actor.Position())
	g.Notes.Draw(g.Renderer, screen)

	ui.DrawPopup(g.Renderer, screen, ui.LayoutPopup(g.Renderer, g.Popup.Session(), g.ScreenWidth, g.ScreenHeight))
	g.Menu.Draw(g.Renderer, screen, g.Journal.Entries(), g.Collection.Items())
}

func (g *Game) drawBackground(screen render.Image) {
	if g.Background == nil {
		screen.Fill(groundColor)
		return
	}

	bw, bh := g.Background.Size()
	ww, wh := g.World.Size()
	cam := g.World.Camera()

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	if bw > 0 && bh > 0 {
		opts.GeoM.Scale(ww/float64(bw), wh/float64(bh))
	}
	opts.GeoM.Translate(-cam.X, -cam.Y)
	screen.DrawImage(g.Background, opts)
}

func (g *Game) drawObjects(screen render.Image) {
	vw, vh := g.World.Viewport()
	for _, obj := range g.World.Objects() {
		p := g.World.WorldToScreen(obj.X, obj.Y)
		if p.X < -objectSize || p.Y < -objectSize || p.X > vw+objectSize || p.Y > vh+objectSize {
			continue
		}
		g.drawSprite(screen, obj.Image, p, objectSize, false, spriteColor(obj))

		tw, _ := g.Renderer.MeasureText(obj.Name, ui.BodySize-4)
		g.Renderer.DrawText(screen, obj.Name, p.X-tw/2, p.Y+objectSize/2+2, labelColor, ui.BodySize-4)
	}
}

func (g *Game) drawCharacter(screen render.Image) {
	pos := g.Actor.Position()
	p := g.World.WorldToScreen(pos.X, pos.Y)
	flip := g.Actor.Facing() == actor.FacingLeft
	g.drawSprite(screen, world.CharacterSprite, p, characterSize, flip, color.RGBA{70, 130, 220, 255})
}

// drawSprite draws a sprite centred on p, or a disc when it is missing.
func (g *Game) drawSprite(screen render.Image, id string, p world.Point, size float64, flip bool, fallback color.Color) {
	img := g.Sprites[id]
	if img == nil {
		g.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), float32(size/2), fallback)
		g.Renderer.StrokeCircle(screen, float32(p.X), float32(p.Y), float32(size/2), 2, color.RGBA{0, 0, 0, 120})
		return
	}

	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}
	scale := size / float64(max(w, h))

	opts := &render.DrawImageOptions{}
	opts.GeoM = render.NewGeoM()
	opts.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	if flip {
		opts.GeoM.Scale(-scale, scale)
	} else {
		opts.GeoM.Scale(scale, scale)
	}
	opts.GeoM.Translate(p.X, p.Y)
	screen.DrawImage(img, opts)
}

func spriteColor(obj *world.Object) color.Color {
	if obj.Kind == world.KindCharacter {
		return color.RGBA{210, 150, 80, 255}
	}
	return color.RGBA{255, 215, 0, 255}
}
