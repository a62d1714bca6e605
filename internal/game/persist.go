package game

import (
	"context"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/assets"
	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/storage"
)

// Snapshot captures the session for saving. The service stamps the time.
func (g *Game) Snapshot() storage.Snapshot {
	ws := g.World.State()
	cs := g.Actor.State()
	js := g.Journal.State()
	ls := g.Collection.State()
	return storage.Snapshot{
		World:      &ws,
		Character:  &cs,
		Journal:    &js,
		Collection: &ls,
	}
}

// Restore applies a loaded snapshot. With fresh set the saved world and
// character are dropped and only the journal and collection carry over.
// Missing sections leave the current state alone.
func (g *Game) Restore(snap *storage.Snapshot, fresh bool) {
	g.Popup.Dismiss()
	g.Trigger.Reset()
	g.pressing = false

	if !fresh {
		if snap.World != nil {
			g.World.LoadState(*snap.World)
		}
		if snap.Character != nil {
			g.Actor.LoadState(*snap.Character)
		}
	}
	if snap.Journal != nil {
		g.Journal.LoadState(*snap.Journal)
	}
	if snap.Collection != nil {
		g.Collection.LoadState(*snap.Collection)
	}
	g.Journal.EnsureWelcome()
	g.World.UpdateCamera(g.Actor.Position())
}

// Load applies saved settings, the custom background and the saved game.
// Anything missing or invalid is skipped and the fresh session stays.
func (g *Game) Load(ctx context.Context) {
	if g.Storage == nil {
		return
	}

	settings, _ := g.Storage.LoadSettings(ctx)
	g.Audio.SetVolumes(settings.BGMVolume, settings.SFXVolume, settings.Muted)

	if data, ok := g.Storage.LoadCustomBackground(ctx); ok {
		g.applyCustomBackground(data)
	}

	snap, ok := g.Storage.LoadGameData(ctx)
	if !ok {
		g.log.Info("No saved game, starting fresh")
		return
	}
	g.Restore(snap, g.cfg.Storage.FreshWorldOnLoad)
	g.log.WithFields(logrus.Fields{
		"fresh_world": g.cfg.Storage.FreshWorldOnLoad,
		"objects":     g.World.Len(),
		"items":       g.Collection.Count(),
	}).Info("Saved game restored")
}

// Save writes the current snapshot.
func (g *Game) Save(ctx context.Context) bool {
	if g.Storage == nil {
		return false
	}
	return g.Storage.SaveGameData(ctx, g.Snapshot())
}

// SetCustomBackground replaces the background with user supplied image
// bytes and stores them. The world takes the image's native size.
func (g *Game) SetCustomBackground(ctx context.Context, data []byte) bool {
	if !g.applyCustomBackground(data) {
		return false
	}
	if g.Storage != nil && !g.Storage.SaveCustomBackground(ctx, data) {
		g.Notes.Notify("The image is too large to keep for next time")
	}
	return true
}

func (g *Game) applyCustomBackground(data []byte) bool {
	img, err := assets.DecodeImage(data)
	if err != nil {
		g.log.WithError(err).Warn("Ignoring custom background")
		return false
	}
	if g.Renderer != nil {
		g.replaceBackground(g.Renderer.NewImageFromImage(img))
	}
	b := img.Bounds()
	g.World.SetCustomBackground(b.Dx(), b.Dy())
	g.settleActor()
	return true
}

// ClearCustomBackground goes back to the regular background and forgets
// the stored image.
func (g *Game) ClearCustomBackground(ctx context.Context) {
	g.replaceBackground(g.baseBackground)
	var w, h int
	if g.Background != nil && !g.basePlaceholder {
		w, h = g.Background.Size()
	}
	g.World.ClearCustomBackground(w, h, g.cfg.World.BackgroundScale)
	g.settleActor()
	if g.Storage != nil {
		g.Storage.ClearCustomBackground(ctx)
	}
}

// replaceBackground swaps in img and releases the previous custom image.
// The regular background is shared with the asset set and never disposed.
func (g *Game) replaceBackground(img render.Image) {
	if g.Background != nil && g.Background != g.baseBackground && g.Background != img {
		g.Background.Dispose()
	}
	g.Background = img
}

// settleActor keeps the character inside a resized world.
func (g *Game) settleActor() {
	pos := g.Actor.Position()
	g.Actor.Place(pos.X, pos.Y)
	g.World.UpdateCamera(g.Actor.Position())
}
