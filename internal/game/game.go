package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/actor"
	"chosenoffset.com/wayfarer/internal/audio"
	"chosenoffset.com/wayfarer/internal/collection"
	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/input"
	"chosenoffset.com/wayfarer/internal/interaction"
	"chosenoffset.com/wayfarer/internal/journal"
	"chosenoffset.com/wayfarer/internal/logging"
	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/storage"
	"chosenoffset.com/wayfarer/internal/timer"
	"chosenoffset.com/wayfarer/internal/ui"
	"chosenoffset.com/wayfarer/internal/world"
)

// saveTimeout bounds a single autosave against a slow store.
const saveTimeout = 2 * time.Second

// Game is one play session. Everything it owns is touched only from the
// update goroutine.
type Game struct {
	ScreenWidth  int
	ScreenHeight int
	SessionID    string

	World      *world.World
	Actor      *actor.Controller
	Trigger    *actor.Trigger
	Popup      *interaction.Machine
	Collection *collection.Collection
	Journal    *journal.Journal
	Scheduler  *timer.Scheduler
	Queue      *input.Queue
	Notes      *ui.Notifications
	Marker     *ui.Marker
	Menu       ui.Menu

	Renderer   render.Renderer
	Audio      audio.Player
	Storage    *storage.Service
	Background render.Image
	Sprites    map[string]render.Image

	baseBackground  render.Image
	basePlaceholder bool

	cfg    *config.Config
	log    logrus.FieldLogger
	rng    *rand.Rand
	poller *input.Poller

	pressing       bool
	pressX, pressY float64
	bgmStarted     bool
	lastSave       time.Duration
}

// New builds a session with a freshly seeded world. Call Load to apply
// saved data.
func New(deps Deps) *Game {
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := deps.Log
	if log == nil {
		log = logging.Discard()
	}
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	player := deps.Audio
	if player == nil {
		player = &audio.Nop{}
	}
	catalog := deps.Catalog
	if catalog == nil {
		catalog = world.DefaultCatalog()
	}
	reactions := deps.Reactions
	if reactions == nil {
		reactions = interaction.DefaultReactions()
	}

	sessionID := uuid.NewString()
	log = log.WithField("session", sessionID)

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		SessionID:    sessionID,
		World:        world.New(cfg.World.DefaultWidth, cfg.World.DefaultHeight),
		Trigger:      actor.NewTrigger(cfg.Interaction),
		Collection:   collection.New(),
		Journal:      journal.New(),
		Scheduler:    timer.New(),
		Queue:        &input.Queue{},
		Renderer:     deps.Renderer,
		Audio:        player,
		Storage:      deps.Storage,
		Sprites:      map[string]render.Image{},
		cfg:          cfg,
		log:          log,
		rng:          rng,
	}

	if deps.Assets != nil {
		g.Background = deps.Assets.Background
		g.Sprites = deps.Assets.Sprites
		g.baseBackground = g.Background
		g.basePlaceholder = deps.Assets.BackgroundPlaceholder
		if g.Background != nil && !deps.Assets.BackgroundPlaceholder {
			w, h := g.Background.Size()
			g.World.SetBackgroundSize(w, h, cfg.World.BackgroundScale)
		}
	}
	g.World.SetViewport(float64(g.ScreenWidth), float64(g.ScreenHeight))

	if deps.Input != nil {
		g.poller = input.NewPoller(deps.Input)
	}

	g.Notes = ui.NewNotifications(g.Scheduler)
	g.Marker = ui.NewMarker(g.Scheduler)
	g.Actor = actor.New(g.World, cfg.Actor)
	g.Popup = interaction.New(interaction.Deps{
		World:          g.World,
		Collection:     g.Collection,
		Journal:        g.Journal,
		Sounds:         g.Audio,
		Notifier:       g.Notes,
		Scheduler:      g.Scheduler,
		Reactions:      reactions,
		Rand:           rng,
		Log:            log,
		ReactionLinger: cfg.Interaction.ReactionLinger,
	})
	g.Collection.OnChange = func() {
		g.log.WithField("items", g.Collection.Count()).Debug("Collection changed")
	}

	seeded := g.World.Seed(rng, catalog, cfg.World.ScatterCount)
	g.Journal.EnsureWelcome()
	g.World.UpdateCamera(g.Actor.Position())

	w, h := g.World.Size()
	log.WithFields(logrus.Fields{
		"objects": seeded,
		"width":   w,
		"height":  h,
	}).Info("World created")
	return g
}

// Now returns the session's simulated clock.
func (g *Game) Now() time.Duration {
	return g.Scheduler.Now()
}

// Tick advances the session by dt of simulated time.
func (g *Game) Tick(dt time.Duration) {
	g.Scheduler.Advance(dt)

	if g.poller != nil {
		g.poller.Poll(g.Queue)
	}
	for _, ev := range g.Queue.Drain() {
		g.handleEvent(ev)
	}

	blocked := g.Popup.IsOpen() || g.Menu.IsOpen()
	if g.pressing && !blocked {
		p := g.World.ScreenToWorld(g.pressX, g.pressY)
		g.Actor.MoveTo(p.X, p.Y)
	}

	step := g.Actor.Tick(g.rng)
	if step.Arrived {
		pos := g.Actor.Position()
		if obj := g.World.FindObjectAt(pos.X, pos.Y); obj != nil {
			g.Marker.Show(obj.Pos())
		}
	}
	if step.Probe && !g.Popup.IsOpen() && !g.Menu.IsOpen() {
		g.probe()
	}

	g.World.UpdateCamera(g.Actor.Position())
	g.autosave()
}

// probe runs the proximity check around the character.
func (g *Game) probe() {
	pos := g.Actor.Position()
	obj := g.World.FindObjectNear(pos.X, pos.Y, g.cfg.Actor.ProbeRadius)
	switch g.Trigger.Decide(obj, g.Now()) {
	case actor.DecisionCollect:
		g.Popup.Collect(obj)
	case actor.DecisionFocus:
		g.focus(obj)
	}
}

func (g *Game) focus(obj *world.Object) {
	g.Actor.Stop()
	g.pressing = false
	g.Popup.Focus(obj)
}

func (g *Game) autosave() {
	interval := g.cfg.AutosaveInterval
	if interval <= 0 || g.Storage == nil {
		return
	}
	if g.Now()-g.lastSave < interval {
		return
	}
	g.lastSave = g.Now()

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	g.Save(ctx)
}

// Resize updates the viewport after the window changed.
func (g *Game) Resize(width, height int) {
	if width == g.ScreenWidth && height == g.ScreenHeight {
		return
	}
	g.ScreenWidth = width
	g.ScreenHeight = height
	g.World.SetViewport(float64(width), float64(height))
	g.World.UpdateCamera(g.Actor.Position())
}
