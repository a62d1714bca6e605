package main

import (
	"context"
	"flag"
	"math/rand"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/assets"
	"chosenoffset.com/wayfarer/internal/audio"
	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/game"
	"chosenoffset.com/wayfarer/internal/interaction"
	"chosenoffset.com/wayfarer/internal/logging"
	"chosenoffset.com/wayfarer/internal/render"
	ebitenrender "chosenoffset.com/wayfarer/internal/render/ebiten"
	"chosenoffset.com/wayfarer/internal/storage"
	"chosenoffset.com/wayfarer/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to the YAML config file")
	background := flag.String("background", "", "Image file to use as a custom background")
	clearBackground := flag.Bool("clear-background", false, "Forget the stored custom background")
	flag.Parse()

	cfg, created, err := config.LoadProfile(*configPath)
	log := logging.New(cfg.Log)
	if err != nil {
		log.WithError(err).WithField("path", *configPath).Warn("Config problem, continuing without changing the file")
	}
	if created {
		log.WithField("profile", cfg.Storage.ProfileID).Info("Created new profile")
	}

	seed := cfg.World.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	loader := ebitenrender.NewResourceLoader()
	engine := ebitenrender.NewEngine()

	store, err := storage.Open(cfg.Storage, log)
	if err != nil {
		log.WithError(err).Warn("Storage unavailable, progress will not be kept")
		store = storage.NewMemoryStore(cfg.Storage.QuotaBytes)
	}
	svc := storage.NewService(store, log)

	ctx := context.Background()
	if !store.Available(ctx) {
		log.WithField("backend", cfg.Storage.Backend).Warn("Storage not reachable, progress will not be kept")
	}

	catalog := world.DefaultCatalog()
	set, err := loadAssets(ctx, cfg, rng, loader, renderer, catalog, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to load assets")
	}

	var player audio.Player = &audio.Nop{}
	if cfg.Audio.Enabled {
		player = audio.NewEbitenPlayer(cfg.Audio.Dir, log)
	}

	g := game.New(game.Deps{
		Config:    cfg,
		Renderer:  renderer,
		Input:     inputMgr,
		Audio:     player,
		Storage:   svc,
		Assets:    set,
		Catalog:   catalog,
		Reactions: interaction.DefaultReactions(),
		Rand:      rng,
		Log:       log,
	})
	g.Load(ctx)

	if *clearBackground {
		g.ClearCustomBackground(ctx)
	}
	if *background != "" {
		data, err := os.ReadFile(*background)
		if err != nil {
			log.WithError(err).Warn("Could not read custom background")
		} else if g.SetCustomBackground(ctx, data) {
			g.Notes.Notify("Background updated")
		}
	}

	manager := game.NewManager(g, engine, renderer, log)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)
	engine.SetWindowClosingHandled(true)

	log.Info("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.WithError(err).Fatal("Game exited with an error")
	}
}

func loadAssets(ctx context.Context, cfg *config.Config, rng *rand.Rand, loader render.ResourceLoader, renderer render.Renderer, catalog *world.Catalog, log logrus.FieldLogger) (*assets.Set, error) {
	backgrounds, err := assets.ScanBackgrounds(cfg.World.BackgroundDir)
	if err != nil {
		log.WithError(err).Warn("No background images found")
	}

	return assets.NewLoader(loader, renderer, log).Load(ctx, assets.Manifest{
		Background: assets.PickBackground(rng, backgrounds),
		SpriteDir:  cfg.Assets.Dir,
		Sprites:    catalog.SpriteIDs(),
	})
}
