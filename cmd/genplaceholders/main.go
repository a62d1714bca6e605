package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"chosenoffset.com/wayfarer/internal/assets"
	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/placeholders"
	"chosenoffset.com/wayfarer/internal/world"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Config file with the asset directories")
	flag.Parse()

	fmt.Println("Wayfarer Placeholder Graphics Generator")
	fmt.Println("=======================================")
	fmt.Println()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := generate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Placeholder graphics are ready to use.")
}

func generate(cfg *config.Config) error {
	for _, dir := range []string{cfg.World.BackgroundDir, cfg.Assets.Dir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	bg := filepath.Join(cfg.World.BackgroundDir, "placeholder.png")
	if err := placeholders.SavePNG(placeholders.Background(1280, 720), bg); err != nil {
		return err
	}
	fmt.Printf("  wrote %s\n", bg)

	for _, id := range world.DefaultCatalog().SpriteIDs() {
		path := assets.SpritePath(cfg.Assets.Dir, id)
		if err := placeholders.SavePNG(placeholders.Sprite(id), path); err != nil {
			return err
		}
		fmt.Printf("  wrote %s\n", path)
	}
	return nil
}
