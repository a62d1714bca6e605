package assets

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/wayfarer/internal/placeholders"
	"chosenoffset.com/wayfarer/internal/render"
)

// Manifest names the images a session needs.
type Manifest struct {
	Background string   // File path; "" uses the placeholder gradient
	SpriteDir  string   // Directory holding <id>.png
	Sprites    []string // Sprite ids
}

// Set is the loaded images. Every sprite in the manifest has an entry.
type Set struct {
	Background            render.Image
	BackgroundPlaceholder bool
	Sprites               map[string]render.Image
}

// Sprite returns the image for an id, or nil.
func (s *Set) Sprite(id string) render.Image {
	return s.Sprites[id]
}

// Loader decodes images in parallel.
type Loader struct {
	resources render.ResourceLoader
	renderer  render.Renderer
	log       logrus.FieldLogger

	// Workers bounds the number of concurrent decodes.
	Workers int
	// PlaceholderWidth and PlaceholderHeight size the fallback background.
	PlaceholderWidth, PlaceholderHeight int
}

// NewLoader creates a loader. resources must be safe for concurrent use.
func NewLoader(resources render.ResourceLoader, renderer render.Renderer, log logrus.FieldLogger) *Loader {
	return &Loader{
		resources:         resources,
		renderer:          renderer,
		log:               log,
		Workers:           4,
		PlaceholderWidth:  1280,
		PlaceholderHeight: 720,
	}
}

// Load decodes the manifest. A missing or broken image is logged and
// replaced by a placeholder; only cancellation of ctx returns an error.
func (l *Loader) Load(ctx context.Context, m Manifest) (*Set, error) {
	var (
		mu     sync.Mutex
		loaded = make(map[string]render.Image, len(m.Sprites)+1)
	)

	g, gctx := errgroup.WithContext(ctx)
	if l.Workers > 0 {
		g.SetLimit(l.Workers)
	}

	load := func(key, path string) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			img, err := l.resources.LoadImage(path)
			if err != nil {
				l.log.WithError(err).WithField("path", path).Warn("Failed to load image, using placeholder")
				return nil
			}
			mu.Lock()
			loaded[key] = img
			mu.Unlock()
			return nil
		})
	}

	if m.Background != "" {
		load("", m.Background)
	}
	seen := make(map[string]bool, len(m.Sprites))
	for _, id := range m.Sprites {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		load(id, SpritePath(m.SpriteDir, id))
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	set := &Set{Sprites: make(map[string]render.Image, len(m.Sprites))}
	if bg, ok := loaded[""]; ok {
		set.Background = bg
	} else {
		set.Background = l.renderer.NewImageFromImage(placeholders.Background(l.PlaceholderWidth, l.PlaceholderHeight))
		set.BackgroundPlaceholder = true
	}
	for _, id := range m.Sprites {
		if id == "" {
			continue
		}
		if _, ok := set.Sprites[id]; ok {
			continue
		}
		if img, ok := loaded[id]; ok {
			set.Sprites[id] = img
		} else {
			set.Sprites[id] = l.renderer.NewImageFromImage(placeholders.Sprite(id))
		}
	}

	l.log.WithFields(logrus.Fields{
		"sprites":     len(set.Sprites),
		"placeholder": set.BackgroundPlaceholder,
	}).Info("Assets loaded")
	return set, nil
}
