package game

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/assets"
	"chosenoffset.com/wayfarer/internal/audio"
	"chosenoffset.com/wayfarer/internal/config"
	"chosenoffset.com/wayfarer/internal/interaction"
	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/storage"
	"chosenoffset.com/wayfarer/internal/world"
)

// Deps are the collaborators a Game is built from. Renderer is needed to
// draw. Nil Input means events are pushed to the queue directly, nil Audio
// plays nothing and nil Storage keeps nothing.
type Deps struct {
	Config    *config.Config
	Renderer  render.Renderer
	Input     render.InputManager
	Audio     audio.Player
	Storage   *storage.Service
	Assets    *assets.Set
	Catalog   *world.Catalog
	Reactions *interaction.ReactionSet
	Rand      *rand.Rand
	Log       logrus.FieldLogger
}

// Sprite display sizes in screen pixels.
const (
	characterSize = 72.0
	objectSize    = 56.0
)
