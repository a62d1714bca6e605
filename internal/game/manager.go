package game

import (
	"context"
	"fmt"
	"image/color"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/render"
)

// Manager is the loop boundary between the engine and a Game. It turns
// engine ticks into simulated time, keeps a faulty tick from ending the
// session and saves before the window closes.
type Manager struct {
	Game     *Game
	Engine   render.Engine
	Renderer render.Renderer
	Log      logrus.FieldLogger

	faults int
}

// NewManager creates a manager for a loaded game.
func NewManager(g *Game, engine render.Engine, r render.Renderer, log logrus.FieldLogger) *Manager {
	return &Manager{Game: g, Engine: engine, Renderer: r, Log: log}
}

// Update advances the game by one engine tick.
func (m *Manager) Update() error {
	if m.Engine != nil && m.Engine.IsWindowBeingClosed() {
		m.shutdown()
		return render.ErrTerminate
	}

	if err := m.safely("update", func() { m.Game.Tick(m.tickDuration()) }); err != nil {
		m.faults++
	}
	return nil
}

// Draw draws the current state.
func (m *Manager) Draw(screen render.Image) {
	err := m.safely("draw", func() { m.Game.Draw(screen) })
	if err != nil && m.Renderer != nil {
		screen.Fill(color.RGBA{20, 20, 30, 255})
		m.Renderer.DrawText(screen, "Something went wrong drawing the world.", 20, 20, color.RGBA{255, 120, 120, 255}, 16)
	}
}

// Layout handles window resize.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	m.Game.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Faults returns how many ticks panicked.
func (m *Manager) Faults() int {
	return m.faults
}

func (m *Manager) tickDuration() time.Duration {
	tps := 60
	if m.Engine != nil && m.Engine.TPS() > 0 {
		tps = m.Engine.TPS()
	}
	return time.Second / time.Duration(tps)
}

func (m *Manager) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if m.Game.Save(ctx) {
		m.Log.Info("Game saved on exit")
	}
}

// safely runs fn and converts a panic into a logged error so one bad
// frame does not end the session.
func (m *Manager) safely(phase string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s panicked: %v", phase, r)
			m.Log.WithFields(logrus.Fields{
				"phase": phase,
				"stack": string(debug.Stack()),
			}).WithError(err).Error("Recovered from panic")
		}
	}()
	fn()
	return nil
}
