package ui

import (
	"image/color"
	"time"

	"chosenoffset.com/wayfarer/internal/render"
	"chosenoffset.com/wayfarer/internal/timer"
)

// Notification timing.
const (
	NotifyDuration = 3000 * time.Millisecond
	NotifyFade     = 300 * time.Millisecond
)

const notifyOwner timer.Owner = "notification"

// Clock is the scheduler surface the overlays use.
type Clock interface {
	Now() time.Duration
	After(delay time.Duration, owner timer.Owner, fn func()) timer.TaskID
	CancelOwner(owner timer.Owner) int
}

// Notifications shows one transient message at a time. A new message
// replaces the current one.
type Notifications struct {
	clock   Clock
	message string
	shown   time.Duration
	visible bool
}

// NewNotifications creates an empty notification area.
func NewNotifications(clock Clock) *Notifications {
	return &Notifications{clock: clock}
}

// Notify shows message for NotifyDuration.
func (n *Notifications) Notify(message string) {
	n.clock.CancelOwner(notifyOwner)
	n.message = message
	n.shown = n.clock.Now()
	n.visible = true
	n.clock.After(NotifyDuration, notifyOwner, func() {
		n.visible = false
		n.message = ""
	})
}

// Current returns the visible message and its opacity in [0, 1].
func (n *Notifications) Current() (string, float64) {
	if !n.visible {
		return "", 0
	}
	age := n.clock.Now() - n.shown
	switch {
	case age < NotifyFade:
		return n.message, float64(age) / float64(NotifyFade)
	case age > NotifyDuration-NotifyFade:
		left := NotifyDuration - age
		if left < 0 {
			left = 0
		}
		return n.message, float64(left) / float64(NotifyFade)
	}
	return n.message, 1
}

// Draw renders the notification at the top centre of the screen.
func (n *Notifications) Draw(r render.Renderer, screen render.Image) {
	msg, alpha := n.Current()
	if msg == "" || alpha <= 0 {
		return
	}
	sw, _ := screen.Size()
	tw, th := r.MeasureText(msg, BodySize)
	x := (float64(sw) - tw) / 2
	y := 24.0
	a := uint8(alpha * 255)
	r.FillRect(screen, float32(x-12), float32(y-8), float32(tw+24), float32(th+16), color.RGBA{0, 0, 0, uint8(alpha * 180)})
	r.DrawText(screen, msg, x, y, color.RGBA{255, 255, 255, a}, BodySize)
}
