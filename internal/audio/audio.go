// Package audio plays background music and sound effects.
package audio

import (
	"math/rand"
)

// SampleRate is the rate every decoded stream is resampled to.
const SampleRate = 44100

// Tracks lists the background music names. A random one starts on the
// first pointer press.
var Tracks = []string{"main", "peaceful", "forest", "beach", "adventure", "mystery"}

// RandomTrack picks a track name.
func RandomTrack(rng *rand.Rand) string {
	return Tracks[rng.Intn(len(Tracks))]
}

// Player is the audio surface the game uses.
type Player interface {
	PlaySfx(name string)
	PlayBgm(name string)
	StopBgm()
	// SetVolumes takes percentages in 0..100.
	SetVolumes(bgm, sfx int, muted bool)
}

// Volume converts a 0..100 percentage to a player volume.
func Volume(percent int, muted bool) float64 {
	if muted || percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return 1
	}
	return float64(percent) / 100
}

// Nop is a Player that plays nothing. It records the last requests so
// callers can be tested without an audio device.
type Nop struct {
	Sfx     []string
	Bgm     string
	BgmVol  float64
	SfxVol  float64
	Playing bool
}

func (n *Nop) PlaySfx(name string) { n.Sfx = append(n.Sfx, name) }
func (n *Nop) PlayBgm(name string) { n.Bgm, n.Playing = name, true }
func (n *Nop) StopBgm()            { n.Playing = false }

func (n *Nop) SetVolumes(bgm, sfx int, muted bool) {
	n.BgmVol = Volume(bgm, muted)
	n.SfxVol = Volume(sfx, muted)
}
