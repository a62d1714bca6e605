package audio

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVolume(t *testing.T) {
	assert.Equal(t, 0.0, Volume(80, true))
	assert.Equal(t, 0.0, Volume(-5, false))
	assert.Equal(t, 1.0, Volume(250, false))
	assert.InDelta(t, 0.6, Volume(60, false), 1e-9)
}

func TestRandomTrack(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		assert.Contains(t, Tracks, RandomTrack(rng))
	}
}

func TestNop(t *testing.T) {
	var p Player = &Nop{}
	p.PlaySfx("pickup")
	p.PlayBgm("forest")
	p.SetVolumes(50, 100, false)

	n := p.(*Nop)
	assert.Equal(t, []string{"pickup"}, n.Sfx)
	assert.Equal(t, "forest", n.Bgm)
	assert.True(t, n.Playing)
	assert.InDelta(t, 0.5, n.BgmVol, 1e-9)
	assert.Equal(t, 1.0, n.SfxVol)

	p.StopBgm()
	assert.False(t, n.Playing)
}
