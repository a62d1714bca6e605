package audio

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/sirupsen/logrus"
)

// EbitenPlayer plays mp3 files from <dir>/sfx and <dir>/bgm. Decoded sound
// effects and raw music files are cached after the first use. Failures are
// logged and otherwise ignored.
type EbitenPlayer struct {
	ctx *audio.Context
	dir string
	log logrus.FieldLogger

	mu       sync.Mutex
	sfx      map[string][]byte // decoded PCM
	bgmFiles map[string][]byte // raw mp3
	bgm      *audio.Player
	bgmName  string
	bgmVol   float64
	sfxVol   float64
}

// NewEbitenPlayer creates the audio context. Only one context may exist
// per process.
func NewEbitenPlayer(dir string, log logrus.FieldLogger) *EbitenPlayer {
	return &EbitenPlayer{
		ctx:      audio.NewContext(SampleRate),
		dir:      dir,
		log:      log,
		sfx:      make(map[string][]byte),
		bgmFiles: make(map[string][]byte),
		bgmVol:   Volume(60, false),
		sfxVol:   Volume(80, false),
	}
}

func (p *EbitenPlayer) PlaySfx(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sfxVol == 0 {
		return
	}

	pcm, ok := p.sfx[name]
	if !ok {
		var err error
		pcm, err = p.decodeAll(filepath.Join(p.dir, "sfx", name+".mp3"))
		if err != nil {
			p.log.WithError(err).WithField("sfx", name).Warn("Failed to load sound effect")
			// Cache the failure so a missing file is only reported once.
			p.sfx[name] = nil
			return
		}
		p.sfx[name] = pcm
	}
	if pcm == nil {
		return
	}

	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.sfxVol)
	player.Play()
}

func (p *EbitenPlayer) PlayBgm(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bgm != nil && p.bgmName == name && p.bgm.IsPlaying() {
		return
	}
	p.stopLocked()

	raw, ok := p.bgmFiles[name]
	if !ok {
		var err error
		raw, err = os.ReadFile(filepath.Join(p.dir, "bgm", name+".mp3"))
		if err != nil {
			p.log.WithError(err).WithField("bgm", name).Warn("Failed to load music")
			return
		}
		p.bgmFiles[name] = raw
	}

	stream, err := mp3.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	if err != nil {
		p.log.WithError(err).WithField("bgm", name).Warn("Failed to decode music")
		return
	}
	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		p.log.WithError(err).WithField("bgm", name).Warn("Failed to create music player")
		return
	}
	player.SetVolume(p.bgmVol)
	player.Play()
	p.bgm = player
	p.bgmName = name
	p.log.WithField("bgm", name).Debug("Music started")
}

func (p *EbitenPlayer) StopBgm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopLocked()
}

func (p *EbitenPlayer) SetVolumes(bgm, sfx int, muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bgmVol = Volume(bgm, muted)
	p.sfxVol = Volume(sfx, muted)
	if p.bgm != nil {
		p.bgm.SetVolume(p.bgmVol)
	}
}

func (p *EbitenPlayer) stopLocked() {
	if p.bgm == nil {
		return
	}
	if err := p.bgm.Close(); err != nil {
		p.log.WithError(err).Debug("Failed to close music player")
	}
	p.bgm = nil
	p.bgmName = ""
}

func (p *EbitenPlayer) decodeAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	stream, err := mp3.DecodeWithSampleRate(SampleRate, f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return io.ReadAll(stream)
}
