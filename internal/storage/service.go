package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"
)

// Settings are the player's audio preferences.
type Settings struct {
	BGMVolume int  `json:"bgmVolume"` // 0-100
	SFXVolume int  `json:"sfxVolume"` // 0-100
	Muted     bool `json:"muted"`
}

// DefaultSettings returns the settings used before anything is saved.
func DefaultSettings() Settings {
	return Settings{BGMVolume: 60, SFXVolume: 80}
}

func (s Settings) clamped() Settings {
	s.BGMVolume = clampPercent(s.BGMVolume)
	s.SFXVolume = clampPercent(s.SFXVolume)
	return s
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Service stores the game's documents in a Store.
type Service struct {
	store Store
	log   logrus.FieldLogger

	// Now stamps snapshots saved without a timestamp.
	Now func() time.Time
}

// NewService wraps a store.
func NewService(store Store, log logrus.FieldLogger) *Service {
	return &Service{store: store, log: log, Now: time.Now}
}

// Store returns the underlying store.
func (s *Service) Store() Store {
	return s.store
}

// SaveGameData writes a snapshot. A zero timestamp is set to now.
func (s *Service) SaveGameData(ctx context.Context, snap Snapshot) bool {
	if snap.Timestamp == 0 {
		snap.Timestamp = s.Now().UnixMilli()
	}
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.WithError(err).Error("Failed to encode game data")
		return false
	}
	if !s.store.Save(ctx, KeyGameData, data) {
		s.log.WithField("bytes", len(data)).Warn("Game data not saved")
		return false
	}
	s.log.WithField("bytes", len(data)).Debug("Game data saved")
	return true
}

// LoadGameData reads and validates the saved snapshot. Invalid data is
// logged and reported as absent.
func (s *Service) LoadGameData(ctx context.Context) (*Snapshot, bool) {
	data, ok := s.store.Load(ctx, KeyGameData)
	if !ok {
		return nil, false
	}
	snap, err := Validate(data)
	if err != nil {
		s.log.WithError(err).Warn("Discarding saved game data")
		return nil, false
	}
	return snap, true
}

// HasGameData reports whether any snapshot is stored, valid or not.
func (s *Service) HasGameData(ctx context.Context) bool {
	_, ok := s.store.Load(ctx, KeyGameData)
	return ok
}

// ClearGameData deletes the snapshot.
func (s *Service) ClearGameData(ctx context.Context) bool {
	return s.store.Delete(ctx, KeyGameData)
}

// SaveSettings writes the audio settings.
func (s *Service) SaveSettings(ctx context.Context, settings Settings) bool {
	data, err := json.Marshal(settings.clamped())
	if err != nil {
		s.log.WithError(err).Error("Failed to encode settings")
		return false
	}
	return s.store.Save(ctx, KeySettings, data)
}

// LoadSettings returns the saved settings layered over the defaults.
// ok is false when nothing usable was stored.
func (s *Service) LoadSettings(ctx context.Context) (Settings, bool) {
	settings := DefaultSettings()
	data, ok := s.store.Load(ctx, KeySettings)
	if !ok {
		return settings, false
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		s.log.WithError(err).Warn("Discarding saved settings")
		return DefaultSettings(), false
	}
	return settings.clamped(), true
}

// SaveCustomBackground stores the encoded image bytes of a custom
// background. Large images may exceed the store's quota.
func (s *Service) SaveCustomBackground(ctx context.Context, data []byte) bool {
	if !s.store.Save(ctx, KeyCustomBackground, data) {
		s.log.WithField("bytes", len(data)).Warn("Custom background not saved; the image may be too large")
		return false
	}
	return true
}

// LoadCustomBackground returns the stored background bytes.
func (s *Service) LoadCustomBackground(ctx context.Context) ([]byte, bool) {
	return s.store.Load(ctx, KeyCustomBackground)
}

// HasCustomBackground reports whether a custom background is stored.
func (s *Service) HasCustomBackground(ctx context.Context) bool {
	_, ok := s.store.Load(ctx, KeyCustomBackground)
	return ok
}

// ClearCustomBackground deletes the stored background.
func (s *Service) ClearCustomBackground(ctx context.Context) bool {
	return s.store.Delete(ctx, KeyCustomBackground)
}

// ClearAll deletes everything the service stores.
func (s *Service) ClearAll(ctx context.Context) bool {
	ok := true
	for _, k := range AllKeys {
		if !s.store.Delete(ctx, k) {
			ok = false
		}
	}
	return ok
}

// Usage returns the number of bytes stored across all keys.
func (s *Service) Usage(ctx context.Context) int64 {
	var total int64
	for _, k := range AllKeys {
		if data, ok := s.store.Load(ctx, k); ok {
			total += int64(len(k) + len(data))
		}
	}
	return total
}
