// Package config holds the game's tunables. Values are read from a YAML file
// layered over DefaultConfig, so a missing file or a partial file is fine.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config holds all settings for a play session.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	World       WorldConfig       `yaml:"world"`
	Actor       ActorConfig       `yaml:"actor"`
	Interaction InteractionConfig `yaml:"interaction"`
	Storage     StorageConfig     `yaml:"storage"`
	Audio       AudioConfig       `yaml:"audio"`
	Assets      AssetsConfig      `yaml:"assets"`
	Log         LogConfig         `yaml:"log"`

	// AutosaveInterval is measured in simulated time, not wall time.
	AutosaveInterval time.Duration `yaml:"autosave_interval"`
}

// WindowConfig defines the initial window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// WorldConfig defines world sizing and seeding.
type WorldConfig struct {
	BackgroundDir   string  `yaml:"background_dir"`   // Directory scanned for background images
	BackgroundScale float64 `yaml:"background_scale"` // World = background image × scale
	DefaultWidth    float64 `yaml:"default_width"`    // Used when no background is available
	DefaultHeight   float64 `yaml:"default_height"`
	ScatterCount    int     `yaml:"scatter_count"` // Randomly placed objects on first seed
	Seed            int64   `yaml:"seed"`          // 0 = seed from the wall clock
}

// ActorConfig defines the walking character.
type ActorConfig struct {
	Speed       float64 `yaml:"speed"`        // World units per tick
	ProbeChance float64 `yaml:"probe_chance"` // Per-tick chance of a proximity check while moving
	ProbeRadius float64 `yaml:"probe_radius"`
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
}

// InteractionConfig defines proximity cooldowns and popup behaviour.
type InteractionConfig struct {
	PickupCooldown   time.Duration `yaml:"pickup_cooldown"`
	InteractCooldown time.Duration `yaml:"interact_cooldown"`
	SameObjectGrace  time.Duration `yaml:"same_object_grace"`
	ClickToInteract  bool          `yaml:"click_to_interact"`
	ReactionLinger   time.Duration `yaml:"reaction_linger"`
}

// StorageConfig selects and configures the snapshot store.
type StorageConfig struct {
	Backend          string `yaml:"backend"` // "file", "redis" or "memory"
	Dir              string `yaml:"dir"`
	QuotaBytes       int64  `yaml:"quota_bytes"` // 0 = unlimited
	RedisAddr        string `yaml:"redis_addr"`
	RedisDB          int    `yaml:"redis_db"`
	ProfileID        string `yaml:"profile_id"`
	FreshWorldOnLoad bool   `yaml:"fresh_world_on_load"` // Keep journal/collection but reseed the world
}

// AudioConfig locates the music and sound effects.
type AudioConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// AssetsConfig locates sprites.
type AssetsConfig struct {
	Dir string `yaml:"dir"`
}

// LogConfig configures logrus.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns the settings the game ships with.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1280,
			Height: 800,
			Title:  "Wayfarer",
		},
		World: WorldConfig{
			BackgroundDir:   "assets/images/world",
			BackgroundScale: 3.0,
			DefaultWidth:    5000,
			DefaultHeight:   3000,
			ScatterCount:    20,
		},
		Actor: ActorConfig{
			Speed:       5,
			ProbeChance: 0.02,
			ProbeRadius: 60,
			StartX:      2500,
			StartY:      1500,
		},
		Interaction: InteractionConfig{
			PickupCooldown:   1500 * time.Millisecond,
			InteractCooldown: 2000 * time.Millisecond,
			SameObjectGrace:  3000 * time.Millisecond,
			ClickToInteract:  true,
			ReactionLinger:   6 * time.Second,
		},
		Storage: StorageConfig{
			Backend:          "file",
			Dir:              "save",
			QuotaBytes:       5 * 1024 * 1024,
			RedisAddr:        "127.0.0.1:6379",
			FreshWorldOnLoad: true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Dir:     "assets/audio",
		},
		Assets: AssetsConfig{
			Dir: "assets/images",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		AutosaveInterval: 60 * time.Second,
	}
}

// Load reads a config file over the defaults.
// If the file doesn't exist, the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

// EnsureProfile assigns a profile id when none is configured and tries to
// persist it so the same save slot is used next launch. It reports whether
// a new id was generated; a failed write only means the id is not sticky.
func EnsureProfile(path string, cfg *Config) (bool, error) {
	if cfg.Storage.ProfileID != "" {
		return false, nil
	}
	cfg.Storage.ProfileID = uuid.NewString()
	if path == "" {
		return true, nil
	}
	return true, cfg.Save(path)
}

// LoadProfile loads path and makes sure the config carries a profile id.
// The id is written back only when the file loaded cleanly. A file that
// could not be read or parsed is left as it is and the id only lives for
// this run.
func LoadProfile(path string) (cfg *Config, created bool, err error) {
	cfg, err = Load(path)
	if err != nil {
		created, _ = EnsureProfile("", cfg)
		return cfg, created, err
	}
	created, err = EnsureProfile(path, cfg)
	if err != nil {
		return cfg, created, fmt.Errorf("saving profile id: %w", err)
	}
	return cfg, created, nil
}
