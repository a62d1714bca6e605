// Package storage persists snapshots, settings and the custom background.
// Every operation is best effort: failures are logged and reported as a
// false result, never as a panic or a fatal error.
package storage

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/wayfarer/internal/config"
)

// Keys used by the service.
const (
	KeyGameData         = "gameData"
	KeySettings         = "settings"
	KeyCustomBackground = "customBackground"
)

// AllKeys lists every key the service writes.
var AllKeys = []string{KeyGameData, KeySettings, KeyCustomBackground}

// Store is a small key/value store.
type Store interface {
	// Load returns the value for key. ok is false when the key is missing
	// or the store cannot be read.
	Load(ctx context.Context, key string) (data []byte, ok bool)
	// Save stores a value. It returns false when the store is unavailable
	// or the write would exceed its quota.
	Save(ctx context.Context, key string, data []byte) bool
	// Delete removes a key. Deleting a missing key succeeds.
	Delete(ctx context.Context, key string) bool
	// Available reports whether the store can currently be used.
	Available(ctx context.Context) bool
}

// Open builds the store selected by the config.
func Open(cfg config.StorageConfig, log logrus.FieldLogger) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.Dir, cfg.QuotaBytes, log)
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		return NewRedisStore(client, cfg.ProfileID, log), nil
	case "memory":
		return NewMemoryStore(cfg.QuotaBytes), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
