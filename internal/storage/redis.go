package storage

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisStore keeps values in Redis under "wayfarer:<profile>:<key>".
type RedisStore struct {
	client *redis.Client
	prefix string
	log    logrus.FieldLogger
}

// NewRedisStore wraps an existing client.
func NewRedisStore(client *redis.Client, profileID string, log logrus.FieldLogger) *RedisStore {
	if profileID == "" {
		profileID = "default"
	}
	return &RedisStore{
		client: client,
		prefix: "wayfarer:" + profileID + ":",
		log:    log,
	}
}

func (s *RedisStore) key(k string) string {
	return s.prefix + k
}

func (s *RedisStore) Load(ctx context.Context, key string) ([]byte, bool) {
	data, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.WithError(err).WithField("key", key).Error("Redis GET failed")
		}
		return nil, false
	}
	return data, true
}

func (s *RedisStore) Save(ctx context.Context, key string, data []byte) bool {
	if err := s.client.Set(ctx, s.key(key), data, 0).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Error("Redis SET failed")
		return false
	}
	return true
}

func (s *RedisStore) Delete(ctx context.Context, key string) bool {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		s.log.WithError(err).WithField("key", key).Error("Redis DEL failed")
		return false
	}
	return true
}

func (s *RedisStore) Available(ctx context.Context) bool {
	if err := s.client.Ping(ctx).Err(); err != nil {
		s.log.WithError(err).Debug("Redis not available")
		return false
	}
	return true
}

// Close closes the underlying client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
