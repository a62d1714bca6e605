package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// FileStore keeps one file per key in a directory.
type FileStore struct {
	dir   string
	quota int64 // 0 = unlimited
	log   logrus.FieldLogger
}

// NewFileStore creates the directory if needed.
func NewFileStore(dir string, quota int64, log logrus.FieldLogger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create save directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir, quota: quota, log: log}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".dat")
}

func (s *FileStore) Load(_ context.Context, key string) ([]byte, bool) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.WithError(err).WithField("key", key).Error("Failed to read save file")
		}
		return nil, false
	}
	return data, true
}

// Save writes through a temporary file so a crash never leaves a truncated
// value behind.
func (s *FileStore) Save(_ context.Context, key string, data []byte) bool {
	if s.quota > 0 {
		used := s.usageExcept(key)
		if used+int64(len(data)) > s.quota {
			s.log.WithFields(logrus.Fields{
				"key":   key,
				"size":  len(data),
				"used":  used,
				"quota": s.quota,
			}).Warn("Save quota exceeded")
			return false
		}
	}

	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		s.log.WithError(err).WithField("key", key).Error("Failed to write save file")
		return false
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.log.WithError(err).WithField("key", key).Error("Failed to replace save file")
		_ = os.Remove(tmp)
		return false
	}
	return true
}

func (s *FileStore) Delete(_ context.Context, key string) bool {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).WithField("key", key).Error("Failed to delete save file")
		return false
	}
	return true
}

func (s *FileStore) Available(context.Context) bool {
	info, err := os.Stat(s.dir)
	return err == nil && info.IsDir()
}

func (s *FileStore) usageExcept(key string) int64 {
	var used int64
	for _, k := range AllKeys {
		if k == key {
			continue
		}
		if info, err := os.Stat(s.path(k)); err == nil {
			used += info.Size()
		}
	}
	return used
}
