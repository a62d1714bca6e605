package storage

import (
	"context"
	"sync"
)

// MemoryStore keeps values in a map. It is used in tests and as the
// fallback when the configured store cannot be opened.
type MemoryStore struct {
	mu    sync.Mutex
	data  map[string][]byte
	quota int64 // 0 = unlimited

	// Down makes every operation fail, simulating an unavailable store.
	Down bool
}

// NewMemoryStore creates an empty store.
func NewMemoryStore(quota int64) *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte), quota: quota}
}

func (s *MemoryStore) Load(_ context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Down {
		return nil, false
	}
	v, ok := s.data[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

func (s *MemoryStore) Save(_ context.Context, key string, data []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Down {
		return false
	}
	if s.quota > 0 {
		var used int64
		for k, v := range s.data {
			if k != key {
				used += int64(len(v))
			}
		}
		if used+int64(len(data)) > s.quota {
			return false
		}
	}
	s.data[key] = append([]byte(nil), data...)
	return true
}

func (s *MemoryStore) Delete(_ context.Context, key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Down {
		return false
	}
	delete(s.data, key)
	return true
}

func (s *MemoryStore) Available(context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.Down
}
