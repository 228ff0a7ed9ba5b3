package memory

import (
	"bytes"
	"context"
	"storefront/internal/domain"
	"sync"
)

// KVStore is the in-process store used when no database is configured; contents are lost on restart.
type KVStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (s *KVStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (s *KVStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = bytes.Clone(value)
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string][]byte)}
}
