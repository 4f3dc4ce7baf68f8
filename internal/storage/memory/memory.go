// Package memory keeps store values in process memory. It backs the
// "memory" storage driver and the service tests.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/aaravmahajanofficial/shopity/internal/storage"
)

type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string, value any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return false, storage.ErrClosed
	}

	data, ok := s.data[key]
	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, value); err != nil {
		return false, fmt.Errorf("failed to unmarshal data for key %s: %w", key, err)
	}

	return true, nil
}

func (s *Store) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value for key %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	s.data[key] = data

	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	delete(s.data, key)

	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true

	return nil
}

// SetRaw stores bytes verbatim, bypassing JSON encoding.
func (s *Store) SetRaw(key string, raw []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw
}

// Has reports whether key is present.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[key]

	return ok
}
