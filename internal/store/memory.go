package store

import (
	"encoding/json"
	"fmt"
	"sync"
)

// MemStore is an in-memory Documents implementation for tests. It
// round-trips values through JSON so behavior matches FileStore.
type MemStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemStore() *MemStore {
	return &MemStore{docs: make(map[string][]byte)}
}

func (s *MemStore) Load(key string, out any) error {
	s.mu.RLock()
	data, ok := s.docs[key]
	s.mu.RUnlock()
	if !ok || !jsonUsable(data) {
		return nil
	}
	_ = json.Unmarshal(data, out)
	return nil
}

func (s *MemStore) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %q: %w", key, err)
	}
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
	return nil
}

func (s *MemStore) Ensure(key string, def any) error {
	s.mu.RLock()
	_, ok := s.docs[key]
	s.mu.RUnlock()
	if ok {
		return nil
	}
	return s.Save(key, def)
}

// SetRaw installs a raw document, bypassing marshaling. Tests use it to
// simulate corrupt or hand-edited files.
func (s *MemStore) SetRaw(key string, data []byte) {
	s.mu.Lock()
	s.docs[key] = data
	s.mu.Unlock()
}

// Raw returns the stored bytes for key, or nil if absent.
func (s *MemStore) Raw(key string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[key]
}
