// Package storage provides persisted slot implementations.
package storage

import (
	"context"
	"sync"

	"github.com/YohanWijaya10/Nano-Challenge-01/internal/domain"
	"github.com/YohanWijaya10/Nano-Challenge-01/internal/logger"
)

// Compile-time interface check.
var _ domain.Slot = (*MemorySlot)(nil)

// MemorySlot keeps slot contents in memory. Safe for concurrent access.
// Nothing survives the process; use it for tests and throwaway runs.
type MemorySlot struct {
	mu    sync.RWMutex
	slots map[string][]byte
	log   *logger.Logger
}

// NewMemorySlot creates an empty in-memory slot store.
func NewMemorySlot(log *logger.Logger) *MemorySlot {
	return &MemorySlot{
		slots: make(map[string][]byte),
		log:   log,
	}
}

// Get returns a copy of the bytes stored under key, or nil if the key
// was never written.
func (s *MemorySlot) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.slots[key]
	if !ok {
		s.log.Debug("slot %q is empty", key)
		return nil, nil
	}
	return clone(data), nil
}

// Put replaces the bytes stored under key.
func (s *MemorySlot) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("writing slot %q (%d bytes)", key, len(data))
	s.slots[key] = clone(data)
	return nil
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
