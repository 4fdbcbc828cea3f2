package store

import (
	"context"
	"sync"
)

// Memory is an in-process KV, used in tests and when no database is wanted.
type Memory struct {
	mu   sync.RWMutex
	data map[string]string

	// SetErr, when non-nil, is returned by Set and nothing is written.
	SetErr error
	// Writes counts successful Set calls.
	Writes int
}

// NewMemory returns an empty Memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements KV.
func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements KV.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.data[key] = value
	m.Writes++
	return nil
}
