package store

import (
	"context"
	"sync"
)

// MemoryStore keeps saved scenarios in process memory. It is the default
// when no Redis address is configured, and the store the tests run against.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string][]SavedScenario
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]SavedScenario)}
}

// Save appends a scenario to the session.
func (m *MemoryStore) Save(_ context.Context, sessionID string, scenario SavedScenario) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sessionID] = append(m.sessions[sessionID], scenario)
	return nil
}

// List returns the session's saved scenarios in insertion order.
func (m *MemoryStore) List(_ context.Context, sessionID string) ([]SavedScenario, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	saved, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]SavedScenario, len(saved))
	copy(out, saved)
	return out, nil
}

// Clear removes the session entirely.
func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, sessionID)
	return nil
}
