package prefstore

import (
	"context"
	"sync"
)

// MemoryStore implements Store interface using in-memory storage
type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]string
}

// NewMemoryStore creates a new in-memory preference store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		prefs: make(map[string]string),
	}
}

// Get retrieves the preference stored for a subject
func (m *MemoryStore) Get(ctx context.Context, subject string) (string, error) {
	if subject == "" {
		return "", ErrEmptySubject
	}

	m.mu.RLock()
	value, exists := m.prefs[subject]
	m.mu.RUnlock()

	if !exists {
		return "", ErrNotFound
	}
	return value, nil
}

// Set stores the preference for a subject, replacing any previous value
func (m *MemoryStore) Set(ctx context.Context, subject, value string) error {
	if subject == "" {
		return ErrEmptySubject
	}
	if value == "" {
		return ErrEmptyValue
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.prefs[subject] = value
	return nil
}

// Delete removes the preference stored for a subject
func (m *MemoryStore) Delete(ctx context.Context, subject string) error {
	if subject == "" {
		return ErrEmptySubject
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.prefs, subject)
	return nil
}

// Len reports the number of stored preferences
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.prefs)
}
