package store

import (
	"context"
	"sync"

	"SharedSlate/internal/session"
	"SharedSlate/internal/state"
)

// Memory is an in-process snapshot store, used in tests and as the host's
// cache when no database is configured.
type Memory struct {
	mu   sync.RWMutex
	docs map[string]state.Document
}

func NewMemory() *Memory {
	return &Memory{docs: make(map[string]state.Document)}
}

func (m *Memory) Load(_ context.Context, sessionID string) (state.Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.docs[sessionID]
	if !ok {
		return state.Document{}, session.ErrNotFound
	}
	return doc.Clone(), nil
}

func (m *Memory) Save(_ context.Context, sessionID string, doc state.Document) error {
	m.mu.Lock()
	m.docs[sessionID] = doc.Clone()
	m.mu.Unlock()
	return nil
}
