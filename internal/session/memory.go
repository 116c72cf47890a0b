package session

import (
	"context"
	"sync"
)

// MemoryStore keeps sessions in process memory. Used in tests and when no
// Redis URL is configured; sessions then die with the process.
type MemoryStore struct {
	mu       sync.RWMutex
	records  map[string]Principal
	onChange ChangeFunc
}

// NewMemoryStore builds an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Principal)}
}

// OnChange registers the mutation observer.
func (s *MemoryStore) OnChange(fn ChangeFunc) { s.onChange = fn }

func (s *MemoryStore) Restore(_ context.Context, sessionID string) (*Principal, error) {
	s.mu.RLock()
	p, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok || p.Token == "" {
		return nil, nil
	}
	return &p, nil
}

func (s *MemoryStore) Login(_ context.Context, sessionID string, p Principal) error {
	s.mu.Lock()
	s.records[sessionID] = p
	s.mu.Unlock()
	s.publish(sessionID, &p)
	return nil
}

func (s *MemoryStore) Update(_ context.Context, sessionID string, ch Changes) (*Principal, error) {
	s.mu.Lock()
	current, ok := s.records[sessionID]
	if !ok || current.Token == "" {
		s.mu.Unlock()
		return nil, nil
	}
	merged := ch.apply(current)
	s.records[sessionID] = merged
	s.mu.Unlock()
	s.publish(sessionID, &merged)
	return &merged, nil
}

func (s *MemoryStore) Logout(_ context.Context, sessionID string) error {
	s.mu.Lock()
	delete(s.records, sessionID)
	s.mu.Unlock()
	s.publish(sessionID, nil)
	return nil
}

func (s *MemoryStore) publish(sessionID string, p *Principal) {
	if s.onChange != nil {
		s.onChange(sessionID, p)
	}
}
