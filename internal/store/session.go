package store

import "sync"

// SessionStore is an in-memory KV scoped to one process run. It is the
// session-storage analogue: seen-sets and the init marker live here and are
// gone when the program exits.
type SessionStore struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewSessionStore() *SessionStore {
	return &SessionStore{data: make(map[string]string)}
}

func (s *SessionStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *SessionStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}
