package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is a mutex-guarded map store for tests and single-process
// development. Expired entries are dropped lazily on read.
type MemoryStore struct {
	mu sync.RWMutex
	m  map[string]memoryEntry
}

type memoryEntry struct {
	userID string
	exp    time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		m: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) Set(ctx context.Context, token, userID string, ttl time.Duration) error {
	s.mu.Lock()
	s.m[token] = memoryEntry{userID: userID, exp: time.Now().Add(ttl)}
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Get(ctx context.Context, token string) (string, error) {
	now := time.Now()

	s.mu.RLock()
	e, ok := s.m[token]
	s.mu.RUnlock()

	if !ok {
		return "", ErrNoSession
	}

	if now.After(e.exp) {
		s.mu.Lock()
		delete(s.m, token)
		s.mu.Unlock()

		return "", ErrNoSession
	}

	return e.userID, nil
}

func (s *MemoryStore) Delete(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.m[token]

	if !ok {
		return ErrNoSession
	}

	delete(s.m, token)

	return nil
}
