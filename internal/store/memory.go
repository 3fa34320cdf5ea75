package store

import (
	"context"
	"sync"
	"time"

	"github.com/runehealth/rune_backend/internal/intake"
)

type memoryEntry struct {
	sess      *intake.Session
	expiresAt time.Time
}

type memoryStore struct {
	mu  sync.RWMutex
	m   map[string]memoryEntry
	ttl time.Duration
	now func() time.Time
}

// NewMemoryStore returns an in-process SessionStore. It honors the same
// TTL semantics as the Redis store; expired entries are dropped lazily
// on read.
func NewMemoryStore(ttl time.Duration) SessionStore {
	return &memoryStore{
		m:   make(map[string]memoryEntry),
		ttl: ttl,
		now: time.Now,
	}
}

func (s *memoryStore) Put(_ context.Context, sess *intake.Session) error {
	cp := *sess
	cp.Messages = append([]intake.Message(nil), sess.Messages...)

	s.mu.Lock()
	s.m[sess.ID] = memoryEntry{sess: &cp, expiresAt: s.now().Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*intake.Session, error) {
	s.mu.RLock()
	entry, ok := s.m[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.m, id)
		s.mu.Unlock()
		return nil, ErrNotFound
	}

	cp := *entry.sess
	cp.Messages = append([]intake.Message(nil), entry.sess.Messages...)
	return &cp, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.m, id)
	s.mu.Unlock()
	return nil
}
