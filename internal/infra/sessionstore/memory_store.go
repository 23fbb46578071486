package sessionstore

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/sunsafe/internal/domain/session"
)

type entry struct {
	payload   session.Session
	expiresAt time.Time
}

// MemoryStore keeps sessions in process memory for tests/dev and single instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]entry
	now      func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]entry),
		now:      time.Now,
	}
}

// Get implements session.Store.
func (s *MemoryStore) Get(_ context.Context, id string) (session.Session, bool, error) {
	s.mu.RLock()
	rec, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return session.Session{}, false, nil
	}
	if s.hasExpired(rec.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, id)
		s.mu.Unlock()
		return session.Session{}, false, nil
	}
	return rec.payload, true, nil
}

// Save stores the session with optional TTL.
func (s *MemoryStore) Save(_ context.Context, sess session.Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.sessions[sess.ID] = entry{payload: sess, expiresAt: exp}
	return nil
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ session.Store = (*MemoryStore)(nil)
