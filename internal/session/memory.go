package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. This matches the
// original deployment, where a restart invalidates every login. It is
// also what the tests use.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry

	// now is swappable so tests can control expiry.
	now func() time.Time
}

type memoryEntry struct {
	sess      Session
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (s *MemoryStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sess.ID] = memoryEntry{sess: *sess, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok {
		return nil, ErrNotFound
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, id)
		return nil, ErrNotFound
	}
	sess := entry.sess
	return &sess, nil
}

func (s *MemoryStore) Touch(ctx context.Context, id string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[id]
	if !ok || s.now().After(entry.expiresAt) {
		return ErrNotFound
	}
	entry.expiresAt = s.now().Add(ttl)
	s.entries[id] = entry
	return nil
}

// Delete removes a session. Deleting an unknown id is not an error so
// logout stays idempotent.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
