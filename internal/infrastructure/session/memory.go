package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. Used when Redis is not
// configured and in tests.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[int64]memoryEntry
}

type memoryEntry struct {
	session  Session
	deadline time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[int64]memoryEntry)}
}

func (s *MemoryStore) Get(_ context.Context, userID int64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[userID]
	if !ok || time.Now().After(entry.deadline) {
		delete(s.sessions, userID)
		return &Session{State: StateIdle}, nil
	}

	sess := entry.session
	return &sess, nil
}

func (s *MemoryStore) Put(_ context.Context, userID int64, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[userID] = memoryEntry{
		session:  *sess,
		deadline: time.Now().Add(SessionTTL),
	}
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, userID)
	return nil
}
