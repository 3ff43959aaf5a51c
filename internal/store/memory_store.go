package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/league-fixtures-service/internal/domain/refdata"
	"github.com/preston-bernstein/league-fixtures-service/internal/matchform"
)

const defaultTTL = 30 * time.Minute

// Session is one mounted fixture form.
type Session struct {
	ID         string
	Controller *matchform.Controller
	Catalog    refdata.Catalog
	CreatedAt  time.Time

	lastSeen time.Time
}

// MemoryStore keeps form sessions in memory and expires idle ones.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	newID    func() string
}

// NewMemoryStore constructs an empty MemoryStore. A ttl <= 0 uses the default.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Create registers a new session for controller and returns it.
func (s *MemoryStore) Create(controller *matchform.Controller, catalog refdata.Catalog) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	now := s.now()
	sess := &Session{
		ID:         s.newID(),
		Controller: controller,
		Catalog:    catalog,
		CreatedAt:  now,
		lastSeen:   now,
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get retrieves a live session by ID and marks it as used.
func (s *MemoryStore) Get(id string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	sess.lastSeen = s.now()
	return sess, true
}

// Delete tears down a session. Its controller is closed so an in-flight
// submit no longer touches it.
func (s *MemoryStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	delete(s.sessions, id)
	sess.Controller.Close()
	return true
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked()
	return len(s.sessions)
}

// CloseAll tears down every session.
func (s *MemoryStore) CloseAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.Controller.Close()
		delete(s.sessions, id)
	}
}

func (s *MemoryStore) sweepLocked() {
	cutoff := s.now().Add(-s.ttl)
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			sess.Controller.Close()
			delete(s.sessions, id)
		}
	}
}
