// Package session holds server-side login sessions in process memory,
// keyed by an opaque token. Sessions are lost on restart by design.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the session cookie shared with the auth middleware.
const CookieName = "session"

type entry struct {
	userID    int
	expiresAt time.Time
}

// Store maps session tokens to user ids with a fixed TTL. Expired entries
// are dropped lazily on lookup.
type Store struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	nowFn   func() time.Time
}

// NewStore builds a session store with the given time-to-live.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: map[string]entry{},
		nowFn:   time.Now,
	}
}

// SetNowFunc overrides the clock, for tests.
func (s *Store) SetNowFunc(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nowFn = fn
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create issues a new token for the user.
func (s *Store) Create(userID int) string {
	token := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[token] = entry{userID: userID, expiresAt: s.nowFn().Add(s.ttl)}
	return token
}

// Get resolves a token to a user id. Expired tokens are removed and
// reported as absent.
func (s *Store) Get(token string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return 0, false
	}
	if s.nowFn().After(e.expiresAt) {
		delete(s.entries, token)
		return 0, false
	}
	return e.userID, true
}

// Delete removes a token; deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}
