// Package session implements the in-memory admin session store.
//
// Sessions live only in process memory: a restart invalidates every
// outstanding token. That is an accepted limitation, not a bug.
package session

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BossEnterprises/chataru_api/internal/utils"
)

// CookieName is the cookie carrying the admin session token.
const CookieName = "admin_session"

// MaxAge is how long a session stays valid after issuance.
const MaxAge = 7 * 24 * time.Hour

// Store is a mutex-guarded map from opaque session token to issuance time.
// Expired entries are purged lazily the first time a check observes them;
// there is no background sweeper.
type Store struct {
	mu     sync.Mutex
	tokens map[string]time.Time
	maxAge time.Duration
	now    func() time.Time
}

// NewStore creates a session store with the given maximum session age.
func NewStore(maxAge time.Duration) *Store {
	return &Store{
		tokens: make(map[string]time.Time),
		maxAge: maxAge,
		now:    time.Now,
	}
}

// Create issues a new session token and records its issuance time.
func (s *Store) Create() (string, error) {
	token, err := utils.GenerateSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.tokens[token] = s.now()
	s.mu.Unlock()
	return token, nil
}

// Validate reports whether token identifies a live session. A session is
// valid iff it is present in the store and its age does not exceed the
// maximum. An expired entry is removed as a side effect of the check.
func (s *Store) Validate(token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issuedAt, ok := s.tokens[token]
	if !ok {
		log.Debug().Msg("session check: unknown token")
		return false
	}
	if s.now().Sub(issuedAt) > s.maxAge {
		delete(s.tokens, token)
		log.Debug().Time("issued_at", issuedAt).Msg("session check: expired token purged")
		return false
	}
	return true
}

// Revoke removes the session for token. Revoking an unknown token is a
// no-op.
func (s *Store) Revoke(token string) {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
}

// Len returns the number of live or not-yet-purged sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tokens)
}
