package fakeapi

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when the token does not match any session.
	ErrNotFound = errors.New("session not found")
	// ErrExpired is returned when the session outlived its ttl. The session is dropped.
	ErrExpired = errors.New("session expired")
)

// Session is what the backend remembers about a logged in user.
type Session struct {
	Username  string
	BaseURL   string
	ExpiresAt time.Time
}

// SessionStore keeps sessions in memory, keyed by an opaque token.
type SessionStore struct {
	ttl time.Duration
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]Session
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]Session),
	}
}

// Create stores a new session and returns its token.
func (s *SessionStore) Create(username, baseURL string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	token := uuid.NewString()
	s.sessions[token] = Session{
		Username:  username,
		BaseURL:   baseURL,
		ExpiresAt: s.now().Add(s.ttl),
	}
	return token
}

// Get retrieves the session for token.
func (s *SessionStore) Get(token string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[token]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(session.ExpiresAt) {
		delete(s.sessions, token)
		return nil, ErrExpired
	}
	return &session, nil
}

// Invalidate removes the session. Unknown tokens are ignored.
func (s *SessionStore) Invalidate(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// ExpireAll marks every session as expired without forgetting it,
// so the next lookup reports ErrExpired rather than ErrNotFound.
func (s *SessionStore) ExpireAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	past := s.now().Add(-time.Second)
	for token, session := range s.sessions {
		session.ExpiresAt = past
		s.sessions[token] = session
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
