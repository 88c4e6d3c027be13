package auth

import (
	"sync"

	"github.com/google/uuid"

	"github.com/todo-webapp/app/internal/models"
)

// Session is the authenticated identity carried by a session cookie:
// the {id, email} projection of the account, nothing more.
type Session struct {
	UserID string
	Email  string
}

// Sessions maps session tokens to sessions, in process memory.
// For a single-instance deployment; a restart logs everyone out.
type Sessions struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewSessions creates an empty session store.
func NewSessions() *Sessions {
	return &Sessions{sessions: make(map[string]Session)}
}

// Create issues a new session token for the given user.
func (s *Sessions) Create(user *models.User) string {
	token := uuid.NewString()

	s.mu.Lock()
	s.sessions[token] = Session{UserID: user.ID, Email: user.Email}
	s.mu.Unlock()

	return token
}

// Get returns the session for a token, if one exists.
func (s *Sessions) Get(token string) (Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[token]
	s.mu.RUnlock()
	return sess, ok
}

// Delete removes the session for a token. Deleting an unknown token is a no-op.
func (s *Sessions) Delete(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
