// Package session holds the client-side session state: the signed-in role,
// the opaque user identifier, and the bearer token store. Exactly one
// Session exists per running client.
package session

import (
	"strings"
	"sync"

	"github.com/owl-lion/access-hub/internal/domain/shared"
)

// Role identifies which side of the platform the signed-in user is on.
type Role string

const (
	// RoleUnset means no role has been established yet.
	RoleUnset Role = ""
	// RoleStudent is a student looking for tutoring.
	RoleStudent Role = "student"
	// RoleTutor is a tutor browsing matched students.
	RoleTutor Role = "tutor"
)

// IsValid reports whether the role is one of the two signed-in roles.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTutor
}

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// ParseRole parses a backend role string. Unknown values map to RoleUnset.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent
	case RoleTutor:
		return RoleTutor
	default:
		return RoleUnset
	}
}

// TokenStore is the process-wide holder of the bearer credential.
//
// The store is deliberately pluggable: the default implementation keeps the
// token in memory for the lifetime of the process, and a durable strategy
// (see the redis persistence package) can be injected instead. Writers are
// the auth flow and logout; every authenticated request reads the store at
// call time.
type TokenStore interface {
	// Get returns the current token and whether one is held.
	Get() (string, bool)
	// Set replaces the current token.
	Set(token string)
	// Clear discards the current token.
	Clear()
}

// InMemoryTokenStore is the default TokenStore. The token lives exactly as
// long as the process; nothing is persisted across restarts.
type InMemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	held  bool
}

// NewInMemoryTokenStore creates an empty in-memory token store.
func NewInMemoryTokenStore() *InMemoryTokenStore {
	return &InMemoryTokenStore{}
}

// Get returns the current token and whether one is held.
func (s *InMemoryTokenStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.held
}

// Set replaces the current token.
func (s *InMemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.held = true
}

// Clear discards the current token.
func (s *InMemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.held = false
}

// Session is the single mutable client session. It is created all-absent at
// process start, filled in by the auth flow on successful login, and cleared
// entirely on logout.
type Session struct {
	role   Role
	userID string
	tokens TokenStore
}

// New creates an empty session backed by the given token store.
// A nil store falls back to the in-memory default.
func New(tokens TokenStore) *Session {
	if tokens == nil {
		tokens = NewInMemoryTokenStore()
	}
	return &Session{tokens: tokens}
}

// Role returns the current role (RoleUnset before sign-in).
func (s *Session) Role() Role { return s.role }

// UserID returns the opaque user identifier, or "" if absent.
func (s *Session) UserID() string { return s.userID }

// Tokens exposes the token store for authenticated requests.
func (s *Session) Tokens() TokenStore { return s.tokens }

// SignIn records a successful authentication. The token has already been
// placed in the store by the auth flow; this records identity and role.
func (s *Session) SignIn(userID string, role Role) error {
	if !role.IsValid() {
		return shared.ErrInvalidRole
	}
	s.userID = userID
	s.role = role
	return nil
}

// SignOut clears the whole session, token included.
func (s *Session) SignOut() {
	s.role = RoleUnset
	s.userID = ""
	s.tokens.Clear()
}

// SignedIn reports whether a role has been established.
func (s *Session) SignedIn() bool {
	return s.role.IsValid()
}
