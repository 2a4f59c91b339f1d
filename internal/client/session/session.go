// Package session holds the process-wide login flag. The flag is derived
// from the presence of a stored token at startup and mutated only by the
// explicit Login/Logout calls.
package session

import (
	"context"
	"sync"

	"github.com/hady-bs/blog-mobile-application/internal/client/store"
)

// Session is the auth-state container passed down to the views.
//
// Ordering contract: callers persist the token to the store before calling
// Login. Login itself never writes the token; breaking the order leaves
// IsLoggedIn true with no stored credential until the next Init.
type Session struct {
	mu       sync.Mutex
	loggedIn bool
	store    store.Repository
}

func New(st store.Repository) *Session {
	return &Session{store: st}
}

// Init derives the login flag from the stored token. Run it before any view
// reads IsLoggedIn so consumers never observe a stale false.
func (s *Session) Init(ctx context.Context) error {
	token, err := s.store.Get(ctx, store.KeyToken)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.loggedIn = token != ""
	s.mu.Unlock()
	return nil
}

func (s *Session) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loggedIn
}

// Login flips the flag unconditionally.
func (s *Session) Login() {
	s.mu.Lock()
	s.loggedIn = true
	s.mu.Unlock()
}

// Logout deletes the stored token and clears the flag. The flag is cleared
// even when the deletion fails; the error is returned so the caller can
// decide whether to surface it.
func (s *Session) Logout(ctx context.Context) error {
	err := s.store.Delete(ctx, store.KeyToken)
	s.mu.Lock()
	s.loggedIn = false
	s.mu.Unlock()
	return err
}
