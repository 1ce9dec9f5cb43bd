package session

import (
	"errors"
	"sync"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// Session is the single shared owner of the current credential.
//
// Every view reads the session through [Session.Current] and registers a
// subscriber for changes; login, logout, profile updates, and 401-triggered
// invalidation all flow through here, so no view is ever left showing a
// stale authentication state.
type Session struct {
	mu    sync.Mutex
	store Store
	cred  *Credential
	subs  []func(*Credential)
}

// New creates a [Session] backed by the given store, seeded with whatever
// credential the store currently holds.
func New(store Store) *Session {
	s := &Session{store: store}
	if cred, err := store.Load(); err == nil {
		s.cred = cred
	}
	return s
}

// Current returns the active credential, or nil when logged out.
func (s *Session) Current() *Credential {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil
	}
	cred := *s.cred
	return &cred
}

// User returns the cached user summary and whether a session exists.
func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return models.User{}, false
	}
	return s.cred.User, true
}

// Token returns the bearer token, or [shared.ErrNoSession] when logged out.
func (s *Session) Token() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return "", shared.ErrNoSession
	}
	return s.cred.Token, nil
}

// Subscribe registers fn to be called synchronously after every session
// change, with the new credential (nil on logout). Returns an unsubscribe
// function.
func (s *Session) Subscribe(fn func(*Credential)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.subs[idx] = nil
	}
}

// Login persists the credential pair and notifies subscribers.
func (s *Session) Login(token string, user models.User) error {
	if err := s.store.Save(token, user); err != nil {
		return err
	}
	s.set(&Credential{Token: token, User: user})
	return nil
}

// Logout clears the store and notifies subscribers. Safe when already
// logged out.
func (s *Session) Logout() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.set(nil)
	return nil
}

// SetUser replaces the cached user summary after a profile update. The token
// is unchanged. Returns [shared.ErrNoSession] when logged out.
func (s *Session) SetUser(user models.User) error {
	s.mu.Lock()
	if s.cred == nil {
		s.mu.Unlock()
		return shared.ErrNoSession
	}
	token := s.cred.Token
	s.mu.Unlock()

	if err := s.store.Save(token, user); err != nil {
		return err
	}
	s.set(&Credential{Token: token, User: user})
	return nil
}

// Invalidate drops the session in response to an authentication-rejected
// response. The store is cleared and subscribers observe a logout.
func (s *Session) Invalidate() {
	s.store.Clear()
	s.set(nil)
}

// HandleAuthError invalidates the session when err is an authentication
// rejection and reports whether it did so. Gateways return
// [shared.ErrNotAuthenticated] for 401-equivalent responses; every caller
// routes those through here.
func (s *Session) HandleAuthError(err error) bool {
	if err == nil || !errors.Is(err, shared.ErrNotAuthenticated) {
		return false
	}
	s.Invalidate()
	return true
}

func (s *Session) set(cred *Credential) {
	s.mu.Lock()
	s.cred = cred
	subs := make([]func(*Credential), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		if fn != nil {
			fn(cred)
		}
	}
}
