package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

func newTestSession(t *testing.T) (*Session, string) {
	t.Helper()

	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	token := makeToken(t, map[string]any{
		"sub": "user-1",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	return New(store), token
}

func TestSession(t *testing.T) {
	user := models.User{ID: "user-1", Name: "Jane", Email: "jane@example.com"}

	t.Run("Starts Logged Out", func(t *testing.T) {
		sess, _ := newTestSession(t)

		if cred := sess.Current(); cred != nil {
			t.Error("expected nil credential before login")
		}
		if _, ok := sess.User(); ok {
			t.Error("expected no user before login")
		}
		if _, err := sess.Token(); !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected ErrNoSession, got %v", err)
		}
	})

	t.Run("Seeds From Store", func(t *testing.T) {
		store, _ := NewFileStore(t.TempDir())
		token := makeToken(t, map[string]any{"sub": "user-1"})
		if err := store.Save(token, user); err != nil {
			t.Fatalf("failed to seed store: %v", err)
		}

		sess := New(store)
		got, err := sess.Token()
		if err != nil {
			t.Fatalf("expected seeded token, got %v", err)
		}
		if got != token {
			t.Error("seeded token does not match stored token")
		}
	})

	t.Run("Login And Logout", func(t *testing.T) {
		sess, token := newTestSession(t)

		if err := sess.Login(token, user); err != nil {
			t.Fatalf("failed to login: %v", err)
		}

		got, ok := sess.User()
		if !ok {
			t.Fatal("expected user after login")
		}
		if got.Email != user.Email {
			t.Errorf("expected email %s, got %s", user.Email, got.Email)
		}

		if err := sess.Logout(); err != nil {
			t.Fatalf("failed to logout: %v", err)
		}
		if _, ok := sess.User(); ok {
			t.Error("expected no user after logout")
		}
	})

	t.Run("Subscribers Observe Changes", func(t *testing.T) {
		sess, token := newTestSession(t)

		var events []*Credential
		unsubscribe := sess.Subscribe(func(cred *Credential) {
			events = append(events, cred)
		})

		sess.Login(token, user)
		sess.Logout()

		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0] == nil || events[0].User.Email != user.Email {
			t.Error("first event should carry the login credential")
		}
		if events[1] != nil {
			t.Error("second event should be nil for logout")
		}

		unsubscribe()
		sess.Login(token, user)
		if len(events) != 2 {
			t.Error("unsubscribed function should not receive events")
		}
	})

	t.Run("SetUser Keeps Token", func(t *testing.T) {
		sess, token := newTestSession(t)

		if err := sess.SetUser(user); !errors.Is(err, shared.ErrNoSession) {
			t.Errorf("expected ErrNoSession when logged out, got %v", err)
		}

		sess.Login(token, user)

		updated := user
		updated.Name = "Jane Doe"
		if err := sess.SetUser(updated); err != nil {
			t.Fatalf("failed to set user: %v", err)
		}

		got, _ := sess.User()
		if got.Name != "Jane Doe" {
			t.Errorf("expected updated name, got %s", got.Name)
		}
		if tok, _ := sess.Token(); tok != token {
			t.Error("token should be unchanged by a profile update")
		}
	})

	t.Run("HandleAuthError", func(t *testing.T) {
		sess, token := newTestSession(t)
		sess.Login(token, user)

		if sess.HandleAuthError(nil) {
			t.Error("nil error should not invalidate")
		}
		if sess.HandleAuthError(fmt.Errorf("network down")) {
			t.Error("unrelated error should not invalidate")
		}
		if _, ok := sess.User(); !ok {
			t.Fatal("session should survive unrelated errors")
		}

		wrapped := fmt.Errorf("request failed: %w", shared.ErrNotAuthenticated)
		if !sess.HandleAuthError(wrapped) {
			t.Error("authentication rejection should invalidate")
		}
		if _, ok := sess.User(); ok {
			t.Error("session should be dropped after an auth rejection")
		}
	})
}
