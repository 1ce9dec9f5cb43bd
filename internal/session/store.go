package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// Credential is the authoritative record of "is a user logged in, and as
// whom". Token and user are always persisted and loaded as a pair.
type Credential struct {
	Token string
	User  models.User
}

// Store persists the session credential.
type Store interface {
	Save(token string, user models.User) error
	Load() (*Credential, error)
	Clear() error
}

// FileStore keeps the credential as two files under a directory: the raw
// bearer token and the serialized user summary.
type FileStore struct {
	dir string
}

// NewFileStore creates a [FileStore] rooted at dir. An empty dir selects the
// default state directory (~/.mvx).
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		var err error
		if dir, err = shared.StateDir(); err != nil {
			return nil, err
		}
	}
	return &FileStore{dir: dir}, nil
}

// Save persists the credential pair. The token is written before the user so
// an interrupted save never leaves a user summary without a token.
func (s *FileStore) Save(token string, user models.User) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", shared.ErrInvalidArgument)
	}

	if err := os.WriteFile(s.path(tokenFile), []byte(token), 0600); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := os.WriteFile(s.path(userFile), data, 0600); err != nil {
		return fmt.Errorf("failed to write user: %w", err)
	}

	return nil
}

// Load returns the stored credential, or [shared.ErrNoSession] when no
// complete, well-formed pair exists.
//
// A token that fails to decode or carries a passed expiry claim is cleared
// here rather than surfaced to the caller; the same applies to a token
// missing its user half, so loaders never observe one without the other.
func (s *FileStore) Load() (*Credential, error) {
	tokenData, err := os.ReadFile(s.path(tokenFile))
	if os.IsNotExist(err) {
		return nil, shared.ErrNoSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read token: %w", err)
	}

	token := string(tokenData)
	claims, err := DecodeClaims(token)
	if err != nil || claims.Expired(time.Now()) {
		s.Clear()
		return nil, shared.ErrNoSession
	}

	userData, err := os.ReadFile(s.path(userFile))
	if err != nil {
		s.Clear()
		return nil, shared.ErrNoSession
	}

	var user models.User
	if err := json.Unmarshal(userData, &user); err != nil {
		s.Clear()
		return nil, shared.ErrNoSession
	}

	return &Credential{Token: token, User: user}, nil
}

// Clear removes both halves of the credential unconditionally.
func (s *FileStore) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) && firstErr == nil {
			firstErr = fmt.Errorf("failed to remove %s: %w", name, err)
		}
	}
	return firstErr
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}
