package services

import (
	"context"

	"github.com/Nox008/Movie-Search-App/internal/models"
)

// MovieService defines stateless read-only access to the movie metadata
// provider.
type MovieService interface {
	// Search returns summaries for a title fragment in provider order,
	// which callers treat as relevance order. Zero matches yields an empty
	// slice, not an error.
	Search(ctx context.Context, title string) ([]models.MovieSummary, error)

	// ByID returns the full record for a provider id, or
	// [shared.ErrMovieNotFound].
	ByID(ctx context.Context, id string) (*models.MovieDetail, error)

	// Name returns the provider name (e.g. "OMDb")
	Name() string
}

// AuthResult is the payload of a successful login or signup exchange.
type AuthResult struct {
	Token string
	User  models.User
}

// AuthService exchanges credentials for a session.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Signup(ctx context.Context, name, email, password, confirm string) (*AuthResult, error)

	// OAuthLogin trades a provider access token (obtained via the local
	// authorization-code flow) for a backend session.
	OAuthLogin(ctx context.Context, provider, accessToken string) (*AuthResult, error)

	// Verify asks the backend whether the current token is still accepted.
	Verify(ctx context.Context) error
}

// ProfileService reads and mutates the authenticated user's profile.
type ProfileService interface {
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, name, email string) (*models.User, error)
	ChangePassword(ctx context.Context, current, next string) error
}

// BookmarkService is the authenticated CRUD client for the user's bookmark
// collection. Every call attaches the session token; a rejected token
// surfaces as [shared.ErrNotAuthenticated].
type BookmarkService interface {
	Bookmarks(ctx context.Context) ([]models.Bookmark, error)
	AddBookmark(ctx context.Context, bookmark models.Bookmark) error
	RemoveBookmark(ctx context.Context, movieID string) error
	CheckBookmark(ctx context.Context, movieID string) (bool, error)
}

// TokenSource supplies the current bearer token for authenticated calls.
// [session.Session] implements it.
type TokenSource interface {
	Token() (string, error)
}
