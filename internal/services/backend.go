// Backend implementation of [AuthService], [ProfileService], and
// [BookmarkService]
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// GenericFailureMessage is shown when the server's error payload carries no
// usable message.
const GenericFailureMessage = "An error occurred. Please try again."

// APIError is a non-2xx backend response with its server-reported message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (status %d)", e.Status)
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return shared.ErrNotAuthenticated
	}
	return shared.ErrAPIRequest
}

// UserMessage renders any gateway error as a human-readable string: the
// server's message verbatim when one exists, a generic fallback otherwise.
func UserMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if errors.Is(err, shared.ErrNotAuthenticated) {
		return "Session expired. Please log in again."
	}
	return GenericFailureMessage
}

// BackendService is the HTTP client for the auth/bookmarks/profile service.
//
// Authenticated calls attach the session token as a bearer credential from
// the configured [TokenSource]. The service itself never persists tokens.
type BackendService struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
}

var (
	_ AuthService     = (*BackendService)(nil)
	_ ProfileService  = (*BackendService)(nil)
	_ BookmarkService = (*BackendService)(nil)
)

// NewBackendService creates a backend client. An empty baseURL selects the
// local development default.
func NewBackendService(baseURL string, tokens TokenSource, client *http.Client) *BackendService {
	if baseURL == "" {
		baseURL = "http://localhost:5000"
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &BackendService{
		baseURL:    baseURL,
		httpClient: client,
		tokens:     tokens,
	}
}

// envelope carries the status fields present on every backend response.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type authResponse struct {
	envelope
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type profileResponse struct {
	envelope
	User models.User `json:"user"`
}

type bookmarksResponse struct {
	envelope
	Bookmarks []models.Bookmark `json:"bookmarks"`
}

type checkResponse struct {
	envelope
	IsBookmarked bool `json:"isBookmarked"`
}

// doRequest performs an HTTP request against the backend, optionally with a
// bearer token, and decodes the JSON response into result.
//
// Non-2xx responses become [*APIError] with the server's message; a 401
// additionally unwraps to [shared.ErrNotAuthenticated].
func (b *BackendService) doRequest(ctx context.Context, method, path string, body, result any, authed bool) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if authed {
		token, err := b.tokens.Token()
		if err != nil {
			return fmt.Errorf("%w: no session token", shared.ErrNotAuthenticated)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w: %v", shared.ErrTimeout, err)
		}
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var env envelope
		json.NewDecoder(resp.Body).Decode(&env)
		return &APIError{Status: resp.StatusCode, Message: env.Message}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
		}
	}

	return nil
}

// Login exchanges email and password for a session.
func (b *BackendService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	payload := map[string]string{"email": email, "password": password}

	var response authResponse
	if err := b.doRequest(ctx, http.MethodPost, "/api/auth/login", payload, &response, false); err != nil {
		return nil, err
	}
	if !response.Success || response.Token == "" {
		return nil, &APIError{Status: http.StatusOK, Message: response.Message}
	}

	return &AuthResult{Token: response.Token, User: response.User}, nil
}

// Signup registers a new account and returns its first session.
func (b *BackendService) Signup(ctx context.Context, name, email, password, confirm string) (*AuthResult, error) {
	payload := map[string]string{
		"name":            name,
		"email":           email,
		"password":        password,
		"confirmPassword": confirm,
	}

	var response authResponse
	if err := b.doRequest(ctx, http.MethodPost, "/api/auth/signup", payload, &response, false); err != nil {
		return nil, err
	}
	if !response.Success || response.Token == "" {
		return nil, &APIError{Status: http.StatusOK, Message: response.Message}
	}

	return &AuthResult{Token: response.Token, User: response.User}, nil
}

// OAuthLogin trades a provider access token for a backend session.
func (b *BackendService) OAuthLogin(ctx context.Context, provider, accessToken string) (*AuthResult, error) {
	payload := map[string]string{"provider": provider, "accessToken": accessToken}

	var response authResponse
	if err := b.doRequest(ctx, http.MethodPost, "/api/auth/oauth", payload, &response, false); err != nil {
		return nil, err
	}
	if !response.Success || response.Token == "" {
		return nil, &APIError{Status: http.StatusOK, Message: response.Message}
	}

	return &AuthResult{Token: response.Token, User: response.User}, nil
}

// Verify asks the backend whether the current token is still accepted.
func (b *BackendService) Verify(ctx context.Context) error {
	return b.doRequest(ctx, http.MethodGet, "/api/auth/verify", nil, nil, true)
}

// Profile fetches the authenticated user's profile.
func (b *BackendService) Profile(ctx context.Context) (*models.User, error) {
	var response profileResponse
	if err := b.doRequest(ctx, http.MethodGet, "/api/auth/profile", nil, &response, true); err != nil {
		return nil, err
	}
	return &response.User, nil
}

// UpdateProfile changes profile fields and returns the updated user summary.
// The session token is unchanged by a profile update.
func (b *BackendService) UpdateProfile(ctx context.Context, name, email string) (*models.User, error) {
	payload := map[string]string{"name": name, "email": email}

	var response profileResponse
	if err := b.doRequest(ctx, http.MethodPut, "/api/auth/profile", payload, &response, true); err != nil {
		return nil, err
	}
	if !response.Success {
		return nil, &APIError{Status: http.StatusOK, Message: response.Message}
	}

	return &response.User, nil
}

// ChangePassword rotates the account password. The server validates the
// current password.
func (b *BackendService) ChangePassword(ctx context.Context, current, next string) error {
	payload := map[string]string{"currentPassword": current, "newPassword": next}
	return b.doRequest(ctx, http.MethodPut, "/api/auth/change-password", payload, nil, true)
}

// Bookmarks returns all bookmarks for the session's user.
func (b *BackendService) Bookmarks(ctx context.Context) ([]models.Bookmark, error) {
	var response bookmarksResponse
	if err := b.doRequest(ctx, http.MethodGet, "/api/bookmarks", nil, &response, true); err != nil {
		return nil, err
	}
	return response.Bookmarks, nil
}

// AddBookmark saves a movie to the user's collection. Uniqueness per
// (user, movie) is the server's responsibility; the client does not pre-check.
func (b *BackendService) AddBookmark(ctx context.Context, bookmark models.Bookmark) error {
	return b.doRequest(ctx, http.MethodPost, "/api/bookmarks", bookmark, nil, true)
}

// RemoveBookmark deletes a bookmark by movie id. Removing an id that is not
// bookmarked is treated as success.
func (b *BackendService) RemoveBookmark(ctx context.Context, movieID string) error {
	err := b.doRequest(ctx, http.MethodDelete, "/api/bookmarks/"+movieID, nil, nil, true)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound {
		return nil
	}
	return err
}

// CheckBookmark reports whether the given movie id is bookmarked for the
// current session.
func (b *BackendService) CheckBookmark(ctx context.Context, movieID string) (bool, error) {
	var response checkResponse
	if err := b.doRequest(ctx, http.MethodGet, "/api/bookmarks/check/"+movieID, nil, &response, true); err != nil {
		return false, err
	}
	return response.IsBookmarked, nil
}
