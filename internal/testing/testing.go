// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"testing"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// MockMovieService is a test double for [services.MovieService]
type MockMovieService struct {
	Summaries []models.MovieSummary
	Detail    *models.MovieDetail
	Err       error

	SearchCalls []string
	ByIDCalls   []string
}

func (m *MockMovieService) Search(ctx context.Context, title string) ([]models.MovieSummary, error) {
	m.SearchCalls = append(m.SearchCalls, title)
	return m.Summaries, m.Err
}

func (m *MockMovieService) ByID(ctx context.Context, id string) (*models.MovieDetail, error) {
	m.ByIDCalls = append(m.ByIDCalls, id)
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Detail == nil {
		return nil, shared.ErrMovieNotFound
	}
	return m.Detail, nil
}

func (m *MockMovieService) Name() string { return "mock" }

// MockBookmarks is a test double for [services.BookmarkService]
type MockBookmarks struct {
	Items   []models.Bookmark
	Err     error
	Removed []string
	Added   []models.Bookmark
}

func (m *MockBookmarks) Bookmarks(ctx context.Context) ([]models.Bookmark, error) {
	return m.Items, m.Err
}

func (m *MockBookmarks) AddBookmark(ctx context.Context, b models.Bookmark) error {
	m.Added = append(m.Added, b)
	return m.Err
}

func (m *MockBookmarks) RemoveBookmark(ctx context.Context, movieID string) error {
	m.Removed = append(m.Removed, movieID)
	return m.Err
}

func (m *MockBookmarks) CheckBookmark(ctx context.Context, movieID string) (bool, error) {
	for _, b := range m.Items {
		if b.MovieID == movieID {
			return true, m.Err
		}
	}
	return false, m.Err
}

// StaticTokens is a test double for [services.TokenSource]
type StaticTokens struct {
	Value string
	Err   error
}

func (s *StaticTokens) Token() (string, error) {
	return s.Value, s.Err
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
