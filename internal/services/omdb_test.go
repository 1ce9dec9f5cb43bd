package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Nox008/Movie-Search-App/internal/shared"
)

func TestOMDbService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("Requires API Key", func(t *testing.T) {
			if _, err := NewOMDbService("", "", 0, nil); !errors.Is(err, shared.ErrMissingAPIKey) {
				t.Errorf("expected ErrMissingAPIKey, got %v", err)
			}
		})

		t.Run("Defaults", func(t *testing.T) {
			svc, err := NewOMDbService("key", "", 0, nil)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if svc.baseURL != omdbBaseURL {
				t.Errorf("expected default baseURL, got %s", svc.baseURL)
			}
			if svc.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
			if svc.Name() != "OMDb" {
				t.Errorf("expected provider name OMDb, got %s", svc.Name())
			}
		})
	})

	t.Run("Search", func(t *testing.T) {
		t.Run("Results In Provider Order", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("apikey") != "key" {
					t.Errorf("expected apikey param, got %q", r.URL.Query().Get("apikey"))
				}
				if r.URL.Query().Get("s") != "inception" {
					t.Errorf("expected s=inception, got %q", r.URL.Query().Get("s"))
				}

				json.NewEncoder(w).Encode(map[string]any{
					"Response":     "True",
					"totalResults": "2",
					"Search": []map[string]string{
						{"imdbID": "tt1375666", "Title": "Inception", "Year": "2010", "Type": "movie"},
						{"imdbID": "tt5295990", "Title": "Inception: The Cobol Job", "Year": "2010", "Type": "movie"},
					},
				})
			}))
			defer server.Close()

			svc, _ := NewOMDbService("key", server.URL, 0, nil)
			results, err := svc.Search(context.Background(), "inception")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 2 {
				t.Fatalf("expected 2 results, got %d", len(results))
			}
			if results[0].ImdbID != "tt1375666" {
				t.Errorf("expected first result tt1375666, got %s", results[0].ImdbID)
			}
		})

		t.Run("Zero Matches Is Not An Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{
					"Response": "False",
					"Error":    "Movie not found!",
				})
			}))
			defer server.Close()

			svc, _ := NewOMDbService("key", server.URL, 0, nil)
			results, err := svc.Search(context.Background(), "zzzzzz")
			if err != nil {
				t.Fatalf("expected no error for zero matches, got %v", err)
			}
			if len(results) != 0 {
				t.Errorf("expected empty slice, got %d results", len(results))
			}
		})

		t.Run("Provider Error Surfaces", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{
					"Response": "False",
					"Error":    "Invalid API key!",
				})
			}))
			defer server.Close()

			svc, _ := NewOMDbService("key", server.URL, 0, nil)
			if _, err := svc.Search(context.Background(), "batman"); !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected ErrAPIRequest, got %v", err)
			}
		})

		t.Run("Unreachable Provider", func(t *testing.T) {
			svc, _ := NewOMDbService("key", "http://127.0.0.1:1", 0, nil)
			if _, err := svc.Search(context.Background(), "batman"); !errors.Is(err, shared.ErrServiceUnavailable) {
				t.Errorf("expected ErrServiceUnavailable, got %v", err)
			}
		})
	})

	t.Run("ByID", func(t *testing.T) {
		t.Run("Full Record", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("i") != "tt1375666" {
					t.Errorf("expected i=tt1375666, got %q", r.URL.Query().Get("i"))
				}
				if r.URL.Query().Get("plot") != "full" {
					t.Errorf("expected plot=full, got %q", r.URL.Query().Get("plot"))
				}

				json.NewEncoder(w).Encode(map[string]string{
					"Response":   "True",
					"imdbID":     "tt1375666",
					"Title":      "Inception",
					"Year":       "2010",
					"Genre":      "Action, Adventure, Sci-Fi",
					"imdbRating": "8.8",
				})
			}))
			defer server.Close()

			svc, _ := NewOMDbService("key", server.URL, 0, nil)
			detail, err := svc.ByID(context.Background(), "tt1375666")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if detail.Title != "Inception" {
				t.Errorf("expected title Inception, got %s", detail.Title)
			}
			if detail.ImdbRating != "8.8" {
				t.Errorf("expected rating 8.8, got %s", detail.ImdbRating)
			}
		})

		t.Run("Unknown ID", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(map[string]string{
					"Response": "False",
					"Error":    "Incorrect IMDb ID.",
				})
			}))
			defer server.Close()

			svc, _ := NewOMDbService("key", server.URL, 0, nil)
			if _, err := svc.ByID(context.Background(), "tt0000000"); !errors.Is(err, shared.ErrMovieNotFound) {
				t.Errorf("expected ErrMovieNotFound, got %v", err)
			}
		})
	})
}
