package repositories

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := shared.NewDatabase(":memory:")
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := shared.RunMigrations(db); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	return db
}

func TestMovieCacheRepository(t *testing.T) {
	detail := &models.MovieDetail{
		ImdbID:     "tt1375666",
		Title:      "Inception",
		Year:       "2010",
		Genre:      "Action, Sci-Fi",
		ImdbRating: "8.8",
		Plot:       "A thief who steals corporate secrets...",
	}

	t.Run("Put And Get", func(t *testing.T) {
		repo := NewMovieCacheRepository(newTestDB(t))

		if err := repo.Put(detail); err != nil {
			t.Fatalf("failed to cache movie: %v", err)
		}

		got, err := repo.Get("tt1375666")
		if err != nil {
			t.Fatalf("failed to read cache: %v", err)
		}
		if got.Title != "Inception" {
			t.Errorf("expected title Inception, got %s", got.Title)
		}
		if got.ImdbRating != "8.8" {
			t.Errorf("expected rating 8.8, got %s", got.ImdbRating)
		}
	})

	t.Run("Put Replaces Previous Copy", func(t *testing.T) {
		repo := NewMovieCacheRepository(newTestDB(t))

		if err := repo.Put(detail); err != nil {
			t.Fatalf("failed to cache movie: %v", err)
		}

		updated := *detail
		updated.ImdbRating = "9.0"
		if err := repo.Put(&updated); err != nil {
			t.Fatalf("failed to replace cached movie: %v", err)
		}

		got, err := repo.Get("tt1375666")
		if err != nil {
			t.Fatalf("failed to read cache: %v", err)
		}
		if got.ImdbRating != "9.0" {
			t.Errorf("expected replaced rating 9.0, got %s", got.ImdbRating)
		}

		count, err := repo.Count()
		if err != nil {
			t.Fatalf("failed to count: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single cached row, got %d", count)
		}
	})

	t.Run("Get Uncached ID", func(t *testing.T) {
		repo := NewMovieCacheRepository(newTestDB(t))

		if _, err := repo.Get("tt0000000"); !errors.Is(err, shared.ErrMovieNotFound) {
			t.Errorf("expected ErrMovieNotFound, got %v", err)
		}
	})

	t.Run("Prune", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewMovieCacheRepository(db)

		if err := repo.Put(detail); err != nil {
			t.Fatalf("failed to cache movie: %v", err)
		}

		// Backdate the entry past the prune cutoff.
		if _, err := db.Exec("UPDATE movies SET cached_at = ?", time.Now().Add(-48*time.Hour)); err != nil {
			t.Fatalf("failed to backdate cache entry: %v", err)
		}

		removed, err := repo.Prune(24 * time.Hour)
		if err != nil {
			t.Fatalf("failed to prune: %v", err)
		}
		if removed != 1 {
			t.Errorf("expected 1 pruned row, got %d", removed)
		}

		count, _ := repo.Count()
		if count != 0 {
			t.Errorf("expected empty cache after prune, got %d rows", count)
		}
	})
}

func TestSearchHistoryRepository(t *testing.T) {
	t.Run("Record And Recent", func(t *testing.T) {
		repo := NewSearchHistoryRepository(newTestDB(t))

		for _, q := range []string{"batman", "inception", "alien"} {
			if err := repo.Record(q, 10); err != nil {
				t.Fatalf("failed to record search %q: %v", q, err)
			}
		}

		records, err := repo.Recent(10)
		if err != nil {
			t.Fatalf("failed to read history: %v", err)
		}
		if len(records) != 3 {
			t.Fatalf("expected 3 records, got %d", len(records))
		}
		if records[0].Query != "alien" {
			t.Errorf("expected newest first, got %q", records[0].Query)
		}
		if records[0].Sequence <= records[2].Sequence {
			t.Error("expected sequences to decrease")
		}
	})

	t.Run("Recent Applies Limit", func(t *testing.T) {
		repo := NewSearchHistoryRepository(newTestDB(t))

		for range 5 {
			if err := repo.Record("query", 0); err != nil {
				t.Fatalf("failed to record search: %v", err)
			}
		}

		records, err := repo.Recent(2)
		if err != nil {
			t.Fatalf("failed to read history: %v", err)
		}
		if len(records) != 2 {
			t.Errorf("expected 2 records, got %d", len(records))
		}
	})

	t.Run("Clear", func(t *testing.T) {
		repo := NewSearchHistoryRepository(newTestDB(t))

		if err := repo.Record("batman", 4); err != nil {
			t.Fatalf("failed to record search: %v", err)
		}
		if err := repo.Clear(); err != nil {
			t.Fatalf("failed to clear history: %v", err)
		}

		records, err := repo.Recent(10)
		if err != nil {
			t.Fatalf("failed to read history: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("expected empty history, got %d records", len(records))
		}
	})
}

func TestNextSequence(t *testing.T) {
	db := newTestDB(t)

	first, err := NextSequence(db, "searches")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}
	second, err := NextSequence(db, "searches")
	if err != nil {
		t.Fatalf("failed to get sequence: %v", err)
	}

	if second != first+1 {
		t.Errorf("expected consecutive sequences, got %d then %d", first, second)
	}
}
