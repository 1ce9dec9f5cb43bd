package models

import (
	"testing"
	"time"
)

func TestPosterURL(t *testing.T) {
	if got := PosterURL("https://img.example.com/p.jpg"); got != "https://img.example.com/p.jpg" {
		t.Errorf("expected URL passthrough, got %q", got)
	}
	if got := PosterURL("N/A"); got != "" {
		t.Errorf("expected empty string for N/A, got %q", got)
	}
	if got := PosterURL(""); got != "" {
		t.Errorf("expected empty string for empty input, got %q", got)
	}
}

func TestBookmarkFromDetail(t *testing.T) {
	detail := &MovieDetail{
		ImdbID:     "tt1375666",
		Title:      "Inception",
		Year:       "2010",
		Poster:     "N/A",
		ImdbRating: "8.8",
		Genre:      "Action, Sci-Fi",
		Plot:       "A thief who steals corporate secrets...",
	}

	b := BookmarkFromDetail(detail)
	if b.MovieID != "tt1375666" {
		t.Errorf("expected movie ID tt1375666, got %s", b.MovieID)
	}
	if b.Poster != "" {
		t.Errorf("expected N/A poster to be dropped, got %q", b.Poster)
	}
	if b.Genre != "Action, Sci-Fi" {
		t.Errorf("expected genre to carry over, got %s", b.Genre)
	}
}

func TestBookmarks(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	fixtures := func() []Bookmark {
		return []Bookmark{
			{MovieID: "tt1", Title: "Alien", Genre: "Horror, Sci-Fi", ImdbRating: "8.5", BookmarkedAt: day(2)},
			{MovieID: "tt2", Title: "Casablanca", Genre: "Drama, Romance", ImdbRating: "8.5", BookmarkedAt: day(1)},
			{MovieID: "tt3", Title: "Batman Begins", Genre: "Action", ImdbRating: "N/A", BookmarkedAt: day(3)},
		}
	}

	t.Run("Filter", func(t *testing.T) {
		t.Run("By Title Substring", func(t *testing.T) {
			got := FilterBookmarks(fixtures(), "bat")
			if len(got) != 1 || got[0].MovieID != "tt3" {
				t.Errorf("expected only Batman Begins, got %+v", got)
			}
		})

		t.Run("By Genre Case-Insensitively", func(t *testing.T) {
			got := FilterBookmarks(fixtures(), "SCI-FI")
			if len(got) != 1 || got[0].MovieID != "tt1" {
				t.Errorf("expected only Alien, got %+v", got)
			}
		})

		t.Run("Empty Term Returns Input", func(t *testing.T) {
			if got := FilterBookmarks(fixtures(), ""); len(got) != 3 {
				t.Errorf("expected all bookmarks, got %d", len(got))
			}
		})

		t.Run("No Matches", func(t *testing.T) {
			if got := FilterBookmarks(fixtures(), "western"); len(got) != 0 {
				t.Errorf("expected no matches, got %d", len(got))
			}
		})
	})

	t.Run("Sort", func(t *testing.T) {
		order := func(bookmarks []Bookmark) []string {
			ids := make([]string, len(bookmarks))
			for i, b := range bookmarks {
				ids[i] = b.MovieID
			}
			return ids
		}

		t.Run("Newest First", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, SortNewest)
			if got := order(bookmarks); got[0] != "tt3" || got[2] != "tt2" {
				t.Errorf("unexpected order: %v", got)
			}
		})

		t.Run("Oldest First", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, SortOldest)
			if got := order(bookmarks); got[0] != "tt2" || got[2] != "tt3" {
				t.Errorf("unexpected order: %v", got)
			}
		})

		t.Run("By Title", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, SortTitle)
			if got := order(bookmarks); got[0] != "tt1" || got[1] != "tt3" {
				t.Errorf("unexpected order: %v", got)
			}
		})

		t.Run("By Rating With Unparseable Last", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, SortRating)
			if got := order(bookmarks); got[2] != "tt3" {
				t.Errorf("N/A rating should sort last, got %v", got)
			}
		})

		t.Run("Rating Ties Keep Stable Order", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, SortRating)
			if got := order(bookmarks); got[0] != "tt1" || got[1] != "tt2" {
				t.Errorf("tied ratings should keep input order, got %v", got)
			}
		})

		t.Run("Unknown Mode Falls Back To Newest", func(t *testing.T) {
			bookmarks := fixtures()
			SortBookmarks(bookmarks, BookmarkSort("bogus"))
			if got := order(bookmarks); got[0] != "tt3" {
				t.Errorf("unexpected order: %v", got)
			}
		})
	})
}
