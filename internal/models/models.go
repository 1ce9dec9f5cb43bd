package models

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// User is the denormalized user summary cached alongside the session token.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// MovieSummary represents one entry of a provider search response.
type MovieSummary struct {
	ImdbID string `json:"imdbID"`
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	Poster string `json:"Poster"`
	Type   string `json:"Type"`
}

// MovieDetail represents a full provider record for a single title.
type MovieDetail struct {
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Rated      string `json:"Rated"`
	Released   string `json:"Released"`
	Runtime    string `json:"Runtime"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Plot       string `json:"Plot"`
	Language   string `json:"Language"`
	Country    string `json:"Country"`
	Awards     string `json:"Awards"`
	Poster     string `json:"Poster"`
	ImdbRating string `json:"imdbRating"`
	BoxOffice  string `json:"BoxOffice"`
}

// PosterURL returns the poster URL, or empty when the provider reports "N/A".
func PosterURL(poster string) string {
	if poster == "" || poster == "N/A" {
		return ""
	}
	return poster
}

// Bookmark is a user's saved reference to a movie. At most one exists per
// (user, movie) pair; uniqueness is enforced server-side.
type Bookmark struct {
	MovieID      string    `json:"movieId"`
	Title        string    `json:"title"`
	Poster       string    `json:"poster"`
	Year         string    `json:"year"`
	ImdbRating   string    `json:"imdbRating"`
	Genre        string    `json:"genre"`
	BookmarkedAt time.Time `json:"bookmarkedAt"`
}

// BookmarkFromDetail builds the bookmark metadata sent on an add call.
func BookmarkFromDetail(d *MovieDetail) Bookmark {
	return Bookmark{
		MovieID:    d.ImdbID,
		Title:      d.Title,
		Poster:     PosterURL(d.Poster),
		Year:       d.Year,
		ImdbRating: d.ImdbRating,
		Genre:      d.Genre,
	}
}

// BookmarkSort enumerates the supported bookmark list orderings.
type BookmarkSort string

const (
	SortNewest BookmarkSort = "newest"
	SortOldest BookmarkSort = "oldest"
	SortTitle  BookmarkSort = "title"
	SortRating BookmarkSort = "rating"
)

// FilterBookmarks returns bookmarks whose title or genre contains term,
// case-insensitively. An empty term returns the input unchanged.
func FilterBookmarks(bookmarks []Bookmark, term string) []Bookmark {
	if term == "" {
		return bookmarks
	}

	term = strings.ToLower(term)
	var out []Bookmark
	for _, b := range bookmarks {
		if strings.Contains(strings.ToLower(b.Title), term) || strings.Contains(strings.ToLower(b.Genre), term) {
			out = append(out, b)
		}
	}
	return out
}

// SortBookmarks orders bookmarks in place. Unknown modes fall back to newest
// first. Ratings that fail to parse sort as zero.
func SortBookmarks(bookmarks []Bookmark, mode BookmarkSort) {
	sort.SliceStable(bookmarks, func(i, j int) bool {
		a, b := bookmarks[i], bookmarks[j]
		switch mode {
		case SortOldest:
			return a.BookmarkedAt.Before(b.BookmarkedAt)
		case SortTitle:
			return a.Title < b.Title
		case SortRating:
			return parseRating(a.ImdbRating) > parseRating(b.ImdbRating)
		default:
			return a.BookmarkedAt.After(b.BookmarkedAt)
		}
	})
}

func parseRating(s string) float64 {
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return r
}
