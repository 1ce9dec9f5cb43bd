package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// MovieCacheRepository is a write-through cache of provider detail fetches
// keyed by imdb id.
type MovieCacheRepository struct {
	db *sql.DB
}

// NewMovieCacheRepository creates a new [MovieCacheRepository] with the given
// database connection
func NewMovieCacheRepository(db *sql.DB) *MovieCacheRepository {
	return &MovieCacheRepository{db: db}
}

// Put caches a movie detail record, replacing any previous copy for the same
// id. Caching is best-effort; callers log failures rather than surface them.
func (r *MovieCacheRepository) Put(detail *models.MovieDetail) error {
	query := `
		INSERT OR REPLACE INTO movies (
			imdb_id, title, year, rated, released, runtime, genre, director,
			actors, plot, language, country, awards, poster, imdb_rating,
			box_office, cached_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		detail.ImdbID, detail.Title, detail.Year, detail.Rated, detail.Released,
		detail.Runtime, detail.Genre, detail.Director, detail.Actors, detail.Plot,
		detail.Language, detail.Country, detail.Awards, detail.Poster,
		detail.ImdbRating, detail.BoxOffice, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to cache movie: %w", err)
	}

	return nil
}

// Get returns a cached movie detail, or [shared.ErrMovieNotFound] when the id
// has not been cached.
func (r *MovieCacheRepository) Get(imdbID string) (*models.MovieDetail, error) {
	query := `
		SELECT imdb_id, title, year, rated, released, runtime, genre, director,
			actors, plot, language, country, awards, poster, imdb_rating, box_office
		FROM movies
		WHERE imdb_id = ?
	`

	var detail models.MovieDetail
	err := r.db.QueryRow(query, imdbID).Scan(
		&detail.ImdbID, &detail.Title, &detail.Year, &detail.Rated,
		&detail.Released, &detail.Runtime, &detail.Genre, &detail.Director,
		&detail.Actors, &detail.Plot, &detail.Language, &detail.Country,
		&detail.Awards, &detail.Poster, &detail.ImdbRating, &detail.BoxOffice,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s not cached", shared.ErrMovieNotFound, imdbID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query movie cache: %w", err)
	}

	return &detail, nil
}

// Count returns the number of cached movie records.
func (r *MovieCacheRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM movies").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count cached movies: %w", err)
	}
	return count, nil
}

// Prune removes cache entries older than the given age.
func (r *MovieCacheRepository) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)

	result, err := r.db.Exec("DELETE FROM movies WHERE cached_at < ?", cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune movie cache: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return removed, nil
}
