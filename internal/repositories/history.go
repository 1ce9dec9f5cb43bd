package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/shared"
)

// SearchRecord is one row of the local search history.
type SearchRecord struct {
	ID         string
	Sequence   int
	Query      string
	Results    int
	SearchedAt time.Time
}

// SearchHistoryRepository persists recent search queries and result counts.
type SearchHistoryRepository struct {
	db *sql.DB
}

// NewSearchHistoryRepository creates a new [SearchHistoryRepository] with the
// given database connection
func NewSearchHistoryRepository(db *sql.DB) *SearchHistoryRepository {
	return &SearchHistoryRepository{db: db}
}

// Record inserts a search into the history with a generated ID and sequence.
func (r *SearchHistoryRepository) Record(query string, results int) error {
	sequence, err := NextSequence(r.db, "searches")
	if err != nil {
		return fmt.Errorf("failed to generate sequence: %w", err)
	}

	stmt := `
		INSERT INTO searches (id, sequence, query, results, searched_at) VALUES (?, ?, ?, ?, ?)
	`

	_, err = r.db.Exec(stmt, shared.GenerateID(), sequence, query, results, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert search record: %w", err)
	}

	return nil
}

// Recent returns the most recent searches, newest first.
func (r *SearchHistoryRepository) Recent(limit int) ([]SearchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	stmt := `
		SELECT id, sequence, query, results, searched_at
		FROM searches
		ORDER BY sequence DESC
		LIMIT ?
	`

	rows, err := r.db.Query(stmt, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}
	defer rows.Close()

	var records []SearchRecord
	for rows.Next() {
		var rec SearchRecord
		if err := rows.Scan(&rec.ID, &rec.Sequence, &rec.Query, &rec.Results, &rec.SearchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan search record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}

	return records, nil
}

// Clear removes all search history rows.
func (r *SearchHistoryRepository) Clear() error {
	if _, err := r.db.Exec("DELETE FROM searches"); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}
	return nil
}
