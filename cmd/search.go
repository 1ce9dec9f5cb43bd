package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
)

// Search queries the movie provider for a title fragment.
func (r *Runner) Search(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")
	limit := cmd.Int("limit")

	if query == "" {
		return fmt.Errorf("%w: a search query is required", shared.ErrMissingArgument)
	}

	if r.movies == nil {
		return fmt.Errorf("%w: set api.key in config.toml", shared.ErrMissingAPIKey)
	}

	r.logger.Infof("searching %s for %q", r.movies.Name(), query)

	results, err := r.movies.Search(ctx, query)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if r.history != nil {
		if err := r.history.Record(query, len(results)); err != nil {
			r.logger.Debug("failed to record search", "error", err)
		}
	}

	if limit > 0 && int(limit) < len(results) {
		results = results[:limit]
	}

	if useJSON {
		return r.writeJSON(results, pretty)
	}

	if len(results) == 0 {
		r.writePlain("No movies found for %q\n", query)
		return nil
	}

	r.writePlain("Found %d movies:\n\n", len(results))
	for i, m := range results {
		r.writePlain("%d. %s (%s)\n", i+1, m.Title, m.Year)
		r.writePlain("   ID: %s\n", m.ImdbID)
		if m.Type != "" {
			r.writePlain("   Type: %s\n", m.Type)
		}
		if poster := models.PosterURL(m.Poster); poster != "" {
			r.writePlain("   Poster: %s\n", poster)
		}
		r.writePlain("\n")
	}

	return nil
}

// Movie fetches the full record for a provider id. Fresh responses are
// written through to the local cache; when the provider is unreachable the
// cached copy is served instead.
func (r *Runner) Movie(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if id == "" {
		return fmt.Errorf("%w: a movie ID is required", shared.ErrMissingArgument)
	}

	if r.movies == nil {
		return fmt.Errorf("%w: set api.key in config.toml", shared.ErrMissingAPIKey)
	}

	r.logger.Infof("fetching movie %v", id)

	cached := false
	detail, err := r.movies.ByID(ctx, id)
	switch {
	case err == nil:
		if r.cache != nil {
			if cacheErr := r.cache.Put(detail); cacheErr != nil {
				r.logger.Debug("failed to cache movie", "error", cacheErr)
			}
		}
	case errors.Is(err, shared.ErrServiceUnavailable), errors.Is(err, shared.ErrTimeout):
		if r.cache == nil {
			return err
		}
		detail, err = r.cache.Get(id)
		if err != nil {
			return fmt.Errorf("%w: provider unreachable and no cached copy", shared.ErrServiceUnavailable)
		}
		cached = true
	default:
		return err
	}

	if useJSON {
		return r.writeJSON(detail, pretty)
	}

	r.writePlainHeader(fmt.Sprintf("%s (%s)", detail.Title, detail.Year))
	if cached {
		r.writePlain("(served from local cache)\n")
	}
	r.writePlain("Rated: %s | Runtime: %s | Genre: %s\n", detail.Rated, detail.Runtime, detail.Genre)
	r.writePlain("Director: %s\n", detail.Director)
	r.writePlain("Actors: %s\n", detail.Actors)
	r.writePlain("Rating: %s\n", detail.ImdbRating)
	if poster := models.PosterURL(detail.Poster); poster != "" {
		r.writePlain("Poster: %s\n", poster)
	}
	r.writePlainln("%s", detail.Plot)

	return nil
}

// HistoryList prints recent searches from the local database.
func (r *Runner) HistoryList(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	if r.history == nil {
		return fmt.Errorf("%w: run 'mvx setup database' first", shared.ErrServiceUnavailable)
	}

	records, err := r.history.Recent(int(limit))
	if err != nil {
		return fmt.Errorf("failed to read search history: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(records, cmd.Bool("pretty"))
	}

	if len(records) == 0 {
		r.writePlain("No searches recorded yet\n")
		return nil
	}

	r.writePlain("Recent searches:\n\n")
	for _, rec := range records {
		r.writePlain("%4d. %q (%d results) at %s\n", rec.Sequence, rec.Query, rec.Results, rec.SearchedAt.Format(time.DateTime))
	}

	return nil
}

// HistoryClear empties the local search history.
func (r *Runner) HistoryClear(ctx context.Context, cmd *cli.Command) error {
	if r.history == nil {
		return fmt.Errorf("%w: run 'mvx setup database' first", shared.ErrServiceUnavailable)
	}

	if err := r.history.Clear(); err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}

	r.writePlain("✓ Search history cleared\n")
	return nil
}
