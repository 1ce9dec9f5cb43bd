package main

import (
	"context"
	"fmt"

	"github.com/Nox008/Movie-Search-App/internal/formatter"
	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
)

// BookmarkList prints the signed-in user's bookmarks with optional filtering
// and sorting.
func (r *Runner) BookmarkList(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	filter := cmd.String("filter")
	sortMode := models.BookmarkSort(cmd.String("sort"))
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	bookmarks, err := r.bookmarks.Bookmarks(ctx)
	if err != nil {
		return r.handleAuthError(err)
	}

	if filter != "" {
		bookmarks = models.FilterBookmarks(bookmarks, filter)
	}
	models.SortBookmarks(bookmarks, sortMode)

	if useJSON {
		return r.writeJSON(bookmarks, pretty)
	}

	if len(bookmarks) == 0 {
		if filter != "" {
			r.writePlain("No bookmarks match %q\n", filter)
		} else {
			r.writePlain("No bookmarks yet, find a movie with 'mvx search' and bookmark it\n")
		}
		return nil
	}

	r.writePlain("Found %d bookmarks:\n\n", len(bookmarks))
	for i, b := range bookmarks {
		r.writePlain("%d. %s (%s)\n", i+1, b.Title, b.Year)
		r.writePlain("   ID: %s\n", b.MovieID)
		if b.Genre != "" {
			r.writePlain("   Genre: %s\n", b.Genre)
		}
		if b.ImdbRating != "" && b.ImdbRating != "N/A" {
			r.writePlain("   Rating: %s\n", b.ImdbRating)
		}
		if !b.BookmarkedAt.IsZero() {
			r.writePlain("   Saved: %s\n", b.BookmarkedAt.Format("Jan 2, 2006"))
		}
		r.writePlain("\n")
	}

	return nil
}

// BookmarkAdd saves a movie to the user's collection. The full record is
// fetched from the provider first so the bookmark carries display fields.
func (r *Runner) BookmarkAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: a movie ID is required", shared.ErrMissingArgument)
	}

	if r.movies == nil {
		return fmt.Errorf("%w: set api.key in config.toml", shared.ErrMissingAPIKey)
	}

	detail, err := r.movies.ByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.bookmarks.AddBookmark(ctx, models.BookmarkFromDetail(detail)); err != nil {
		return r.handleAuthError(err)
	}

	r.writePlain("✓ Bookmarked %s (%s)\n", detail.Title, detail.Year)
	return nil
}

// BookmarkRemove removes a movie from the user's collection. Removing a
// movie that is not bookmarked succeeds.
func (r *Runner) BookmarkRemove(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: a movie ID is required", shared.ErrMissingArgument)
	}

	if err := r.bookmarks.RemoveBookmark(ctx, id); err != nil {
		return r.handleAuthError(err)
	}

	r.writePlain("✓ Removed bookmark %s\n", id)
	return nil
}

// BookmarkCheck reports whether a movie is bookmarked.
func (r *Runner) BookmarkCheck(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: a movie ID is required", shared.ErrMissingArgument)
	}

	bookmarked, err := r.bookmarks.CheckBookmark(ctx, id)
	if err != nil {
		return r.handleAuthError(err)
	}

	if bookmarked {
		r.writePlain("✓ %s is bookmarked\n", id)
	} else {
		r.writePlain("✗ %s is not bookmarked\n", id)
	}
	return nil
}

// BookmarkExport writes the user's bookmarks to a file as CSV, Markdown, or
// plain text.
func (r *Runner) BookmarkExport(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	format := cmd.String("format")
	output := cmd.String("output")

	bookmarks, err := r.bookmarks.Bookmarks(ctx)
	if err != nil {
		return r.handleAuthError(err)
	}

	if len(bookmarks) == 0 {
		r.writePlain("No bookmarks to export\n")
		return nil
	}

	models.SortBookmarks(bookmarks, models.SortNewest)

	user, _ := r.sess.User()
	path, err := formatter.WriteExport(user.Name, bookmarks, format, output)
	if err != nil {
		return fmt.Errorf("failed to export bookmarks: %w", err)
	}

	r.logger.Infof("exported %d bookmarks to %v", len(bookmarks), path)

	r.writePlain("✓ Exported %d bookmarks to %s\n", len(bookmarks), path)
	return nil
}
