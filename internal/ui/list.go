package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/Nox008/Movie-Search-App/internal/models"
)

var (
	_ list.Item = movieItem{}
	_ list.Item = bookmarkItem{}
)

// movieItem wraps [models.MovieSummary] to implement [list.Item].
type movieItem struct {
	movie models.MovieSummary
}

func (i movieItem) FilterValue() string { return i.movie.Title }
func (i movieItem) Title() string       { return i.movie.Title }
func (i movieItem) Description() string {
	desc := i.movie.Year
	if i.movie.Type != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.movie.Type)
	}
	return desc
}

// bookmarkItem wraps [models.Bookmark] to implement [list.Item].
type bookmarkItem struct {
	bookmark models.Bookmark
}

func (i bookmarkItem) FilterValue() string {
	return fmt.Sprintf("%s %s", i.bookmark.Title, i.bookmark.Genre)
}
func (i bookmarkItem) Title() string { return i.bookmark.Title }
func (i bookmarkItem) Description() string {
	desc := i.bookmark.Year
	if i.bookmark.ImdbRating != "" && i.bookmark.ImdbRating != "N/A" {
		desc = fmt.Sprintf("%s • ★ %s", desc, i.bookmark.ImdbRating)
	}
	if i.bookmark.Genre != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.bookmark.Genre)
	}
	return desc
}
