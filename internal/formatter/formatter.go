// package formatter provides functions to export a bookmark collection to various formats (CSV, Markdown, plain text)
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
)

// ExportToCSV converts a bookmark collection to CSV format with columns:
// MovieID, Title, Year, Genre, Rating, Poster, BookmarkedAt
func ExportToCSV(bookmarks []models.Bookmark) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"MovieID", "Title", "Year", "Genre", "Rating", "Poster", "BookmarkedAt"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, b := range bookmarks {
		record := []string{
			b.MovieID,
			b.Title,
			b.Year,
			b.Genre,
			b.ImdbRating,
			b.Poster,
			b.BookmarkedAt.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts a bookmark collection to a Markdown document
// titled with the owner's name.
func ExportToMarkdown(owner string, bookmarks []models.Bookmark) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s's Bookmarks\n\n", owner))
	buf.WriteString(fmt.Sprintf("**Movies**: %d\n\n", len(bookmarks)))

	buf.WriteString("## Movies\n\n")
	for i, b := range bookmarks {
		ratingPart := ""
		if b.ImdbRating != "" && b.ImdbRating != "N/A" {
			ratingPart = fmt.Sprintf(" — IMDB %s", b.ImdbRating)
		}
		buf.WriteString(fmt.Sprintf("%d. **%s** (%s)%s\n", i+1, b.Title, b.Year, ratingPart))
		if b.Genre != "" {
			buf.WriteString(fmt.Sprintf("   - %s\n", b.Genre))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts a bookmark collection to plain text format
func ExportToText(bookmarks []models.Bookmark) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Bookmarks: %d\n\n", len(bookmarks)))

	for i, b := range bookmarks {
		buf.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, b.Title, b.Year))
	}

	return buf.Bytes(), nil
}

// WriteExport renders the bookmark collection in the given format ("csv",
// "markdown", or "text") and writes it to path.
//
// An empty path defaults to bookmarks.{ext} in the working directory.
func WriteExport(owner string, bookmarks []models.Bookmark, format, path string) (string, error) {
	var data []byte
	var ext string
	var err error

	switch format {
	case "csv":
		data, err = ExportToCSV(bookmarks)
		ext = "csv"
	case "markdown", "md":
		data, err = ExportToMarkdown(owner, bookmarks)
		ext = "md"
	case "text", "txt", "":
		data, err = ExportToText(bookmarks)
		ext = "txt"
	default:
		return "", fmt.Errorf("unsupported export format: %s", format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate export: %w", err)
	}

	if path == "" {
		path = "bookmarks." + ext
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}
