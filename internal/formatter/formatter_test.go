package formatter

import (
	"encoding/csv"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	tu "github.com/Nox008/Movie-Search-App/internal/testing"
)

func fixtures() []models.Bookmark {
	return []models.Bookmark{
		{
			MovieID:      "tt1375666",
			Title:        "Inception",
			Year:         "2010",
			Genre:        "Action, Sci-Fi",
			ImdbRating:   "8.8",
			BookmarkedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			MovieID:    "tt0468569",
			Title:      "The Dark Knight",
			Year:       "2008",
			ImdbRating: "N/A",
		},
	}
}

func TestExportToCSV(t *testing.T) {
	data, err := ExportToCSV(fixtures())
	if err != nil {
		t.Fatalf("failed to export CSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d", len(records))
	}
	if records[0][0] != "MovieID" {
		t.Errorf("expected MovieID header, got %s", records[0][0])
	}
	if records[1][1] != "Inception" {
		t.Errorf("expected Inception in first row, got %s", records[1][1])
	}
	if records[1][6] != "2026-08-01T12:00:00Z" {
		t.Errorf("expected RFC3339 timestamp, got %s", records[1][6])
	}
}

func TestExportToMarkdown(t *testing.T) {
	data, err := ExportToMarkdown("Jane", fixtures())
	if err != nil {
		t.Fatalf("failed to export Markdown: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "# Jane's Bookmarks") {
		t.Error("expected owner heading")
	}
	if !strings.Contains(text, "**Inception** (2010)") {
		t.Error("expected bold title entry")
	}
	if !strings.Contains(text, "8.8") {
		t.Error("expected rating for rated movies")
	}
	if strings.Contains(text, "N/A") {
		t.Error("N/A ratings should be omitted")
	}
}

func TestExportToText(t *testing.T) {
	data, err := ExportToText(fixtures())
	if err != nil {
		t.Fatalf("failed to export text: %v", err)
	}

	text := string(data)
	if !strings.Contains(text, "Bookmarks: 2") {
		t.Error("expected bookmark count")
	}
	if !strings.Contains(text, "1. Inception (2010)") {
		t.Error("expected numbered entries")
	}
}

func TestWriteExport(t *testing.T) {
	t.Run("Writes Each Format", func(t *testing.T) {
		dir := t.TempDir()

		for _, format := range []string{"csv", "markdown", "text"} {
			path := filepath.Join(dir, "out."+format)
			got, err := WriteExport("Jane", fixtures(), format, path)
			if err != nil {
				t.Fatalf("failed to export %s: %v", format, err)
			}
			if got != path {
				t.Errorf("expected path %s, got %s", path, got)
			}
			tu.AssertFileExists(t, path)
		}
	})

	t.Run("Defaults The Path", func(t *testing.T) {
		t.Chdir(t.TempDir())

		path, err := WriteExport("Jane", fixtures(), "csv", "")
		if err != nil {
			t.Fatalf("failed to export: %v", err)
		}
		if path != "bookmarks.csv" {
			t.Errorf("expected default path bookmarks.csv, got %s", path)
		}
		tu.AssertFileExists(t, path)
	})

	t.Run("Rejects Unknown Formats", func(t *testing.T) {
		if _, err := WriteExport("Jane", fixtures(), "yaml", ""); err == nil {
			t.Error("expected error for unsupported format")
		}
	})
}
