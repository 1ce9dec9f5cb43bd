package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/Nox008/Movie-Search-App/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for movie search and bookmarks.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.movies == nil {
		return fmt.Errorf("%w: set api.key in config.toml", shared.ErrMissingAPIKey)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	stateDir, err := shared.StateDir()
	if err != nil {
		return err
	}
	fileLogger, err := shared.NewFileLogger(filepath.Join(stateDir, "mvx-tui.log"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(shared.WithLogger(fileLogger, "component", "tui"))

	model := ui.NewModel(ctx, r.movies, r.auth, r.bookmarks, r.sess)
	p := tea.NewProgram(model)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
