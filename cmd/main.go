package main

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/Nox008/Movie-Search-App/internal/services"
	"github.com/Nox008/Movie-Search-App/internal/session"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}

	store, err := session.NewFileStore("")
	if err != nil {
		logger.Fatalf("failed to open session store: %v", err)
	}
	sess := session.New(store)

	var movieService services.MovieService
	if svc, err := services.NewOMDbService(config.API.Key, config.API.BaseURL, config.API.Rate, nil); err == nil {
		movieService = svc
	} else {
		logger.Debug("movie provider not configured", "error", err)
	}

	backend := services.NewBackendService(config.Backend.BaseURL, sess, nil)

	runner := NewRunner(RunnerOpts{
		Config:    config,
		Movies:    movieService,
		Auth:      backend,
		Profile:   backend,
		Bookmarks: backend,
		Session:   sess,
		DB:        openDatabase(config, logger),
		Logger:    logger,
	})

	app := &cli.Command{
		Name:    "mvx",
		Usage:   "Search movies and manage your bookmarks from the terminal",
		Version: "0.3.0",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if cmd.Bool("verbose") {
				shared.SetLogLevel(logger, log.DebugLevel)
			}
			return ctx, nil
		},
		Commands: runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		err_ := errors.Unwrap(err)
		if errors.Is(err_, shared.ErrNotImplemented) {
			logger.Warn("not implemented")
			os.Exit(0)
		} else {
			logger.Fatalf("application error: %v", err)
		}
	}
}
