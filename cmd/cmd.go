// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles authentication operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Sign in with email/password or an OAuth provider",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "email",
						Aliases: []string{"e"},
						Usage:   "Account email",
					},
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password",
					},
					&cli.StringFlag{
						Name:  "provider",
						Usage: "Sign in via OAuth provider (github or google)",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "signup",
				Usage: "Create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "name",
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password (6 characters minimum)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "confirm-password",
						Usage:    "Repeat the password",
						Required: true,
					},
				},
				Action: r.AuthSignup,
			},
			{
				Name:   "logout",
				Usage:  "Clear the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:   "status",
				Usage:  "Show session state and verify the token with the server",
				Action: r.AuthStatus,
			},
			{
				Name:  "whoami",
				Usage: "Print the signed-in user",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// searchCommand queries the movie provider
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Search for movies by title",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of results to print",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
			},
		},
		Action: r.Search,
	}
}

// movieCommand fetches a single movie record
func movieCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "movie",
		Aliases: []string{"m"},
		Usage:   "Show full details for a movie ID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Movie,
	}
}

// bookmarkCommand handles the user's saved movies
func bookmarkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "bookmark",
		Aliases: []string{"bm"},
		Usage:   "Manage bookmarked movies",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List bookmarks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "filter",
						Usage: "Filter by title or genre substring",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort order (newest, oldest, title, rating)",
						Value: "newest",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.BookmarkList,
			},
			{
				Name:  "add",
				Usage: "Bookmark a movie by ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.BookmarkAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Remove a bookmark by movie ID",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.BookmarkRemove,
			},
			{
				Name:  "check",
				Usage: "Check whether a movie is bookmarked",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Action: r.BookmarkCheck,
			},
			{
				Name:  "export",
				Usage: "Export bookmarks to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, markdown, text)",
						Value: "csv",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.BookmarkExport,
			},
		},
	}
}

// profileCommand reads and mutates the user's profile
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Manage your account profile",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Fetch and print the profile",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.ProfileShow,
			},
			{
				Name:  "update",
				Usage: "Update name or email",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "name",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "New email address",
					},
				},
				Action: r.ProfileUpdate,
			},
			{
				Name:  "password",
				Usage: "Change the account password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "current",
						Usage:    "Current password",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "new",
						Usage:    "New password (6 characters minimum)",
						Required: true,
					},
				},
				Action: r.ProfilePassword,
			},
		},
	}
}

// historyCommand reads the local search history
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "history",
		Usage: "Local search history",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "Show recent searches",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:   "clear",
				Usage:  "Delete all recorded searches",
				Action: r.HistoryClear,
			},
		},
	}
}

// setupCommand handles setup operations for configuration and the database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive browsing.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for search and bookmarks",
		Action:  r.TUI,
	}
}
