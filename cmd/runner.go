package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/Nox008/Movie-Search-App/internal/repositories"
	"github.com/Nox008/Movie-Search-App/internal/services"
	"github.com/Nox008/Movie-Search-App/internal/session"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	movies     services.MovieService
	auth       services.AuthService
	profile    services.ProfileService
	bookmarks  services.BookmarkService
	sess       *session.Session
	db         *sql.DB
	cache      *repositories.MovieCacheRepository
	history    *repositories.SearchHistoryRepository
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Movies     services.MovieService
	Auth       services.AuthService
	Profile    services.ProfileService
	Bookmarks  services.BookmarkService
	Session    *session.Session
	DB         *sql.DB
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	r := &Runner{
		config:     opts.Config,
		movies:     opts.Movies,
		auth:       opts.Auth,
		profile:    opts.Profile,
		bookmarks:  opts.Bookmarks,
		sess:       opts.Session,
		db:         opts.DB,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}

	if opts.DB != nil {
		r.cache = repositories.NewMovieCacheRepository(opts.DB)
		r.history = repositories.NewSearchHistoryRepository(opts.DB)
	}

	return r
}

// SetLogger replaces the runner's logger.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		authCommand, searchCommand, movieCommand, bookmarkCommand, profileCommand, historyCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// userMessage maps a gateway error to its user-facing message.
func userMessage(err error) string {
	return services.UserMessage(err)
}

// requireSession returns an error when no user is signed in. Commands that
// talk to the bookmark or profile endpoints call this before doing anything.
func (r *Runner) requireSession() error {
	if r.sess == nil {
		return shared.ErrNoSession
	}
	if _, ok := r.sess.User(); !ok {
		return fmt.Errorf("%w: run 'mvx auth login' first", shared.ErrNoSession)
	}
	return nil
}

// handleAuthError invalidates the session on a 401-equivalent response and
// rewrites the error into a sign-in hint.
func (r *Runner) handleAuthError(err error) error {
	if err == nil {
		return nil
	}
	if r.sess != nil && r.sess.HandleAuthError(err) {
		return fmt.Errorf("%w: session expired, run 'mvx auth login' again", shared.ErrNotAuthenticated)
	}
	return err
}
