package main

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/server"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
	"golang.org/x/oauth2/google"
)

// AuthLogin signs in with email and password, or with an OAuth provider when
// --provider is set, and persists the session.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	provider := cmd.String("provider")
	if provider != "" {
		return r.authViaProvider(ctx, provider)
	}

	form := models.AuthForm{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	if errs := form.Validate(models.ModeLogin); len(errs) > 0 {
		return r.reportFormErrors(errs)
	}

	r.logger.Info("signing in", "email", form.Email)

	result, err := r.auth.Login(ctx, form.Email, form.Password)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, userMessage(err))
	}

	if err := r.sess.Login(result.Token, result.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlain("✓ Signed in as %s\n", result.User.Email)
	return nil
}

// AuthSignup creates an account and persists the resulting session.
func (r *Runner) AuthSignup(ctx context.Context, cmd *cli.Command) error {
	form := models.AuthForm{
		Name:            cmd.String("name"),
		Email:           cmd.String("email"),
		Password:        cmd.String("password"),
		ConfirmPassword: cmd.String("confirm-password"),
	}

	if errs := form.Validate(models.ModeSignup); len(errs) > 0 {
		return r.reportFormErrors(errs)
	}

	r.logger.Info("creating account", "email", form.Email)

	result, err := r.auth.Signup(ctx, form.Name, form.Email, form.Password, form.ConfirmPassword)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, userMessage(err))
	}

	if err := r.sess.Login(result.Token, result.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlain("✓ Account created, signed in as %s\n", result.User.Email)
	return nil
}

// AuthLogout clears the stored session. Safe when already signed out.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if err := r.sess.Logout(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	r.writePlain("✓ Signed out\n")
	return nil
}

// AuthStatus reports the local session state and, when signed in, asks the
// backend whether the token is still accepted.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	user, ok := r.sess.User()
	if !ok {
		r.writePlain("✗ Not signed in\n")
		return nil
	}

	r.writePlain("✓ Signed in as %s (%s)\n", user.Name, user.Email)

	if err := r.auth.Verify(ctx); err != nil {
		if handled := r.sess.HandleAuthError(err); handled {
			r.writePlain("✗ Session rejected by server, sign in again\n")
			return nil
		}
		r.writePlain("⚠ Could not verify session: %s\n", userMessage(err))
		return nil
	}

	r.writePlain("Token: ✓ Accepted by server\n")
	return nil
}

// AuthWhoami prints the signed-in user.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	user, ok := r.sess.User()
	if !ok {
		return fmt.Errorf("%w: run 'mvx auth login' first", shared.ErrNoSession)
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlain("Name:  %s\n", user.Name)
	r.writePlain("Email: %s\n", user.Email)
	if !user.CreatedAt.IsZero() {
		r.writePlain("Since: %s\n", user.CreatedAt.Format("Jan 2, 2006"))
	}
	return nil
}

// authViaProvider runs the OAuth2 authorization-code flow against the named
// provider, then trades the provider token for a backend session.
func (r *Runner) authViaProvider(ctx context.Context, provider string) error {
	oauthConfig, err := r.providerConfig(provider)
	if err != nil {
		return err
	}

	token, err := r.doOAuth(oauthConfig, provider)
	if err != nil {
		return err
	}

	result, err := r.auth.OAuthLogin(ctx, provider, token.AccessToken)
	if err != nil {
		return fmt.Errorf("%w: %s", shared.ErrAuthFailed, userMessage(err))
	}

	if err := r.sess.Login(result.Token, result.User); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlainln("✓ Authorization successful")
	r.writePlain("✓ Signed in as %s\n", result.User.Email)
	return nil
}

func (r *Runner) providerConfig(provider string) (*oauth2.Config, error) {
	var creds shared.ProviderConfig
	var endpoint oauth2.Endpoint
	var scopes []string

	switch provider {
	case "github":
		creds = r.config.OAuth.GitHub
		endpoint = github.Endpoint
		scopes = []string{"read:user", "user:email"}
	case "google":
		creds = r.config.OAuth.Google
		endpoint = google.Endpoint
		scopes = []string{"openid", "email", "profile"}
	default:
		return nil, fmt.Errorf("%w: unknown provider %q (github or google)", shared.ErrInvalidArgument, provider)
	}

	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, fmt.Errorf("%w: %s client_id and client_secret must be set in config.toml", shared.ErrInvalidArgument, provider)
	}

	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Endpoint:     endpoint,
		Scopes:       scopes,
	}, nil
}

// doOAuth starts a local HTTP server, opens the browser for user
// authorization, and exchanges the auth code for tokens.
func (r *Runner) doOAuth(oauthConfig *oauth2.Config, provider string) (*oauth2.Token, error) {
	state, err := shared.GenerateState()
	if err != nil {
		return nil, fmt.Errorf("failed to generate state token: %w", err)
	}

	redirect, err := url.Parse(oauthConfig.RedirectURL)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid redirect_uri: %v", shared.ErrInvalidConfig, err)
	}

	authURL := oauthConfig.AuthCodeURL(state)
	oauthHandler := server.NewOAuthHandler(oauthConfig, state)
	router := server.NewRouter()
	router.Handler(oauthHandler)

	httpServer := &http.Server{
		Addr:    redirect.Host,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting OAuth server for %s at %v", provider, redirect.Host)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for %s authorization...\n", provider)
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for authorization (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.OAuthResult

	select {
	case result = <-oauthHandler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return nil, fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return nil, fmt.Errorf("%w: authorization timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return nil, fmt.Errorf("authorization failed: %w", result.Error())
	}

	if result.Token == nil {
		return nil, fmt.Errorf("no token received")
	}

	return result.Token, nil
}

func (r *Runner) reportFormErrors(errs map[string]string) error {
	for _, field := range []string{"name", "email", "password", "confirmPassword"} {
		if msg, ok := errs[field]; ok {
			r.writePlain("✗ %s\n", msg)
		}
	}
	return fmt.Errorf("%w: fix the fields above and retry", shared.ErrInvalidInput)
}
