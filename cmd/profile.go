package main

import (
	"context"
	"fmt"

	"github.com/Nox008/Movie-Search-App/internal/models"
	"github.com/Nox008/Movie-Search-App/internal/shared"
	"github.com/urfave/cli/v3"
)

// ProfileShow fetches and prints the authenticated user's profile from the
// backend, refreshing the cached session user on the way.
func (r *Runner) ProfileShow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	user, err := r.profile.Profile(ctx)
	if err != nil {
		return r.handleAuthError(err)
	}

	if err := r.sess.SetUser(*user); err != nil {
		r.logger.Debug("failed to refresh cached user", "error", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlainHeader("Profile")
	r.writePlain("Name:  %s\n", user.Name)
	r.writePlain("Email: %s\n", user.Email)
	if !user.CreatedAt.IsZero() {
		r.writePlain("Since: %s\n", user.CreatedAt.Format("Jan 2, 2006"))
	}
	return nil
}

// ProfileUpdate changes the user's name or email. The stored session user is
// replaced with the server's copy on success.
func (r *Runner) ProfileUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	name := cmd.String("name")
	email := cmd.String("email")

	if name == "" && email == "" {
		return fmt.Errorf("%w: provide --name or --email", shared.ErrMissingArgument)
	}

	current, _ := r.sess.User()
	if name == "" {
		name = current.Name
	}
	if email == "" {
		email = current.Email
	}

	if !models.ValidEmail(email) {
		return fmt.Errorf("%w: email is invalid", shared.ErrInvalidInput)
	}

	user, err := r.profile.UpdateProfile(ctx, name, email)
	if err != nil {
		if handled := r.handleAuthError(err); handled != err {
			return handled
		}
		return fmt.Errorf("failed to update profile: %s", userMessage(err))
	}

	if err := r.sess.SetUser(*user); err != nil {
		r.logger.Warn("profile updated but session cache is stale", "error", err)
	}

	r.writePlain("✓ Profile updated\n")
	r.writePlain("Name:  %s\n", user.Name)
	r.writePlain("Email: %s\n", user.Email)
	return nil
}

// ProfilePassword changes the account password. The session stays valid, the
// new password applies to the next sign-in.
func (r *Runner) ProfilePassword(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireSession(); err != nil {
		return err
	}

	current := cmd.String("current")
	next := cmd.String("new")

	if current == "" || next == "" {
		return fmt.Errorf("%w: provide --current and --new", shared.ErrMissingArgument)
	}

	if len(next) < models.MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", shared.ErrInvalidInput, models.MinPasswordLength)
	}

	if err := r.profile.ChangePassword(ctx, current, next); err != nil {
		if handled := r.handleAuthError(err); handled != err {
			return handled
		}
		return fmt.Errorf("failed to change password: %s", userMessage(err))
	}

	r.writePlain("✓ Password changed\n")
	return nil
}
