package models

import (
	"regexp"
	"strings"
)

// AuthMode selects between the login and signup validation rules.
type AuthMode int

const (
	ModeLogin AuthMode = iota
	ModeSignup
)

// AuthForm is a candidate login/signup submission.
type AuthForm struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// MinPasswordLength is the shortest password the client will submit.
const MinPasswordLength = 6

// ValidEmail reports whether s looks like an email address. The check is the
// permissive anything@anything.anything shape, not a full RFC parse.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// Validate checks the form against the given mode and returns a map from
// field name to error message. An empty map means the form is valid.
//
// Validation is advisory only; the server remains the final authority and may
// reject inputs the client accepted (e.g. a duplicate email).
func (f AuthForm) Validate(mode AuthMode) map[string]string {
	errs := map[string]string{}

	if mode == ModeSignup && strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Name is required"
	}

	if strings.TrimSpace(f.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailPattern.MatchString(f.Email) {
		errs["email"] = "Email is invalid"
	}

	if f.Password == "" {
		errs["password"] = "Password is required"
	} else if len(f.Password) < MinPasswordLength {
		errs["password"] = "Password must be at least 6 characters"
	}

	if mode == ModeSignup && f.Password != f.ConfirmPassword {
		errs["confirmPassword"] = "Passwords do not match"
	}

	return errs
}
