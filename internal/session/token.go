package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Claims holds the subset of JWT payload claims the client inspects.
//
// The token is otherwise opaque; nothing is verified client-side.
type Claims struct {
	Subject   string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token carried an expiry claim that has passed.
// Tokens without an exp claim never expire client-side.
func (c *Claims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && c.ExpiresAt.Before(now)
}

// DecodeClaims decodes the payload segment of a JWT without verification.
//
// Returns an error for anything that is not a three-segment token with a
// base64url JSON payload. Callers treat a failed decode as "no token".
func DecodeClaims(token string) (*Claims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, fmt.Errorf("malformed token: expected 3 segments, got %d", len(parts))
	}

	payload, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(parts[1], "="))
	if err != nil {
		return nil, fmt.Errorf("malformed token payload: %w", err)
	}

	var raw struct {
		Sub   string `json:"sub"`
		Email string `json:"email"`
		Iat   int64  `json:"iat"`
		Exp   int64  `json:"exp"`
	}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("malformed token payload: %w", err)
	}

	claims := &Claims{Subject: raw.Sub, Email: raw.Email}
	if raw.Iat > 0 {
		claims.IssuedAt = time.Unix(raw.Iat, 0)
	}
	if raw.Exp > 0 {
		claims.ExpiresAt = time.Unix(raw.Exp, 0)
	}

	return claims, nil
}
