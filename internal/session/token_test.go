package session

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"
)

// makeToken builds an unsigned JWT-shaped token with the given payload claims.
func makeToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("failed to marshal claims: %v", err)
	}
	body := base64.RawURLEncoding.EncodeToString(payload)

	return header + "." + body + ".signature"
}

func TestDecodeClaims(t *testing.T) {
	t.Run("Full Payload", func(t *testing.T) {
		now := time.Now().Unix()
		token := makeToken(t, map[string]any{
			"sub":   "user-1",
			"email": "jane@example.com",
			"iat":   now,
			"exp":   now + 3600,
		})

		claims, err := DecodeClaims(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.Subject != "user-1" {
			t.Errorf("expected subject user-1, got %s", claims.Subject)
		}
		if claims.Email != "jane@example.com" {
			t.Errorf("expected email jane@example.com, got %s", claims.Email)
		}
		if claims.Expired(time.Now()) {
			t.Error("token should not be expired")
		}
	})

	t.Run("Expired Token", func(t *testing.T) {
		token := makeToken(t, map[string]any{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		claims, err := DecodeClaims(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if !claims.Expired(time.Now()) {
			t.Error("token should be expired")
		}
	})

	t.Run("No Expiry Claim", func(t *testing.T) {
		token := makeToken(t, map[string]any{"sub": "user-1"})

		claims, err := DecodeClaims(token)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if claims.Expired(time.Now()) {
			t.Error("token without exp should never expire client-side")
		}
	})

	t.Run("Wrong Segment Count", func(t *testing.T) {
		if _, err := DecodeClaims("only.two"); err == nil {
			t.Error("expected error for two-segment token")
		}
		if _, err := DecodeClaims("not-a-token"); err == nil {
			t.Error("expected error for opaque string")
		}
	})

	t.Run("Garbage Payload", func(t *testing.T) {
		if _, err := DecodeClaims("aaa.!!!.ccc"); err == nil {
			t.Error("expected error for non-base64 payload")
		}

		garbage := base64.RawURLEncoding.EncodeToString([]byte("not json"))
		if _, err := DecodeClaims("aaa." + garbage + ".ccc"); err == nil {
			t.Error("expected error for non-JSON payload")
		}
	})
}
