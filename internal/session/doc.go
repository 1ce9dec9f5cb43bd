// Package session owns the client's authentication state.
//
// A [FileStore] persists the bearer token and the cached user summary as one
// canonical key pair under the state directory. A single [Session] wraps the
// store as the process-wide owner of "which user, if any, is logged in":
// views subscribe to it and are notified synchronously on login, logout, and
// profile updates instead of re-reading storage independently.
//
// Token expiry claims are inspected only through [DecodeClaims]; a token that
// fails to decode is treated as absent, never surfaced as an error.
package session
