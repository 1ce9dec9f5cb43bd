// Package services contains the HTTP gateways to the two external
// collaborators: the movie metadata provider (OMDb) and the backend
// auth/bookmarks/profile service.
//
// Gateways are transport only. They never persist credentials; on a
// successful login the caller saves the returned pair through the session
// store, and a 401-equivalent response surfaces as
// [shared.ErrNotAuthenticated] for the caller to translate into a session
// invalidation.
package services
