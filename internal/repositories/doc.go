// Package repositories provides the local SQLite persistence layer.
//
// The client keeps two kinds of local state: a write-through cache of movie
// detail fetches (so a recently viewed title renders without a provider
// round-trip) and a history of recent searches. Neither is authoritative;
// both can be dropped and rebuilt at any time.
package repositories
