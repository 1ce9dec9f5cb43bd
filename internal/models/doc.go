// Package models defines the data model for the movie search client.
//
// Movie summaries and details are read-only projections of the metadata
// provider's responses and are never owned by this system. Bookmarks and the
// user summary mirror the backend service's records.
package models
