// Package bookmarks persists which events the user has bookmarked.
//
// Bookmark state is consulted only to choose a visual badge on a rendered
// callout; it never affects placement geometry. The store is keyed by event
// ID, the one identity that survives across placement passes.
package bookmarks

import "context"

// Store is the persistence boundary for bookmark state.
type Store interface {
	// IsBookmarked reports whether the event is bookmarked.
	IsBookmarked(ctx context.Context, id string) (bool, error)

	// Set records the bookmark state for an event.
	Set(ctx context.Context, id string, bookmarked bool) error

	// Toggle flips the bookmark state and returns the new value.
	Toggle(ctx context.Context, id string) (bool, error)

	// All returns the set of bookmarked event IDs.
	All(ctx context.Context) (map[string]bool, error)

	// Close releases any underlying resources.
	Close() error
}
