package domain

import "context"

// SearchRepository abstracts the remote tag-search API.
type SearchRepository interface {
	// Search returns up to limit results for the given tag.
	Search(ctx context.Context, tag string, limit int) ([]Gif, error)
}

// TagStore persists the ordered tag history.
type TagStore interface {
	// LoadTags returns the persisted sequence, oldest-compatible ordering
	// preserved exactly as saved. A missing record yields (nil, nil).
	// A record that cannot be decoded yields ErrMalformedHistory.
	LoadTags() ([]string, error)

	// SaveTags replaces the persisted sequence.
	SaveTags(tags []string) error

	Close() error
}

// SearchObserver receives the outcome of every completed search request,
// including failures and stale (superseded) responses.
type SearchObserver interface {
	OnSearch(update SearchUpdate)
}
