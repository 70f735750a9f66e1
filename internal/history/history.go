// Package history maintains the bounded, recency-ordered list of search
// tags. Tags are lowercase, unique, most-recent-first, and mirrored to the
// tag store after every mutation.
package history

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/gifdex/gifdex/internal/domain"
)

// DefaultMaxEntries is the history cap used when none is configured.
const DefaultMaxEntries = 10

// History is the in-memory tag list backed by a domain.TagStore.
type History struct {
	store  domain.TagStore
	logger *slog.Logger
	max    int

	mu   sync.Mutex
	tags []string
}

// New creates a history bound to the given store. If max is 0 or negative,
// DefaultMaxEntries is used.
func New(store domain.TagStore, max int, logger *slog.Logger) *History {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &History{
		store:  store,
		logger: logger,
		max:    max,
	}
}

// Load replaces the in-memory list with the persisted one. A malformed
// record resets the history to empty with a warning instead of failing;
// loading never triggers any other side effect.
func (h *History) Load() error {
	tags, err := h.store.LoadTags()
	if err != nil {
		h.logger.Warn("resetting malformed tag history", "error", err)
		h.mu.Lock()
		h.tags = nil
		h.mu.Unlock()
		return h.store.SaveTags(nil)
	}

	if len(tags) > h.max {
		tags = tags[:h.max]
	}

	h.mu.Lock()
	h.tags = tags
	h.mu.Unlock()
	return nil
}

// Record inserts the lowercased tag at the front, removing any existing
// occurrence and evicting beyond the cap, then persists the sequence.
func (h *History) Record(tag string) error {
	tag = strings.ToLower(tag)

	h.mu.Lock()
	next := make([]string, 0, len(h.tags)+1)
	next = append(next, tag)
	for _, t := range h.tags {
		if t != tag {
			next = append(next, t)
		}
	}
	if len(next) > h.max {
		next = next[:h.max]
	}
	h.tags = next
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	return h.store.SaveTags(snapshot)
}

// Remove filters out the tag and persists the result. Lookup is
// case-insensitive, matching Record's normalization.
func (h *History) Remove(tag string) error {
	tag = strings.ToLower(tag)

	h.mu.Lock()
	next := h.tags[:0]
	for _, t := range h.tags {
		if t != tag {
			next = append(next, t)
		}
	}
	h.tags = next
	snapshot := h.snapshotLocked()
	h.mu.Unlock()

	return h.store.SaveTags(snapshot)
}

// Clear empties the list and persists the empty state.
func (h *History) Clear() error {
	h.mu.Lock()
	h.tags = nil
	h.mu.Unlock()

	return h.store.SaveTags(nil)
}

// Tags returns an independent copy of the sequence, most recent first.
func (h *History) Tags() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.snapshotLocked()
}

// Last returns the most recently recorded tag, if any.
func (h *History) Last() (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.tags) == 0 {
		return "", false
	}
	return h.tags[0], true
}

// Len returns the number of tags in the history.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.tags)
}

func (h *History) snapshotLocked() []string {
	out := make([]string, len(h.tags))
	copy(out, h.tags)
	return out
}
