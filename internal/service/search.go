package service

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/gifdex/gifdex/internal/domain"
	"github.com/gifdex/gifdex/internal/history"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

// SearchService owns the current result list and the tag history. Results
// are replaced wholesale by each completed search; overlapping requests are
// sequenced so a response from a superseded request never overwrites the
// results of a newer one.
type SearchService struct {
	repo    domain.SearchRepository
	history *history.History
	logger  *slog.Logger
	limit   int

	mu         sync.RWMutex
	results    []domain.Gif
	lastQuery  string
	issuedSeq  uint64
	appliedSeq uint64

	obsMu    sync.RWMutex
	observer domain.SearchObserver
}

// NewSearchService creates a new search service.
func NewSearchService(repo domain.SearchRepository, hist *history.History, limit int, logger *slog.Logger) *SearchService {
	if limit <= 0 {
		limit = 10
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchService{
		repo:    repo,
		history: hist,
		logger:  logger,
		limit:   limit,
	}
}

// SetObserver registers the observer notified on every completed search.
func (s *SearchService) SetObserver(obs domain.SearchObserver) {
	s.obsMu.Lock()
	s.observer = obs
	s.obsMu.Unlock()
}

// SearchTag records the tag in history and replaces the result list with
// the API response. A zero-length tag is rejected with domain.ErrEmptyTag
// before any side effect; no trimming is applied, so a whitespace-only tag
// is searched as-is.
//
// The method blocks for the network round trip; callers that need
// fire-and-forget semantics run it from their own goroutine. Each call
// takes a sequence number at issue time, and a response is applied only if
// no response from a newer request has been applied already. Dropped
// responses are still reported to the observer, marked stale.
func (s *SearchService) SearchTag(ctx context.Context, tag string) error {
	if tag == "" {
		return domain.ErrEmptyTag
	}

	if err := s.history.Record(tag); err != nil {
		s.logger.Warn("failed to persist tag history", "tag", tag, "error", err)
	}

	s.mu.Lock()
	s.issuedSeq++
	seq := s.issuedSeq
	s.mu.Unlock()

	s.logger.Debug("searching", "tag", tag, "seq", seq)

	results, err := s.repo.Search(ctx, tag, s.limit)
	if err != nil {
		s.logger.Warn("search failed", "tag", tag, "error", err)
		s.notify(domain.SearchUpdate{Query: tag, Err: err})
		return err
	}

	ranked := rankResults(results, tag)

	applied := s.apply(seq, tag, ranked)
	if !applied {
		s.logger.Debug("dropping stale search response", "tag", tag, "seq", seq)
	}

	s.notify(domain.SearchUpdate{Query: tag, Results: ranked, Stale: !applied})
	return nil
}

// apply installs the results unless a newer request already completed.
func (s *SearchService) apply(seq uint64, tag string, results []domain.Gif) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq <= s.appliedSeq {
		return false
	}

	s.appliedSeq = seq
	s.lastQuery = tag
	s.results = results
	return true
}

// Results returns an independent copy of the current result list.
func (s *SearchService) Results() []domain.Gif {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Gif, len(s.results))
	copy(out, s.results)
	return out
}

// LastQuery returns the tag whose results are currently held.
func (s *SearchService) LastQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastQuery
}

// TagsHistory returns an independent copy of the tag history, most recent first.
func (s *SearchService) TagsHistory() []string {
	return s.history.Tags()
}

// ClearHistory empties the tag history.
func (s *SearchService) ClearHistory() error {
	return s.history.Clear()
}

// RemoveTagFromHistory removes a tag from the history, case-insensitively.
func (s *SearchService) RemoveTagFromHistory(tag string) error {
	return s.history.Remove(tag)
}

func (s *SearchService) notify(update domain.SearchUpdate) {
	s.obsMu.RLock()
	obs := s.observer
	s.obsMu.RUnlock()

	if obs != nil {
		obs.OnSearch(update)
	}
}

// rankResults orders results by relevance to the query while keeping the
// API's order among equally scored items.
func rankResults(gifs []domain.Gif, query string) []domain.Gif {
	if len(gifs) == 0 {
		return gifs
	}

	query = strings.ToLower(query)

	type rankedGif struct {
		gif   domain.Gif
		score int
	}

	ranked := make([]rankedGif, 0, len(gifs))
	for _, g := range gifs {
		ranked = append(ranked, rankedGif{gif: g, score: matchScore(strings.ToLower(g.Title), query)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score < ranked[j].score
	})

	out := make([]domain.Gif, len(ranked))
	for i, r := range ranked {
		out[i] = r.gif
	}
	return out
}

// matchScore scores a title against the query, lower is better.
func matchScore(title, query string) int {
	if title == query {
		return 0
	}
	if strings.HasPrefix(title, query) {
		return 10
	}
	if strings.Contains(title, query) {
		return 50
	}
	return 100 + fuzzy.LevenshteinDistance(query, title)
}
