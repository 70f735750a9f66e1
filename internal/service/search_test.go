package service

import (
	"context"
	"testing"
	"time"

	"github.com/gifdex/gifdex/internal/domain"
	"github.com/gifdex/gifdex/internal/history"
	"github.com/gifdex/gifdex/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo serves canned results per tag. Tags registered with Block are
// held until released, so tests can control completion order of
// overlapping requests.
type fakeRepo struct {
	results map[string][]domain.Gif
	errs    map[string]error

	called  chan string        // receives each tag as its request starts
	release map[string]chan struct{}
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		results: make(map[string][]domain.Gif),
		errs:    make(map[string]error),
		called:  make(chan string, 16),
		release: make(map[string]chan struct{}),
	}
}

func (r *fakeRepo) Block(tag string) chan struct{} {
	ch := make(chan struct{})
	r.release[tag] = ch
	return ch
}

func (r *fakeRepo) Search(ctx context.Context, tag string, limit int) ([]domain.Gif, error) {
	r.called <- tag
	if ch, ok := r.release[tag]; ok {
		<-ch
	}
	if err := r.errs[tag]; err != nil {
		return nil, err
	}
	return r.results[tag], nil
}

// chanObserver collects search updates for assertions.
type chanObserver struct {
	updates chan domain.SearchUpdate
}

func newChanObserver() *chanObserver {
	return &chanObserver{updates: make(chan domain.SearchUpdate, 16)}
}

func (o *chanObserver) OnSearch(u domain.SearchUpdate) { o.updates <- u }

func (o *chanObserver) next(t *testing.T) domain.SearchUpdate {
	t.Helper()
	select {
	case u := <-o.updates:
		return u
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search update")
		return domain.SearchUpdate{}
	}
}

func gifs(ids ...string) []domain.Gif {
	out := make([]domain.Gif, len(ids))
	for i, id := range ids {
		out[i] = domain.Gif{ID: id, Title: id}
	}
	return out
}

func newService(t *testing.T, repo domain.SearchRepository) (*SearchService, *history.History) {
	t.Helper()
	ts, err := store.NewTagStore("")
	require.NoError(t, err)
	hist := history.New(ts, 10, nil)
	return NewSearchService(repo, hist, 10, nil), hist
}

func TestSearchTag_EmptyTagIsRejected(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newService(t, repo)

	err := svc.SearchTag(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrEmptyTag)

	// No network call, no history mutation
	assert.Empty(t, repo.called)
	assert.Empty(t, svc.TagsHistory())
}

func TestSearchTag_WhitespaceOnlyIsSearched(t *testing.T) {
	repo := newFakeRepo()
	repo.results["   "] = gifs("a")
	svc, _ := newService(t, repo)

	require.NoError(t, svc.SearchTag(context.Background(), "   "))

	assert.Equal(t, "   ", <-repo.called)
	assert.Equal(t, gifs("a"), svc.Results())
}

func TestSearchTag_RecordsLowercasedTag(t *testing.T) {
	repo := newFakeRepo()
	repo.results["Cats"] = gifs("a")
	svc, _ := newService(t, repo)

	require.NoError(t, svc.SearchTag(context.Background(), "Cats"))

	assert.Equal(t, []string{"cats"}, svc.TagsHistory())
	assert.Equal(t, "Cats", svc.LastQuery())
}

func TestSearchTag_ReplacesResultsWholesale(t *testing.T) {
	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1", "c2")
	repo.results["dogs"] = gifs("d1")
	svc, _ := newService(t, repo)

	require.NoError(t, svc.SearchTag(context.Background(), "cats"))
	require.NoError(t, svc.SearchTag(context.Background(), "dogs"))

	assert.Equal(t, gifs("d1"), svc.Results())
}

func TestSearchTag_FailureKeepsResultsAndNotifies(t *testing.T) {
	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1")
	repo.errs["dogs"] = domain.ErrServerOffline
	svc, _ := newService(t, repo)
	obs := newChanObserver()
	svc.SetObserver(obs)

	require.NoError(t, svc.SearchTag(context.Background(), "cats"))
	obs.next(t)

	err := svc.SearchTag(context.Background(), "dogs")
	assert.ErrorIs(t, err, domain.ErrServerOffline)

	update := obs.next(t)
	assert.Equal(t, "dogs", update.Query)
	assert.ErrorIs(t, update.Err, domain.ErrServerOffline)

	// Result list stays on the last successful search
	assert.Equal(t, gifs("c1"), svc.Results())
	// The failed tag is still recorded; history mutates before the request
	assert.Equal(t, []string{"dogs", "cats"}, svc.TagsHistory())
}

func TestSearchTag_StaleResponseIsDropped(t *testing.T) {
	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1")
	repo.results["dogs"] = gifs("d1")
	releaseCats := repo.Block("cats")
	releaseDogs := repo.Block("dogs")

	svc, _ := newService(t, repo)
	obs := newChanObserver()
	svc.SetObserver(obs)

	done := make(chan error, 2)
	go func() { done <- svc.SearchTag(context.Background(), "cats") }()
	require.Equal(t, "cats", <-repo.called) // cats holds the earlier sequence

	go func() { done <- svc.SearchTag(context.Background(), "dogs") }()
	require.Equal(t, "dogs", <-repo.called)

	// Newer request completes first
	close(releaseDogs)
	update := obs.next(t)
	assert.Equal(t, "dogs", update.Query)
	assert.False(t, update.Stale)

	// Older response arrives late and must not overwrite
	close(releaseCats)
	update = obs.next(t)
	assert.Equal(t, "cats", update.Query)
	assert.True(t, update.Stale)

	require.NoError(t, <-done)
	require.NoError(t, <-done)

	assert.Equal(t, gifs("d1"), svc.Results())
	assert.Equal(t, "dogs", svc.LastQuery())
}

func TestSearchTag_InOrderCompletionAppliesBoth(t *testing.T) {
	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1")
	repo.results["dogs"] = gifs("d1")
	releaseCats := repo.Block("cats")
	releaseDogs := repo.Block("dogs")

	svc, _ := newService(t, repo)
	obs := newChanObserver()
	svc.SetObserver(obs)

	done := make(chan error, 2)
	go func() { done <- svc.SearchTag(context.Background(), "cats") }()
	require.Equal(t, "cats", <-repo.called)
	go func() { done <- svc.SearchTag(context.Background(), "dogs") }()
	require.Equal(t, "dogs", <-repo.called)

	close(releaseCats)
	update := obs.next(t)
	assert.Equal(t, "cats", update.Query)
	assert.False(t, update.Stale)

	close(releaseDogs)
	update = obs.next(t)
	assert.Equal(t, "dogs", update.Query)
	assert.False(t, update.Stale)

	require.NoError(t, <-done)
	require.NoError(t, <-done)

	assert.Equal(t, gifs("d1"), svc.Results())
}

func TestReplayAfterLoad_SearchesMostRecentTag(t *testing.T) {
	ts, err := store.NewTagStore("")
	require.NoError(t, err)
	require.NoError(t, ts.SaveTags([]string{"cats", "dogs"}))

	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1", "c2")

	hist := history.New(ts, 10, nil)
	require.NoError(t, hist.Load())
	svc := NewSearchService(repo, hist, 10, nil)

	// Replay is an explicit second step, performed by the caller
	last, ok := hist.Last()
	require.True(t, ok)
	require.Equal(t, "cats", last)
	require.NoError(t, svc.SearchTag(context.Background(), last))

	assert.Equal(t, gifs("c1", "c2"), svc.Results())
	assert.Equal(t, []string{"cats", "dogs"}, svc.TagsHistory())
}

func TestClearAndRemovePassThrough(t *testing.T) {
	repo := newFakeRepo()
	repo.results["cats"] = gifs("c1")
	repo.results["dogs"] = gifs("d1")
	svc, _ := newService(t, repo)

	require.NoError(t, svc.SearchTag(context.Background(), "cats"))
	require.NoError(t, svc.SearchTag(context.Background(), "dogs"))

	require.NoError(t, svc.RemoveTagFromHistory("CATS"))
	assert.Equal(t, []string{"dogs"}, svc.TagsHistory())

	require.NoError(t, svc.ClearHistory())
	assert.Empty(t, svc.TagsHistory())
}

func TestRankResults_PrefersCloserTitles(t *testing.T) {
	items := []domain.Gif{
		{ID: "1", Title: "Dancing Banana"},
		{ID: "2", Title: "cats"},
		{ID: "3", Title: "cats compilation"},
		{ID: "4", Title: "my cats at home"},
	}

	ranked := rankResults(items, "Cats")

	assert.Equal(t, "2", ranked[0].ID) // exact
	assert.Equal(t, "3", ranked[1].ID) // prefix
	assert.Equal(t, "4", ranked[2].ID) // contains
	assert.Equal(t, "1", ranked[3].ID) // fuzzy
}
