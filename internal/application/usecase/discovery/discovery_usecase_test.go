package discovery

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradehub-app/tradehub/internal/domain/listing"
	"github.com/tradehub-app/tradehub/internal/domain/stats"
	"github.com/tradehub-app/tradehub/pkg/apperror"
	"github.com/tradehub-app/tradehub/pkg/logger"
)

type fakeListingRepo struct {
	rows []listing.Row
	err  error

	listCities  []string
	searchCalls []searchCall
}

type searchCall struct {
	query string
	city  string
}

func (f *fakeListingRepo) ListActive(_ context.Context, city string) ([]listing.Row, error) {
	f.listCities = append(f.listCities, city)
	return f.rows, f.err
}

func (f *fakeListingRepo) SearchActive(_ context.Context, query, city string) ([]listing.Row, error) {
	f.searchCalls = append(f.searchCalls, searchCall{query: query, city: city})
	return f.rows, f.err
}

type fakePublisher struct {
	events []stats.DiscoveryEvent
	err    error
}

func (f *fakePublisher) PublishDiscoveryEvent(_ context.Context, event stats.DiscoveryEvent) error {
	f.events = append(f.events, event)
	return f.err
}

func strPtr(s string) *string { return &s }

func newUseCase(repo *fakeListingRepo, pub *fakePublisher) *DiscoveryUseCase {
	var p stats.Publisher
	if pub != nil {
		p = pub
	}
	return NewDiscoveryUseCase(repo, p, logger.NewNop(), 0)
}

func TestBrowse_CityFilterFallback(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}}}
	uc := newUseCase(repo, nil)

	unfiltered, err := uc.Browse(context.Background(), "")
	require.NoError(t, err)

	whitespace, err := uc.Browse(context.Background(), "   ")
	require.NoError(t, err)

	assert.Equal(t, unfiltered, whitespace)
	assert.Equal(t, []string{"", ""}, repo.listCities)
}

func TestBrowse_EndToEndScenario(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{
		{ID: 1, Title: "A", City: strPtr("Beijing"), Tags: strPtr("x,y")},
		{ID: 2, Title: "B", City: strPtr("Beijing-Haidian"), Tags: strPtr("")},
	}}
	uc := newUseCase(repo, nil)

	items, err := uc.Browse(context.Background(), "Beijing")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, []string{"Beijing"}, repo.listCities)

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, "Beijing", items[0].City)
	assert.Equal(t, []string{"x", "y"}, items[0].Tags)
	assert.Equal(t, int64(120), items[0].Score)

	assert.Equal(t, int64(2), items[1].ID)
	assert.Equal(t, "Beijing-Haidian", items[1].City)
	assert.False(t, items[1].HasTags)
	assert.Equal(t, int64(115), items[1].Score)
}

func TestBrowse_StoreUnavailable(t *testing.T) {
	repo := &fakeListingRepo{err: errors.New("connection refused")}
	uc := newUseCase(repo, nil)

	items, err := uc.Browse(context.Background(), "")
	assert.Nil(t, items)
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
}

func TestBrowse_NeverNilOnSuccess(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{}}
	uc := newUseCase(repo, nil)

	items, err := uc.Browse(context.Background(), "")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearch_EmptyQueryShortCircuits(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}}}
	pub := &fakePublisher{}
	uc := newUseCase(repo, pub)

	for _, q := range []string{"", "   ", "\t\n"} {
		items, err := uc.Search(context.Background(), q, "anything")
		require.NoError(t, err)
		assert.Empty(t, items)
	}

	assert.Empty(t, repo.searchCalls, "store must not be touched")
	assert.Empty(t, pub.events)
}

func TestSearch_SanitizesBeforeStore(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{}}
	uc := newUseCase(repo, nil)

	_, err := uc.Search(context.Background(), "  café日本 camera  ", "")
	require.NoError(t, err)

	require.Len(t, repo.searchCalls, 1)
	assert.Equal(t, "caf camera", repo.searchCalls[0].query)
}

func TestSearch_StoreUnavailableLeavesNoEvent(t *testing.T) {
	repo := &fakeListingRepo{err: errors.New("boom")}
	pub := &fakePublisher{}
	uc := newUseCase(repo, pub)

	_, err := uc.Search(context.Background(), "camera", "")
	assert.ErrorIs(t, err, apperror.ErrStoreUnavailable)
	assert.Empty(t, pub.events)
}

func TestSearch_PublishesDiscoveryEvent(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}}}
	pub := &fakePublisher{}
	uc := newUseCase(repo, pub)

	items, err := uc.Search(context.Background(), "camera", "上海")
	require.NoError(t, err)
	require.Len(t, items, 2)

	require.Len(t, pub.events, 1)
	evt := pub.events[0]
	assert.Equal(t, stats.EventSearch, evt.Kind)
	assert.Equal(t, "camera", evt.Query)
	assert.Equal(t, "上海", evt.City)
	assert.Equal(t, 2, evt.Results)
	assert.NotZero(t, evt.EventID)
	assert.False(t, evt.OccurredAt.IsZero())
}

func TestSearch_PublishFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}}}
	pub := &fakePublisher{err: errors.New("broker down")}
	uc := newUseCase(repo, pub)

	items, err := uc.Search(context.Background(), "camera", "")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestFilterByCity_EmptyReturnsEmpty(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}}}
	uc := newUseCase(repo, nil)

	for _, city := range []string{"", "   "} {
		items, err := uc.FilterByCity(context.Background(), city)
		require.NoError(t, err)
		assert.Empty(t, items)
	}
	assert.Empty(t, repo.listCities, "store must not be touched")
}

func TestFilterByCity_PublishesEvent(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{{ID: 1, Title: "A"}}}
	pub := &fakePublisher{}
	uc := newUseCase(repo, pub)

	items, err := uc.FilterByCity(context.Background(), "上海")
	require.NoError(t, err)
	assert.Len(t, items, 1)

	require.Len(t, pub.events, 1)
	assert.Equal(t, stats.EventCityFilter, pub.events[0].Kind)
	assert.Equal(t, "上海", pub.events[0].City)
}

func TestProject_SkipsMalformedRows(t *testing.T) {
	repo := &fakeListingRepo{rows: []listing.Row{
		{ID: 1, Title: "A"},
		{ID: 0, Title: "missing id"},
		{ID: 3, Title: ""},
		{ID: 4, Title: "D"},
	}}
	uc := newUseCase(repo, nil)

	items, err := uc.Browse(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(4), items[1].ID)

	// positions (and scores) follow the surviving sequence
	assert.Equal(t, int64(120), items[0].Score)
	assert.Equal(t, int64(115), items[1].Score)
}
