package core

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/internal/iocache"
	"github.com/joycemanzada/mlbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCacheStore for testing (alias for iocache's mock).
type MockCacheStore = iocache.MockCacheStore

// fixedClock pins Now for deterministic TTL checks.
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

var _ contract.Clock = fixedClock{} // Compile-time check

func TestCheckCacheHit_CacheHit(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}
	records := []schema.TeamRecord{{Name: "Houston Astros", RunDifferential: 88, LastTen: "8-2"}}
	data, _ := json.Marshal(records)

	// Valid cache entry: current version, recent timestamp
	mockStore.On("Get", "test-key").Return(data, currentCacheVersion, clock.now.Unix(), nil)

	actual := checkCacheHit[[]schema.TeamRecord](mockStore, clock, time.Hour, "test-key")
	require.NotNil(t, actual)
	assert.Equal(t, "Houston Astros", (*actual)[0].Name)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_VersionMismatch(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}

	// Version mismatch
	mockStore.On("Get", "test-key").Return([]byte("[]"), currentCacheVersion-1, clock.now.Unix(), nil)

	actual := checkCacheHit[[]schema.TeamRecord](mockStore, clock, time.Hour, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_Stale(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}

	// Entry written just past the TTL window
	staleTime := clock.now.Add(-61 * time.Minute).Unix()
	mockStore.On("Get", "test-key").Return([]byte("[]"), currentCacheVersion, staleTime, nil)

	actual := checkCacheHit[[]schema.TeamRecord](mockStore, clock, time.Hour, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_Error(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}

	mockStore.On("Get", "test-key").Return([]byte(nil), 0, int64(0), errors.New("no rows"))

	actual := checkCacheHit[[]schema.TeamRecord](mockStore, clock, time.Hour, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCheckCacheHit_CacheMiss_BadPayload(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}

	mockStore.On("Get", "test-key").Return([]byte("not json"), currentCacheVersion, clock.now.Unix(), nil)

	actual := checkCacheHit[[]schema.TeamRecord](mockStore, clock, time.Hour, "test-key")
	assert.Nil(t, actual)
	mockStore.AssertExpectations(t)
}

func TestCachedFetch_MissComputesAndStores(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}
	records := []schema.TeamRecord{{Name: "Texas Rangers", RunDifferential: 10, LastTen: "5-5"}}

	mockStore.On("Get", "test-key").Return([]byte(nil), 0, int64(0), errors.New("no rows"))
	mockStore.On("Set", "test-key", mock.Anything, currentCacheVersion, clock.now.Unix()).Return(nil)

	fetches := 0
	result, err := cachedFetch(mockStore, clock, time.Hour, "test-key", func() ([]schema.TeamRecord, error) {
		fetches++
		return records, nil
	})

	require.NoError(t, err)
	assert.Equal(t, records, result)
	assert.Equal(t, 1, fetches)
	mockStore.AssertExpectations(t)
}

func TestCachedFetch_HitSkipsFetch(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}
	records := []schema.TeamRecord{{Name: "Seattle Mariners"}}
	data, _ := json.Marshal(records)

	mockStore.On("Get", "test-key").Return(data, currentCacheVersion, clock.now.Unix(), nil)

	result, err := cachedFetch(mockStore, clock, time.Hour, "test-key", func() ([]schema.TeamRecord, error) {
		t.Fatal("fetch should not run on a cache hit")
		return nil, nil
	})

	require.NoError(t, err)
	assert.Equal(t, records, result)
	mockStore.AssertExpectations(t)
}

func TestCachedFetch_FetchErrorNotStored(t *testing.T) {
	mockStore := &MockCacheStore{}
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}

	mockStore.On("Get", "test-key").Return([]byte(nil), 0, int64(0), errors.New("no rows"))

	_, err := cachedFetch(mockStore, clock, time.Hour, "test-key", func() ([]schema.TeamRecord, error) {
		return nil, errors.New("upstream down")
	})

	require.Error(t, err)
	mockStore.AssertExpectations(t)
	mockStore.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCachedFetch_NilStoreFetchesDirectly(t *testing.T) {
	clock := fixedClock{now: time.Unix(1_700_000_000, 0)}
	records := []schema.TeamRecord{{Name: "Chicago Cubs"}}

	result, err := cachedFetch(nil, clock, time.Hour, "test-key", func() ([]schema.TeamRecord, error) {
		return records, nil
	})

	require.NoError(t, err)
	assert.Equal(t, records, result)
}

func TestGenerateCacheKey(t *testing.T) {
	a := generateCacheKey("standings", "https://example.com/standings?season=2025")
	b := generateCacheKey("standings", "https://example.com/standings?season=2024")
	c := generateCacheKey("leaderboard:xfip", "https://example.com/standings?season=2025")

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, generateCacheKey("standings", "https://example.com/standings?season=2025"))
}

// fakeStandingsClient returns canned records without touching the network.
type fakeStandingsClient struct {
	records []schema.TeamRecord
	err     error
	calls   int
}

func (f *fakeStandingsClient) FetchStandings(_ context.Context, _ string) ([]schema.TeamRecord, error) {
	f.calls++
	return f.records, f.err
}

var _ contract.StandingsClient = (*fakeStandingsClient)(nil) // Compile-time check

func TestCachedStandings_NilStoreUsesClient(t *testing.T) {
	cfg := &contract.Config{
		StandingsURL: "https://example.com/standings?season=2025",
		CacheTTL:     time.Hour,
	}
	client := &fakeStandingsClient{records: []schema.TeamRecord{{Name: "Athletics"}}}
	mgr := &iocache.MockCacheManager{}
	mgr.On("GetFetchStore").Return(nil)

	records, err := cachedStandings(context.Background(), cfg, client, mgr, fixedClock{now: time.Unix(1_700_000_000, 0)})

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Athletics", records[0].Name)
	assert.Equal(t, 1, client.calls)
	mgr.AssertExpectations(t)
}
