package core

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
)

// currentCacheVersion defines the version of the cache schema
const currentCacheVersion = 1

// generateCacheKey creates a unique key for one upstream request.
// The season is baked into the URL, so URL plus a short kind tag is enough.
func generateCacheKey(kind, url string) string {
	key := fmt.Sprintf("%s:%s", kind, url)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

// checkCacheHit attempts to retrieve and validate a cached result.
// Entries older than the TTL or written by another cache version are misses.
func checkCacheHit[T any](store contract.CacheStore, clock contract.Clock, ttl time.Duration, key string) *T {
	data, version, ts, err := store.Get(key)
	if err != nil {
		return nil // Cache miss
	}

	if version == currentCacheVersion {
		entryTimestamp := time.Unix(ts, 0)
		if clock.Now().Sub(entryTimestamp) <= ttl {
			var result T
			if err := json.Unmarshal(data, &result); err == nil {
				return &result // Cache hit
			}
		}
	}

	return nil // Cache miss (stale or version mismatch)
}

// computeAndStore runs the fetch and stores the result in the cache.
func computeAndStore[T any](store contract.CacheStore, clock contract.Clock, key string, fetch func() (T, error)) (T, error) {
	result, err := fetch()
	if err != nil {
		return result, err
	}

	// Store in cache
	if data, err := json.Marshal(result); err == nil {
		_ = store.Set(key, data, currentCacheVersion, clock.Now().Unix())
	}

	return result, nil
}

// cachedFetch wraps one upstream fetch with version- and TTL-validated caching.
// A nil store falls back to direct computation.
func cachedFetch[T any](store contract.CacheStore, clock contract.Clock, ttl time.Duration, key string, fetch func() (T, error)) (T, error) {
	if store == nil {
		return fetch()
	}

	if result := checkCacheHit[T](store, clock, ttl, key); result != nil {
		return *result, nil
	}

	return computeAndStore(store, clock, key, fetch)
}

// cachedStandings fetches standings records through the fetch cache.
func cachedStandings(ctx context.Context, cfg *contract.Config, client contract.StandingsClient, mgr contract.CacheManager, clock contract.Clock) ([]schema.TeamRecord, error) {
	key := generateCacheKey("standings", cfg.StandingsURL)
	return cachedFetch(mgr.GetFetchStore(), clock, cfg.CacheTTL, key, func() ([]schema.TeamRecord, error) {
		return client.FetchStandings(ctx, cfg.StandingsURL)
	})
}

// cachedLeaderboard fetches one leaderboard through the fetch cache.
func cachedLeaderboard(ctx context.Context, cfg *contract.Config, src contract.LeaderboardSource, client contract.LeaderboardClient, mgr contract.CacheManager, clock contract.Clock) ([]schema.LeaderboardRow, error) {
	key := generateCacheKey("leaderboard:"+string(src.Metric), src.URL)
	return cachedFetch(mgr.GetFetchStore(), clock, cfg.CacheTTL, key, func() ([]schema.LeaderboardRow, error) {
		return client.FetchLeaderboard(ctx, src)
	})
}
