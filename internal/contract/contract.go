// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/joycemanzada/mlbscore/schema"
)

// StandingsClient defines the operation for retrieving standings records.
// This allows the pipeline to be tested without a live standings endpoint.
type StandingsClient interface {
	// FetchStandings issues one request to the standings endpoint and returns
	// one TeamRecord per team across all leagues in the response.
	FetchStandings(ctx context.Context, url string) ([]schema.TeamRecord, error)
}

// LeaderboardClient defines the operation for retrieving a leaderboard table.
type LeaderboardClient interface {
	// FetchLeaderboard issues one request to the source URL and returns the
	// parsed (team, value) rows. Shape failures return a typed error that
	// callers may degrade to an empty result set.
	FetchLeaderboard(ctx context.Context, src LeaderboardSource) ([]schema.LeaderboardRow, error)
}

// LeaderboardSource describes one leaderboard page to read.
type LeaderboardSource struct {
	URL        string           // Page URL
	Metric     schema.MetricKey // The metric this source feeds
	StatHeader string           // Column header holding the metric value
}

// CacheManager defines the interface for managing stores.
// This allows the persistence layer to be mocked for testing.
type CacheManager interface {
	GetFetchStore() CacheStore
	GetHistoryStore() HistoryStore
}

// CacheStore defines the interface for fetch-cache storage.
type CacheStore interface {
	Get(key string) ([]byte, int, int64, error)
	Set(key string, value []byte, version int, timestamp int64) error
	GetStatus() (schema.CacheStatus, error)
	Close() error
}

// HistoryStore defines the interface for tracking scoring runs and per-team scores.
type HistoryStore interface {
	// BeginRun creates a new scoring run and returns its unique ID
	BeginRun(startTime time.Time, season int, params map[string]any) (int64, error)

	// EndRun updates the scoring run with completion data
	EndRun(runID int64, endTime time.Time, totalTeams int) error

	// RecordTeamScore stores one team's final score for a run
	RecordTeamScore(runID int64, score schema.TeamScore) error

	// ListRuns returns all stored runs, newest first
	ListRuns() ([]schema.RunRecord, error)

	// ListTeamScores returns all stored per-team score rows
	ListTeamScores() ([]schema.TeamScoreRecord, error)

	// GetStatus returns status information about the history store
	GetStatus() (schema.HistoryStatus, error)

	// Close closes the underlying connection
	Close() error
}

// Clock abstracts time for cache expiry so TTL logic is testable.
type Clock interface {
	Now() time.Time
}

// Sampler abstracts the random source for the enrichment metrics so scoring
// is reproducible when seeded.
type Sampler interface {
	// Float64 returns a value uniformly distributed in [lo, hi).
	Float64(lo, hi float64) float64

	// IntN returns an integer uniformly distributed in [lo, hi).
	IntN(lo, hi int) int
}
