package schema

import "time"

// CacheStatus represents the status of the fetch cache store.
type CacheStatus struct {
	Backend         string    `json:"backend"`
	Connected       bool      `json:"connected"`
	TotalEntries    int       `json:"total_entries"`
	LastEntryTime   time.Time `json:"last_entry_time"`
	OldestEntryTime time.Time `json:"oldest_entry_time"`
	TableSizeBytes  int64     `json:"table_size_bytes"`
}

// HistoryStatus represents the status of the run-history store.
type HistoryStatus struct {
	Backend          string           `json:"backend"`
	Connected        bool             `json:"connected"`
	TotalRuns        int              `json:"total_runs"`
	LastRunID        int64            `json:"last_run_id"`
	LastRunTime      time.Time        `json:"last_run_time"`
	OldestRunTime    time.Time        `json:"oldest_run_time"`
	TotalTeamsScored int              `json:"total_teams_scored"`
	TableSizes       map[string]int64 `json:"table_sizes"`
}

// RunRecord represents one stored scoring run.
type RunRecord struct {
	RunID      int64
	StartTime  time.Time
	EndTime    *time.Time
	Season     int
	TotalTeams int
	Params     *string // JSON-encoded run parameters
}

// TeamScoreRecord represents one stored per-team score row.
type TeamScoreRecord struct {
	RunID      int64
	Team       string
	ScoredAt   time.Time
	Score      float64
	RunDiff    int32
	LastTen    string
	XFIP       *float64
	WRCPlus    *float64
	BullpenFIP *float64
	Label      string
}
