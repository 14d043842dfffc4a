package iocache

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/joycemanzada/mlbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSQLiteHistoryStore returns a store backed by a throwaway SQLite file.
func newSQLiteHistoryStore(t *testing.T) *HistoryStoreImpl {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	store, err := NewHistoryStore(schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store.(*HistoryStoreImpl)
}

func sampleScore(name string, score float64) schema.TeamScore {
	xfip := 3.9
	return schema.TeamScore{
		TeamStats: schema.TeamStats{
			TeamRecord: schema.TeamRecord{Name: name, RunDifferential: 42, LastTen: "7-3"},
			XFIP:       &xfip,
		},
		Score: score,
	}
}

func TestHistoryStore_RunLifecycle(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	start := time.Unix(1_700_000_000, 0)

	runID, err := store.BeginRun(start, 2025, map[string]any{"limit": 30, "seed": int64(42)})
	require.NoError(t, err)
	assert.Greater(t, runID, int64(0))

	require.NoError(t, store.RecordTeamScore(runID, sampleScore("New York Yankees", 84.2)))
	require.NoError(t, store.RecordTeamScore(runID, sampleScore("Kansas City Royals", 41.0)))

	require.NoError(t, store.EndRun(runID, start.Add(3*time.Second), 2))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].RunID)
	assert.Equal(t, 2025, runs[0].Season)
	assert.Equal(t, 2, runs[0].TotalTeams)
	assert.Equal(t, start.Unix(), runs[0].StartTime.Unix())
	require.NotNil(t, runs[0].EndTime)
	assert.Equal(t, start.Add(3*time.Second).Unix(), runs[0].EndTime.Unix())
	require.NotNil(t, runs[0].Params)
	assert.Contains(t, *runs[0].Params, `"limit":30`)

	scores, err := store.ListTeamScores()
	require.NoError(t, err)
	require.Len(t, scores, 2)
	// Rows come back ordered by run then team name.
	assert.Equal(t, "Kansas City Royals", scores[0].Team)
	assert.Equal(t, "Average", scores[0].Label)
	assert.Equal(t, "New York Yankees", scores[1].Team)
	assert.Equal(t, "Elite", scores[1].Label)
	assert.InDelta(t, 84.2, scores[1].Score, 0.001)
	assert.Equal(t, int32(42), scores[1].RunDiff)
	assert.Equal(t, "7-3", scores[1].LastTen)
	require.NotNil(t, scores[1].XFIP)
	assert.InDelta(t, 3.9, *scores[1].XFIP, 0.001)
}

func TestHistoryStore_NullableMetrics(t *testing.T) {
	store := newSQLiteHistoryStore(t)

	runID, err := store.BeginRun(time.Unix(1_700_000_000, 0), 2025, nil)
	require.NoError(t, err)

	// No joined metrics at all; the optional columns stay NULL.
	score := schema.TeamScore{
		TeamStats: schema.TeamStats{
			TeamRecord: schema.TeamRecord{Name: "Athletics", LastTen: "0-0"},
		},
		Score: 12.5,
	}
	require.NoError(t, store.RecordTeamScore(runID, score))

	scores, err := store.ListTeamScores()
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Nil(t, scores[0].XFIP)
	assert.Nil(t, scores[0].WRCPlus)
	assert.Nil(t, scores[0].BullpenFIP)
}

func TestHistoryStore_MultipleRunsNewestFirst(t *testing.T) {
	store := newSQLiteHistoryStore(t)
	start := time.Unix(1_700_000_000, 0)

	first, err := store.BeginRun(start, 2024, nil)
	require.NoError(t, err)
	second, err := store.BeginRun(start.Add(time.Hour), 2025, nil)
	require.NoError(t, err)
	assert.Greater(t, second, first)

	runs, err := store.ListRuns()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].RunID)
	assert.Equal(t, first, runs[1].RunID)
}

func TestHistoryStore_GetStatus(t *testing.T) {
	store := newSQLiteHistoryStore(t)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalRuns)

	start := time.Unix(1_700_000_000, 0)
	runID, err := store.BeginRun(start, 2025, nil)
	require.NoError(t, err)
	require.NoError(t, store.RecordTeamScore(runID, sampleScore("Texas Rangers", 60)))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalRuns)
	assert.Equal(t, runID, status.LastRunID)
	assert.Equal(t, 1, status.TotalTeamsScored)
	assert.Equal(t, start.Unix(), status.LastRunTime.Unix())
	assert.Equal(t, int64(1), status.TableSizes["score_runs"])
	assert.Equal(t, int64(1), status.TableSizes["team_scores"])
}

func TestHistoryStore_NoneBackendIsNoop(t *testing.T) {
	store, err := NewHistoryStore(schema.NoneBackend, "")
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	runID, err := store.BeginRun(time.Now(), 2025, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(0), runID)

	require.NoError(t, store.RecordTeamScore(runID, sampleScore("Mets", 50)))
	require.NoError(t, store.EndRun(runID, time.Now(), 1))

	runs, err := store.ListRuns()
	require.NoError(t, err)
	assert.Empty(t, runs)

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.False(t, status.Connected)
}
