// Package parquet provides data structures and functions for exporting scoring
// run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/joycemanzada/mlbscore/schema"
	"github.com/parquet-go/parquet-go"
)

// ScoringRun represents a single scoring run with metadata.
// This struct maps to the score_runs database table.
type ScoringRun struct {
	// RunID is the unique identifier for this scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// Season is the MLB season that was scored
	Season int32 `parquet:"season,snappy"`

	// TotalTeams is the number of teams scored in this run
	TotalTeams int32 `parquet:"total_teams,snappy"`

	// Params contains the JSON-encoded run parameters (nullable)
	Params *string `parquet:"params,optional,snappy"`
}

// TeamScoreRow represents the final score for a single team in a run.
// This struct maps to the team_scores database table.
type TeamScoreRow struct {
	// RunID references the parent scoring run
	RunID int64 `parquet:"run_id,snappy"`

	// Team is the full team name from the standings feed
	Team string `parquet:"team,snappy"`

	// ScoredAt is when this team was scored (stored as TIMESTAMP with nanosecond precision)
	ScoredAt time.Time `parquet:"scored_at,snappy"`

	// Score is the composite score on the 0-100 scale
	Score float64 `parquet:"score,snappy"`

	// RunDiff is the team's season run differential
	RunDiff int32 `parquet:"run_diff,snappy"`

	// LastTen is the team's record over the last ten games, like "7-3"
	LastTen string `parquet:"last_ten,snappy"`

	// XFIP is the team pitching xFIP from the leaderboard (nullable)
	XFIP *float64 `parquet:"xfip,optional,snappy"`

	// WRCPlus is the team batting wRC+ from the leaderboard (nullable)
	WRCPlus *float64 `parquet:"wrc_plus,optional,snappy"`

	// BullpenFIP is the bullpen xFIP from the leaderboard (nullable)
	BullpenFIP *float64 `parquet:"bullpen_xfip,optional,snappy"`

	// Label is the tier label derived from the score
	Label string `parquet:"label,snappy"`
}

// WriteScoringRunsParquet writes a slice of ScoringRun structs to a Parquet file.
func WriteScoringRunsParquet(data []ScoringRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the ScoringRun struct tags
	writer := parquet.NewGenericWriter[ScoringRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteTeamScoresParquet writes a slice of TeamScoreRow structs to a Parquet file.
func WriteTeamScoresParquet(data []TeamScoreRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the TeamScoreRow struct tags
	writer := parquet.NewGenericWriter[TeamScoreRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to ScoringRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []ScoringRun {
	result := make([]ScoringRun, len(records))
	for i, record := range records {
		result[i] = ScoringRun{
			RunID:      record.RunID,
			StartTime:  record.StartTime,
			EndTime:    record.EndTime,
			Season:     int32(record.Season),
			TotalTeams: int32(record.TotalTeams),
			Params:     record.Params,
		}
	}
	return result
}

// ConvertTeamScoreRecords converts schema.TeamScoreRecord to TeamScoreRow for Parquet export.
func ConvertTeamScoreRecords(records []schema.TeamScoreRecord) []TeamScoreRow {
	result := make([]TeamScoreRow, len(records))
	for i, record := range records {
		result[i] = TeamScoreRow{
			RunID:      record.RunID,
			Team:       record.Team,
			ScoredAt:   record.ScoredAt,
			Score:      record.Score,
			RunDiff:    record.RunDiff,
			LastTen:    record.LastTen,
			XFIP:       record.XFIP,
			WRCPlus:    record.WRCPlus,
			BullpenFIP: record.BullpenFIP,
			Label:      record.Label,
		}
	}
	return result
}
