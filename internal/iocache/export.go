package iocache

import (
	"errors"
	"fmt"

	"github.com/joycemanzada/mlbscore/internal/parquet"
)

// ExecuteHistoryExport performs the actual export of run history to Parquet files.
func ExecuteHistoryExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the history store
	store := Manager.GetHistoryStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total scoring runs: %d\n", status.TotalRuns)
	fmt.Printf("Total team records: %d\n", status.TableSizes[teamScoresTable])

	// Retrieve all scoring runs
	runs, err := store.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve scoring runs: %w", err)
	}

	// Retrieve all team score rows
	teamScores, err := store.ListTeamScores()
	if err != nil {
		return fmt.Errorf("failed to retrieve team scores: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetScores := parquet.ConvertTeamScoreRecords(teamScores)

	// Write scoring runs to Parquet
	runsFile := outputFile + ".score_runs.parquet"
	if err := parquet.WriteScoringRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write scoring runs: %w", err)
	}
	fmt.Printf("Exported %d scoring runs to: %s\n", len(parquetRuns), runsFile)

	// Write team scores to Parquet
	scoresFile := outputFile + ".team_scores.parquet"
	if err := parquet.WriteTeamScoresParquet(parquetScores, scoresFile); err != nil {
		return fmt.Errorf("failed to write team scores: %w", err)
	}
	fmt.Printf("Exported %d team score records to: %s\n", len(parquetScores), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
