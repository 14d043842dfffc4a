package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintMatchupResults outputs the matchup comparison, dispatching based on the output format configured.
func PrintMatchupResults(result *schema.MatchupResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeMatchupCSVResults(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatchupTable(result, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
	return nil
}

// writeMatchupCSVResults handles opening the file and calling the CSV writer.
func writeMatchupCSVResults(result *schema.MatchupResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"metric", "a_value", "a_contrib", "edge", "b_contrib", "b_value"}
		return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
			for _, line := range result.Lines {
				rec := []string{
					string(line.Metric),
					line.AValue,
					fmtFloat(line.AContrib),
					line.Edge,
					fmtFloat(line.BContrib),
					line.BValue,
				}
				if err := csvWriter.Write(rec); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}

// edgeMarker renders which side holds the edge on one metric line.
func edgeMarker(edge string) string {
	switch edge {
	case schema.EdgeTeamA:
		return "<"
	case schema.EdgeTeamB:
		return ">"
	default:
		return "="
	}
}

// writeMatchupTable generates and writes the human-readable matchup table.
func writeMatchupTable(result *schema.MatchupResult, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%s (#%d) vs %s (#%d)\n\n", result.TeamA, result.ARank, result.TeamB, result.BRank); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", result.TeamA, "Pts", "Edge", "Pts", result.TeamB})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, line := range result.Lines {
		row := []string{
			line.Metric.DisplayName(),
			line.AValue,
			fmtFloat(line.AContrib),
			edgeMarker(line.Edge),
			fmtFloat(line.BContrib),
			line.BValue,
		}
		data = append(data, row)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	s := result.Summary
	if _, err := fmt.Fprintf(w, "Score: %s %s - %s %s (delta %s)\n",
		result.TeamA, fmtFloat(s.AScore), fmtFloat(s.BScore), result.TeamB, fmtFloat(s.ScoreDelta)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Edges: %s %d, %s %d, even %d\n",
		result.TeamA, s.AEdges, result.TeamB, s.BEdges, s.EvenEdges); err != nil {
		return err
	}
	favorite := s.Favorite
	if favorite == "" {
		favorite = "none (dead even)"
	}
	if _, err := fmt.Fprintf(w, "Favorite: %s\n", favorite); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Matchup completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}
