package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
)

// maxBarWidth caps the widest bar in the chart.
const maxBarWidth = 40

// PrintChartResults outputs a horizontal bar chart of the top teams.
func PrintChartResults(ranked []schema.RankedTeamScore, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, ranked)
		}, "Wrote JSON"); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"rank", "team", "score", "label"}
			return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
				for _, r := range ranked {
					rec := []string{strconv.Itoa(r.Rank), r.Name, fmtFloat(r.Score), r.Label}
					if err := csvWriter.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV"); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeChart(ranked, cfg, fmtFloat, duration, w)
		}, "Wrote chart")
	}
	return nil
}

// writeChart renders the text bar chart. Bars are scaled to the top score so
// the chart stays readable regardless of the absolute score range.
func writeChart(ranked []schema.RankedTeamScore, cfg *contract.Config, fmtFloat func(float64) string, duration time.Duration, w io.Writer) error {
	if len(ranked) == 0 {
		_, err := fmt.Fprintln(w, "No teams to chart")
		return err
	}

	maxScore := ranked[0].Score
	for _, r := range ranked {
		if r.Score > maxScore {
			maxScore = r.Score
		}
	}

	nameWidth := 0
	for _, r := range ranked {
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	label := schema.GetPlainLabel
	if cfg.UseColors {
		label = contract.GetColorLabel
	}

	for _, r := range ranked {
		barLen := 0
		if maxScore > 0 {
			barLen = int(r.Score / maxScore * maxBarWidth)
		}
		bar := strings.Repeat("█", barLen)
		if _, err := fmt.Fprintf(w, "%2d. %-*s %s %s (%s)\n",
			r.Rank, nameWidth, r.Name, bar, fmtFloat(r.Score), label(r.Score)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nTop %d teams for the %d season. Completed in %v\n", len(ranked), cfg.Season, duration); err != nil {
		return err
	}
	return nil
}
