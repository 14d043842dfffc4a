package outwriter

import (
	"fmt"
	"io"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintWeights displays the metric weights in effect for this run.
func PrintWeights(cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, cfg.Weights)
		}, "Wrote JSON")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeWeightsTable(cfg, w)
		}, "Wrote table")
	}
}

// writeWeightsTable renders the weight table with each metric's direction.
func writeWeightsTable(cfg *contract.Config, w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Key", "Metric", "Weight", "Direction"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var total float64
	var data [][]string
	for _, key := range schema.AllMetricKeys {
		weight, ok := cfg.Weights[key]
		if !ok {
			continue
		}
		direction := "higher is better"
		if schema.LowerIsBetter[key] {
			direction = "lower is better"
		}
		if key == schema.MetricLastTen {
			direction = "win fraction"
		}
		data = append(data, []string{
			string(key),
			key.DisplayName(),
			fmt.Sprintf("%.1f", weight),
			direction,
		})
		total += weight
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total weight: %.1f across %d metrics\n", total, len(data)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Score = sum of weight * normalized value for each present metric (min-max, or win fraction for last_ten)"); err != nil {
		return err
	}
	return nil
}
