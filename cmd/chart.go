package cmd

import (
	"github.com/joycemanzada/mlbscore/core"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/spf13/cobra"
)

// chartCmd renders the top teams as a bar chart.
var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw a bar chart of the top teams by score.",
	Long: `Score every team and draw a horizontal bar chart of the leaders.

The bars are scaled to the top score, so the chart shows relative strength
at a glance without needing the full ranking table.

Examples:
  # Chart the top 10 teams (default)
  mlbscore chart

  # Chart the top 5 of a past season
  mlbscore chart --top 5 --season 2023`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteChart(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run chart", err)
		}
	},
}
