package cmd

import (
	"github.com/joycemanzada/mlbscore/core"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/spf13/cobra"
)

// weightsCmd displays the metric weights in effect.
var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Show the metric weights used for scoring.",
	Long: `Display every scoring metric, its weight, and its direction.

Weights can be overridden per metric in the config file:

  weights:
    xfip: 25
    last_ten: 0    # a zero weight removes the metric from scoring

This command shows the result of merging those overrides with the defaults,
which is exactly what the rank, chart and matchup commands will use.

Examples:
  # Show effective weights
  mlbscore weights

  # Machine-readable form
  mlbscore weights --output json`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteWeights(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot show weights", err)
		}
	},
}
