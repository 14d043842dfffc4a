package cmd

import (
	"github.com/joycemanzada/mlbscore/core"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/spf13/cobra"
)

// matchupCmd compares two teams metric by metric.
var matchupCmd = &cobra.Command{
	Use:   "matchup <team-a> <team-b>",
	Short: "Compare two teams metric by metric.",
	Long: `Score the whole league, then break down how two teams stack up.

For each metric the table shows both raw values, the weighted points each
team earned from it, and which side holds the edge. The summary names a
favorite based on the composite scores.

Team names must match the standings feed, for example "New York Yankees".
Matching is case-insensitive.

Examples:
  # Head-to-head for a series preview
  mlbscore matchup "New York Yankees" "Boston Red Sox"

  # Same matchup in a past season, as JSON
  mlbscore matchup "Los Angeles Dodgers" "San Diego Padres" --season 2023 --output json`,
	Args:    cobra.ExactArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, args []string) {
		cfg.TeamA = args[0]
		cfg.TeamB = args[1]
		if err := core.ExecuteMatchup(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run matchup", err)
		}
	},
}
