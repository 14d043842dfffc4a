package cmd

import (
	"github.com/joycemanzada/mlbscore/core"
	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/spf13/cobra"
)

// rankCmd scores and ranks every team for a season.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Show all teams ranked by composite score.",
	Long: `Fetch standings and leaderboard data, score every team, and rank them.

Combines three data layers into one composite score per team:
- Standings: run differential and the last-ten-games record
- Leaderboards: team xFIP, wRC+ and bullpen xFIP
- Scouting metrics: WHIP, OPS vs hand, K rate, DRS and rest/travel burden

Each metric is min-max normalized across the league and weighted (the
last-ten record counts as its raw win fraction), so the score reflects
where a team stands relative to everyone else right now.

Examples:
  # Rank the current season
  mlbscore rank

  # Rank a past season, top 10 only
  mlbscore rank --season 2023 --limit 10

  # Reproducible scouting metrics
  mlbscore rank --seed 42

  # Export the full table to CSV
  mlbscore rank --output csv --output-file rankings.csv`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRank(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot run ranking", err)
		}
	},
}
