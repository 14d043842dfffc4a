// Package core has core logic for fetching, merging, scoring and ranking.
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/internal/fetch"
	"github.com/joycemanzada/mlbscore/internal/iocache"
	"github.com/joycemanzada/mlbscore/internal/outwriter"
	"github.com/joycemanzada/mlbscore/schema"
)

// ExecutorFunc defines the function signature for executing different scoring modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config) error

// pipelineDeps bundles the injectable collaborators of the scoring pipeline.
// Executors use production values; tests swap in fakes.
type pipelineDeps struct {
	standings   contract.StandingsClient
	leaderboard contract.LeaderboardClient
	manager     contract.CacheManager
	clock       contract.Clock
	sampler     contract.Sampler
}

// newPipelineDeps builds the production dependency set for one run.
func newPipelineDeps(cfg *contract.Config) pipelineDeps {
	return pipelineDeps{
		standings:   fetch.NewStandingsClient(cfg.Timeout),
		leaderboard: fetch.NewLeaderboardClient(cfg.Timeout),
		manager:     iocache.Manager,
		clock:       contract.SystemClock{},
		sampler:     contract.NewSampler(cfg.Seed),
	}
}

// runScoringPipeline executes the full fetch-merge-enrich-score-rank sequence
// and returns the ranked teams. A leaderboard whose page shape is not
// recognized degrades to an empty result set with a warning, so one upstream
// layout change cannot take down the whole run. A standings failure is fatal
// because there is nothing to score without it.
func runScoringPipeline(ctx context.Context, cfg *contract.Config, deps pipelineDeps) ([]schema.RankedTeamScore, error) {
	records, err := cachedStandings(ctx, cfg, deps.standings, deps.manager, deps.clock)
	if err != nil {
		return nil, err
	}

	leaderboards := make(map[schema.MetricKey][]schema.LeaderboardRow, len(cfg.Sources))
	for _, src := range cfg.Sources {
		rows, err := cachedLeaderboard(ctx, cfg, src, deps.leaderboard, deps.manager, deps.clock)
		if err != nil {
			if errors.Is(err, fetch.ErrLeaderboardShape) {
				contract.LogWarn(fmt.Sprintf("skipping %s leaderboard", src.Metric), err)
				leaderboards[src.Metric] = nil
				continue
			}
			return nil, err
		}
		leaderboards[src.Metric] = rows
	}

	teams := MergeTeams(records, leaderboards)
	EnrichTeams(teams, deps.sampler)
	scores := ScoreTeams(teams, cfg.Weights)

	recordRunHistory(cfg, deps, scores)

	ranked := RankTeams(scores, cfg.ResultLimit)
	return schema.EnrichScores(ranked), nil
}

// recordRunHistory persists the run and per-team scores when tracking is on.
// History failures are logged and ignored so the run output still lands.
func recordRunHistory(cfg *contract.Config, deps pipelineDeps, scores []schema.TeamScore) {
	store := deps.manager.GetHistoryStore()
	if store == nil {
		return
	}

	start := deps.clock.Now()
	params := map[string]any{
		"season": cfg.Season,
		"limit":  cfg.ResultLimit,
		"seed":   cfg.Seed,
	}
	runID, err := store.BeginRun(start, cfg.Season, params)
	if err != nil {
		contract.LogWarn("history begin run", err)
		return
	}
	for _, score := range scores {
		if err := store.RecordTeamScore(runID, score); err != nil {
			contract.LogWarn(fmt.Sprintf("history record %s", score.Name), err)
		}
	}
	if err := store.EndRun(runID, deps.clock.Now(), len(scores)); err != nil {
		contract.LogWarn(fmt.Sprintf("history end run %d", runID), err)
	}
}

// GetRankResults runs the scoring pipeline and returns the ranked teams
// without printing. A non-nil manager overrides the global store manager,
// which lets callers such as the MCP server inject their own.
func GetRankResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.RankedTeamScore, error) {
	deps := newPipelineDeps(cfg)
	if mgr != nil {
		deps.manager = mgr
	}
	return runScoringPipeline(ctx, cfg, deps)
}

// GetMatchupResults runs the scoring pipeline for the whole league and
// returns the matchup comparison for the two configured teams.
func GetMatchupResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*schema.MatchupResult, error) {
	fullCfg := cfg.Clone()
	fullCfg.ResultLimit = 0

	ranked, err := GetRankResults(ctx, fullCfg, mgr)
	if err != nil {
		return nil, err
	}
	return BuildMatchup(ranked, cfg.TeamA, cfg.TeamB, cfg.Precision)
}

// ExecuteRank runs the scoring pipeline and prints the ranked table.
// It serves as the main entry point for the 'rank' command.
func ExecuteRank(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	ranked, err := runScoringPipeline(ctx, cfg, newPipelineDeps(cfg))
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintRankResults(ranked, cfg, duration)
}

// ExecuteChart runs the scoring pipeline and prints a bar chart of the top teams.
// It serves as the main entry point for the 'chart' command.
func ExecuteChart(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	ranked, err := runScoringPipeline(ctx, cfg, newPipelineDeps(cfg))
	if err != nil {
		return err
	}
	if len(ranked) > cfg.ChartLimit {
		ranked = ranked[:cfg.ChartLimit]
	}
	duration := time.Since(start)
	return outwriter.PrintChartResults(ranked, cfg, duration)
}

// ExecuteMatchup runs the scoring pipeline for all teams and prints a
// metric-by-metric comparison of the two configured teams.
func ExecuteMatchup(ctx context.Context, cfg *contract.Config) error {
	start := time.Now()
	matchup, err := GetMatchupResults(ctx, cfg, nil)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintMatchupResults(matchup, cfg, duration)
}

// ExecuteWeights displays the metric weights in effect.
// This is a static display that does not require any fetching.
func ExecuteWeights(_ context.Context, cfg *contract.Config) error {
	return outwriter.PrintWeights(cfg)
}
