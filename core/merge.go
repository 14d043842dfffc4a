package core

import (
	"strings"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
)

// leaderboardIndex builds a name-to-value lookup from leaderboard rows.
// Names are trimmed so stray whitespace from scraped cells cannot break the join.
func leaderboardIndex(rows []schema.LeaderboardRow) map[string]float64 {
	index := make(map[string]float64, len(rows))
	for _, row := range rows {
		index[strings.TrimSpace(row.Team)] = row.Value
	}
	return index
}

// MergeTeams left-joins standings records with the three leaderboard result
// sets. Every standings team appears in the output exactly once, in input
// order. A team missing from a leaderboard keeps a nil value for that metric.
func MergeTeams(records []schema.TeamRecord, leaderboards map[schema.MetricKey][]schema.LeaderboardRow) []schema.TeamStats {
	indexes := make(map[schema.MetricKey]map[string]float64, len(leaderboards))
	for metric, rows := range leaderboards {
		indexes[metric] = leaderboardIndex(rows)
	}

	lookup := func(metric schema.MetricKey, name string) *float64 {
		index, ok := indexes[metric]
		if !ok {
			return nil
		}
		value, ok := index[name]
		if !ok {
			return nil
		}
		return &value
	}

	teams := make([]schema.TeamStats, len(records))
	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		record.Name = name
		teams[i] = schema.TeamStats{
			TeamRecord:  record,
			XFIP:        lookup(schema.MetricXFIP, name),
			WRCPlus:     lookup(schema.MetricWRCPlus, name),
			BullpenXFIP: lookup(schema.MetricBullpenXFIP, name),
		}
	}
	return teams
}

// EnrichTeams fills the sampled scouting metrics on every team in place.
// The sampler determines reproducibility: a seeded sampler yields the same
// metrics for the same team order on every run.
func EnrichTeams(teams []schema.TeamStats, sampler contract.Sampler) {
	for i := range teams {
		teams[i].WHIP = sampler.Float64(1.1, 1.5)
		teams[i].OPSVsHand = sampler.Float64(0.680, 0.850)
		teams[i].KRate = sampler.Float64(20.0, 30.0)
		teams[i].DRS = sampler.IntN(-10, 20)
		teams[i].RestTravel = sampler.IntN(0, 5)
	}
}
