package core

import (
	"fmt"
	"math"
	"strings"

	"github.com/joycemanzada/mlbscore/schema"
)

// edgeEpsilon is the contribution delta below which a metric is called even.
const edgeEpsilon = 0.01

// findRanked locates a team by name in a ranked list, case-insensitively.
func findRanked(ranked []schema.RankedTeamScore, name string) (schema.RankedTeamScore, bool) {
	for _, r := range ranked {
		if strings.EqualFold(r.Name, strings.TrimSpace(name)) {
			return r, true
		}
	}
	return schema.RankedTeamScore{}, false
}

// formatMetricValue renders one metric's raw value for display.
// Absent joined metrics render as "-".
func formatMetricValue(t *schema.TeamStats, key schema.MetricKey, precision int) string {
	v, ok := metricValue(t, key)
	if !ok {
		return "-"
	}
	switch key {
	case schema.MetricDRS, schema.MetricRunDiff, schema.MetricRestTravel:
		return fmt.Sprintf("%d", int(v))
	case schema.MetricLastTen:
		return t.LastTen
	default:
		return fmt.Sprintf("%.*f", precision, v)
	}
}

// BuildMatchup compares two ranked teams metric by metric using their score
// breakdowns. Both teams must exist in the ranked list.
func BuildMatchup(ranked []schema.RankedTeamScore, teamA, teamB string, precision int) (*schema.MatchupResult, error) {
	a, ok := findRanked(ranked, teamA)
	if !ok {
		return nil, fmt.Errorf("team not found: %s", teamA)
	}
	b, ok := findRanked(ranked, teamB)
	if !ok {
		return nil, fmt.Errorf("team not found: %s", teamB)
	}

	result := &schema.MatchupResult{
		TeamA: a.Name,
		TeamB: b.Name,
		ARank: a.Rank,
		BRank: b.Rank,
	}

	for _, key := range schema.AllMetricKeys {
		aContrib, aHas := a.Breakdown[key]
		bContrib, bHas := b.Breakdown[key]
		if !aHas && !bHas {
			continue
		}

		line := schema.MatchupLine{
			Metric:   key,
			AValue:   formatMetricValue(&a.TeamStats, key, precision),
			BValue:   formatMetricValue(&b.TeamStats, key, precision),
			AContrib: aContrib,
			BContrib: bContrib,
		}

		switch {
		case math.Abs(aContrib-bContrib) < edgeEpsilon:
			line.Edge = schema.EdgeEven
			result.Summary.EvenEdges++
		case aContrib > bContrib:
			line.Edge = schema.EdgeTeamA
			result.Summary.AEdges++
		default:
			line.Edge = schema.EdgeTeamB
			result.Summary.BEdges++
		}
		result.Lines = append(result.Lines, line)
	}

	result.Summary.AScore = a.Score
	result.Summary.BScore = b.Score
	result.Summary.ScoreDelta = a.Score - b.Score
	switch {
	case a.Score > b.Score:
		result.Summary.Favorite = a.Name
	case b.Score > a.Score:
		result.Summary.Favorite = b.Name
	}

	return result, nil
}
