package core

import (
	"regexp"

	"github.com/joycemanzada/mlbscore/schema"
)

// lastTenPattern matches a "W-L" record like "7-3".
var lastTenPattern = regexp.MustCompile(`(\d+)-(\d+)`)

// parseLastTen converts a "W-L" record into a win fraction in [0,1].
// Unparseable records and "0-0" both map to 0.
func parseLastTen(record string) float64 {
	match := lastTenPattern.FindStringSubmatch(record)
	if match == nil {
		return 0
	}
	wins := atoiDigits(match[1])
	losses := atoiDigits(match[2])
	games := wins + losses
	if games == 0 {
		return 0
	}
	return float64(wins) / float64(games)
}

// atoiDigits parses a digits-only string already vetted by the regex.
func atoiDigits(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}

// metricValue extracts one metric's raw numeric value from a team.
// The second return reports whether the metric is present for this team;
// joined leaderboard metrics are absent when the join found no match.
func metricValue(t *schema.TeamStats, key schema.MetricKey) (float64, bool) {
	switch key {
	case schema.MetricXFIP:
		if t.XFIP == nil {
			return 0, false
		}
		return *t.XFIP, true
	case schema.MetricWRCPlus:
		if t.WRCPlus == nil {
			return 0, false
		}
		return *t.WRCPlus, true
	case schema.MetricBullpenXFIP:
		if t.BullpenXFIP == nil {
			return 0, false
		}
		return *t.BullpenXFIP, true
	case schema.MetricWHIP:
		return t.WHIP, true
	case schema.MetricOPSVsHand:
		return t.OPSVsHand, true
	case schema.MetricKRate:
		return t.KRate, true
	case schema.MetricDRS:
		return float64(t.DRS), true
	case schema.MetricRunDiff:
		return float64(t.RunDifferential), true
	case schema.MetricLastTen:
		return parseLastTen(t.LastTen), true
	case schema.MetricRestTravel:
		return float64(t.RestTravel), true
	default:
		return 0, false
	}
}

// metricBounds holds the observed range for one metric across all teams.
type metricBounds struct {
	min      float64
	max      float64
	observed bool
}

// computeBounds finds the min and max of each weighted metric across teams,
// considering only teams where the metric is present.
func computeBounds(teams []schema.TeamStats, weights map[schema.MetricKey]float64) map[schema.MetricKey]metricBounds {
	bounds := make(map[schema.MetricKey]metricBounds, len(weights))
	for key := range weights {
		if key == schema.MetricLastTen {
			// The win fraction is already on [0,1]; no bounds needed.
			continue
		}
		var b metricBounds
		for i := range teams {
			v, ok := metricValue(&teams[i], key)
			if !ok {
				continue
			}
			if !b.observed {
				b.min, b.max, b.observed = v, v, true
				continue
			}
			if v < b.min {
				b.min = v
			}
			if v > b.max {
				b.max = v
			}
		}
		bounds[key] = b
	}
	return bounds
}

// normalize maps a raw metric value onto [0,1] within the observed bounds.
// A metric with no spread across teams carries no signal, so every team gets
// the neutral 0.5 instead of an arbitrary extreme.
func normalize(v float64, b metricBounds, lowerIsBetter bool) float64 {
	if b.max == b.min {
		return 0.5
	}
	if lowerIsBetter {
		return (b.max - v) / (b.max - b.min)
	}
	return (v - b.min) / (b.max - b.min)
}

// ScoreTeams computes the composite score for every team. Each present metric
// contributes weight * normalized value; metrics absent for a team are skipped
// so that team's maximum attainable score shrinks by the missing weight.
// The last-ten record contributes its win fraction directly instead of a
// min-max rescale across teams. The per-metric contributions are stored in
// each team's Breakdown.
func ScoreTeams(teams []schema.TeamStats, weights map[schema.MetricKey]float64) []schema.TeamScore {
	bounds := computeBounds(teams, weights)

	scores := make([]schema.TeamScore, len(teams))
	for i := range teams {
		breakdown := make(map[schema.MetricKey]float64, len(weights))
		var total float64
		for _, key := range schema.AllMetricKeys {
			weight, ok := weights[key]
			if !ok {
				continue
			}
			v, present := metricValue(&teams[i], key)
			if !present {
				continue
			}
			norm := v // last-ten's win fraction is used as-is
			if key != schema.MetricLastTen {
				norm = normalize(v, bounds[key], schema.LowerIsBetter[key])
			}
			contrib := weight * norm
			breakdown[key] = contrib
			total += contrib
		}
		scores[i] = schema.TeamScore{
			TeamStats: teams[i],
			Score:     total,
			Breakdown: breakdown,
		}
	}
	return scores
}
