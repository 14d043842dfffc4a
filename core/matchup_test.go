package core

import (
	"testing"

	"github.com/joycemanzada/mlbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankedFor(rank int, name string, score float64, breakdown map[schema.MetricKey]float64) schema.RankedTeamScore {
	return schema.RankedTeamScore{
		Rank:  rank,
		Label: schema.GetPlainLabel(score),
		TeamScore: schema.TeamScore{
			TeamStats: schema.TeamStats{TeamRecord: schema.TeamRecord{Name: name, LastTen: "5-5"}},
			Score:     score,
			Breakdown: breakdown,
		},
	}
}

// TestBuildMatchup_Edges verifies per-metric edge attribution.
func TestBuildMatchup_Edges(t *testing.T) {
	ranked := []schema.RankedTeamScore{
		rankedFor(1, "Dodgers", 72, map[schema.MetricKey]float64{
			schema.MetricWHIP:    8.0,
			schema.MetricKRate:   3.0,
			schema.MetricLastTen: 5.0,
		}),
		rankedFor(2, "Padres", 65, map[schema.MetricKey]float64{
			schema.MetricWHIP:    4.0,
			schema.MetricKRate:   6.0,
			schema.MetricLastTen: 5.005,
		}),
	}

	result, err := BuildMatchup(ranked, "Dodgers", "Padres", 1)
	require.NoError(t, err)

	assert.Equal(t, "Dodgers", result.TeamA)
	assert.Equal(t, "Padres", result.TeamB)
	assert.Equal(t, 1, result.ARank)
	assert.Equal(t, 2, result.BRank)
	require.Len(t, result.Lines, 3)

	edges := make(map[schema.MetricKey]string)
	for _, line := range result.Lines {
		edges[line.Metric] = line.Edge
	}
	assert.Equal(t, schema.EdgeTeamA, edges[schema.MetricWHIP])
	assert.Equal(t, schema.EdgeTeamB, edges[schema.MetricKRate])
	assert.Equal(t, schema.EdgeEven, edges[schema.MetricLastTen])

	assert.Equal(t, 1, result.Summary.AEdges)
	assert.Equal(t, 1, result.Summary.BEdges)
	assert.Equal(t, 1, result.Summary.EvenEdges)
	assert.Equal(t, "Dodgers", result.Summary.Favorite)
	assert.InDelta(t, 7.0, result.Summary.ScoreDelta, 0.001)
}

// TestBuildMatchup_CaseInsensitiveLookup verifies team names match listings
// regardless of case and padding.
func TestBuildMatchup_CaseInsensitiveLookup(t *testing.T) {
	ranked := []schema.RankedTeamScore{
		rankedFor(1, "Atlanta Braves", 70, map[schema.MetricKey]float64{schema.MetricWHIP: 7}),
		rankedFor(2, "New York Mets", 60, map[schema.MetricKey]float64{schema.MetricWHIP: 5}),
	}

	result, err := BuildMatchup(ranked, "atlanta braves", " new york mets ", 1)
	require.NoError(t, err)
	assert.Equal(t, "Atlanta Braves", result.TeamA)
	assert.Equal(t, "New York Mets", result.TeamB)
}

// TestBuildMatchup_TeamNotFound verifies unknown teams error out.
func TestBuildMatchup_TeamNotFound(t *testing.T) {
	ranked := []schema.RankedTeamScore{
		rankedFor(1, "Cubs", 50, nil),
	}

	_, err := BuildMatchup(ranked, "Cubs", "Expos", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expos")

	_, err = BuildMatchup(ranked, "Expos", "Cubs", 1)
	require.Error(t, err)
}

// TestBuildMatchup_DeadEven verifies identical scores yield no favorite.
func TestBuildMatchup_DeadEven(t *testing.T) {
	ranked := []schema.RankedTeamScore{
		rankedFor(1, "A", 50, map[schema.MetricKey]float64{schema.MetricWHIP: 5}),
		rankedFor(2, "B", 50, map[schema.MetricKey]float64{schema.MetricWHIP: 5}),
	}

	result, err := BuildMatchup(ranked, "A", "B", 1)
	require.NoError(t, err)
	assert.Empty(t, result.Summary.Favorite)
	assert.InDelta(t, 0.0, result.Summary.ScoreDelta, 0.001)
}

// TestBuildMatchup_SkipsAbsentMetrics verifies metrics on neither breakdown
// produce no line.
func TestBuildMatchup_SkipsAbsentMetrics(t *testing.T) {
	ranked := []schema.RankedTeamScore{
		rankedFor(1, "A", 60, map[schema.MetricKey]float64{schema.MetricWHIP: 6}),
		rankedFor(2, "B", 40, map[schema.MetricKey]float64{schema.MetricWHIP: 4}),
	}

	result, err := BuildMatchup(ranked, "A", "B", 1)
	require.NoError(t, err)
	require.Len(t, result.Lines, 1)
	assert.Equal(t, schema.MetricWHIP, result.Lines[0].Metric)
}

// TestFormatMetricValue covers the display formats per metric family.
func TestFormatMetricValue(t *testing.T) {
	stats := &schema.TeamStats{
		TeamRecord: schema.TeamRecord{Name: "X", RunDifferential: -12, LastTen: "6-4"},
		XFIP:       pf(3.847),
		DRS:        7,
	}

	assert.Equal(t, "3.8", formatMetricValue(stats, schema.MetricXFIP, 1))
	assert.Equal(t, "3.85", formatMetricValue(stats, schema.MetricXFIP, 2))
	assert.Equal(t, "7", formatMetricValue(stats, schema.MetricDRS, 1))
	assert.Equal(t, "-12", formatMetricValue(stats, schema.MetricRunDiff, 1))
	assert.Equal(t, "6-4", formatMetricValue(stats, schema.MetricLastTen, 1))
	assert.Equal(t, "-", formatMetricValue(stats, schema.MetricWRCPlus, 1))
}
