package core

import (
	"testing"

	"github.com/joycemanzada/mlbscore/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoreFor(name string, score float64) schema.TeamScore {
	return schema.TeamScore{
		TeamStats: schema.TeamStats{TeamRecord: schema.TeamRecord{Name: name}},
		Score:     score,
	}
}

// TestRankTeams_Descending verifies teams come back in score order.
func TestRankTeams_Descending(t *testing.T) {
	scores := []schema.TeamScore{
		scoreFor("Mid", 55),
		scoreFor("Top", 88),
		scoreFor("Low", 12),
	}

	ranked := RankTeams(scores, 0)

	require.Len(t, ranked, 3)
	assert.Equal(t, "Top", ranked[0].Name)
	assert.Equal(t, "Mid", ranked[1].Name)
	assert.Equal(t, "Low", ranked[2].Name)
}

// TestRankTeams_StableTies verifies tied teams keep their standings order.
func TestRankTeams_StableTies(t *testing.T) {
	scores := []schema.TeamScore{
		scoreFor("First", 50),
		scoreFor("Second", 50),
		scoreFor("Third", 50),
	}

	ranked := RankTeams(scores, 0)

	assert.Equal(t, "First", ranked[0].Name)
	assert.Equal(t, "Second", ranked[1].Name)
	assert.Equal(t, "Third", ranked[2].Name)
}

// TestRankTeams_Limit verifies limit truncation.
func TestRankTeams_Limit(t *testing.T) {
	scores := []schema.TeamScore{
		scoreFor("A", 10),
		scoreFor("B", 30),
		scoreFor("C", 20),
	}

	ranked := RankTeams(scores, 2)

	require.Len(t, ranked, 2)
	assert.Equal(t, "B", ranked[0].Name)
	assert.Equal(t, "C", ranked[1].Name)
}

// TestRankTeams_LimitLargerThanInput verifies no padding occurs.
func TestRankTeams_LimitLargerThanInput(t *testing.T) {
	scores := []schema.TeamScore{scoreFor("A", 10)}

	ranked := RankTeams(scores, 30)

	assert.Len(t, ranked, 1)
}

// TestRankTeams_ZeroLimitKeepsAll verifies a zero limit disables truncation.
func TestRankTeams_ZeroLimitKeepsAll(t *testing.T) {
	scores := []schema.TeamScore{
		scoreFor("A", 10),
		scoreFor("B", 30),
	}

	ranked := RankTeams(scores, 0)

	assert.Len(t, ranked, 2)
}
