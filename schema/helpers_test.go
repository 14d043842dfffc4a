package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected string
	}{
		{"elite", 92.5, "Elite"},
		{"elite boundary", 80, "Elite"},
		{"strong", 71, "Strong"},
		{"strong boundary", 60, "Strong"},
		{"average", 50, "Average"},
		{"average boundary", 40, "Average"},
		{"weak", 39.9, "Weak"},
		{"zero", 0, "Weak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.score))
		})
	}
}

func TestEnrichScores(t *testing.T) {
	scores := []TeamScore{
		{TeamStats: TeamStats{TeamRecord: TeamRecord{Name: "Top"}}, Score: 85},
		{TeamStats: TeamStats{TeamRecord: TeamRecord{Name: "Mid"}}, Score: 55},
		{TeamStats: TeamStats{TeamRecord: TeamRecord{Name: "Low"}}, Score: 25},
	}

	ranked := EnrichScores(scores)

	require.Len(t, ranked, 3)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, "Elite", ranked[0].Label)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, "Average", ranked[1].Label)
	assert.Equal(t, 3, ranked[2].Rank)
	assert.Equal(t, "Weak", ranked[2].Label)
	assert.Equal(t, "Top", ranked[0].Name)
}

func TestEnrichScores_Empty(t *testing.T) {
	assert.Empty(t, EnrichScores(nil))
}
