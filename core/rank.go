package core

import (
	"sort"

	"github.com/joycemanzada/mlbscore/schema"
)

// RankTeams sorts teams by their composite score in descending order and
// returns the top 'limit' teams. The sort is stable so teams with equal
// scores keep their standings order.
func RankTeams(scores []schema.TeamScore, limit int) []schema.TeamScore {
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if limit > 0 && len(scores) > limit {
		return scores[:limit]
	}
	return scores
}
