package schema

// RankedTeamScore adds presentation data to a TeamScore.
type RankedTeamScore struct {
	Rank  int    `json:"rank"`
	Label string `json:"label"`
	TeamScore
}

// GetPlainLabel returns a plain text label indicating the strength tier
// based on the composite score.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return "Elite"
	case score >= 60:
		return "Strong"
	case score >= 40:
		return "Average"
	default:
		return "Weak"
	}
}

// EnrichScores adds rank and label to a sorted list of team scores.
// Ranks are contiguous and follow the input order, so callers must sort first.
func EnrichScores(scores []TeamScore) []RankedTeamScore {
	output := make([]RankedTeamScore, len(scores))
	for i, s := range scores {
		output[i] = RankedTeamScore{
			Rank:      i + 1,
			Label:     GetPlainLabel(s.Score),
			TeamScore: s,
		}
	}
	return output
}
