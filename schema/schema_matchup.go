package schema

// Edge values for a matchup line.
const (
	EdgeTeamA = "a"
	EdgeTeamB = "b"
	EdgeEven  = "even"
)

// MatchupLine holds one metric's side-by-side values for two teams.
type MatchupLine struct {
	Metric   MetricKey `json:"metric"`
	AValue   string    `json:"a_value"` // Formatted raw value, "-" when the join left it empty
	BValue   string    `json:"b_value"`
	AContrib float64   `json:"a_contrib"` // Weighted score contribution for team A
	BContrib float64   `json:"b_contrib"`
	Edge     string    `json:"edge"` // EdgeTeamA, EdgeTeamB, or EdgeEven
}

// MatchupSummary has high-level deltas and counts for a matchup.
type MatchupSummary struct {
	AScore     float64 `json:"a_score"`
	BScore     float64 `json:"b_score"`
	ScoreDelta float64 `json:"score_delta"` // AScore - BScore
	AEdges     int     `json:"a_edges"`
	BEdges     int     `json:"b_edges"`
	EvenEdges  int     `json:"even_edges"`
	Favorite   string  `json:"favorite"` // Team name with the higher score, empty on a tie
}

// MatchupResult holds the per-metric lines and summary for two teams.
type MatchupResult struct {
	TeamA   string         `json:"team_a"`
	TeamB   string         `json:"team_b"`
	ARank   int            `json:"a_rank"`
	BRank   int            `json:"b_rank"`
	Lines   []MatchupLine  `json:"lines"`
	Summary MatchupSummary `json:"summary"`
}
