// Package schema has configs, models and shared constants for all parts of mlbscore.
package schema

// TeamRecord is one team's standings entry from the standings source.
type TeamRecord struct {
	Name            string `json:"name"`             // Team name, the sole join key across sources
	RunDifferential int    `json:"run_differential"` // Runs scored minus runs allowed (0 when absent)
	LastTen         string `json:"last_ten"`         // Record over the last ten games, "W-L" ("0-0" when absent)
}

// LeaderboardRow is one (team, value) pair parsed from a leaderboard page.
type LeaderboardRow struct {
	Team  string  `json:"team"`
	Value float64 `json:"value"`
}

// TeamStats is a TeamRecord left-joined with the three leaderboard sets and
// enriched with sampled scouting metrics. Joined metrics are pointers so an
// unmatched join stays nil instead of masquerading as zero.
type TeamStats struct {
	TeamRecord

	XFIP        *float64 `json:"xfip,omitempty"`         // Pitching efficiency (lower is better)
	WRCPlus     *float64 `json:"wrc_plus,omitempty"`     // Offensive run creation (higher is better)
	BullpenXFIP *float64 `json:"bullpen_xfip,omitempty"` // Bullpen efficiency (lower is better)

	WHIP       float64 `json:"whip"`        // Walks plus hits per inning (sampled)
	OPSVsHand  float64 `json:"ops_vs_hand"` // OPS vs opposite hand (sampled)
	KRate      float64 `json:"k_rate"`      // Strikeout rate percentage (sampled)
	DRS        int     `json:"drs"`         // Defensive runs saved (sampled)
	RestTravel int     `json:"rest_travel"` // Rest/travel burden, 0 is freshest (sampled)
}

// TeamScore is a TeamStats with its composite score and per-metric breakdown.
type TeamScore struct {
	TeamStats

	Score     float64               `json:"score"`
	Breakdown map[MetricKey]float64 `json:"breakdown,omitempty"` // Weighted contribution of each present metric
}
