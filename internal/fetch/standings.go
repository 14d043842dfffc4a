package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
)

// defaultLastTen is used when a team's last-ten split is absent or malformed.
const defaultLastTen = "0-0"

// standingsResponse mirrors the nested shape of the standings endpoint.
// Optional fields are pointers so missing keys degrade to defaults instead
// of silently reading zero values from the wrong place.
type standingsResponse struct {
	Records []struct {
		TeamRecords []struct {
			Team struct {
				Name string `json:"name"`
			} `json:"team"`
			RunDifferential *int `json:"runDifferential"`
			Records         *struct {
				SplitRecords *struct {
					LastTen *struct {
						Wins   int `json:"wins"`
						Losses int `json:"losses"`
					} `json:"lastTen"`
				} `json:"splitRecords"`
			} `json:"records"`
		} `json:"teamRecords"`
	} `json:"records"`
}

// StandingsClientImpl reads the standings endpoint over HTTP.
type StandingsClientImpl struct {
	client *http.Client
}

// NewStandingsClient returns a StandingsClient with the given request timeout.
func NewStandingsClient(timeout time.Duration) *StandingsClientImpl {
	return &StandingsClientImpl{client: newHTTPClient(timeout)}
}

var _ contract.StandingsClient = (*StandingsClientImpl)(nil) // Compile-time check

// FetchStandings issues one GET to the standings endpoint and returns one
// TeamRecord per team across all leagues. Missing run differentials default
// to 0 and missing last-ten splits default to "0-0"; only transport and
// top-level decode failures are returned as errors.
func (c *StandingsClientImpl) FetchStandings(ctx context.Context, url string) ([]schema.TeamRecord, error) {
	body, err := getBody(ctx, c.client, url, "")
	if err != nil {
		return nil, err
	}

	var decoded standingsResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding standings response: %w", err)
	}

	var records []schema.TeamRecord
	for _, league := range decoded.Records {
		for _, team := range league.TeamRecords {
			record := schema.TeamRecord{
				Name:    team.Team.Name,
				LastTen: defaultLastTen,
			}
			if team.RunDifferential != nil {
				record.RunDifferential = *team.RunDifferential
			}
			if team.Records != nil && team.Records.SplitRecords != nil && team.Records.SplitRecords.LastTen != nil {
				l10 := team.Records.SplitRecords.LastTen
				record.LastTen = fmt.Sprintf("%d-%d", l10.Wins, l10.Losses)
			}
			records = append(records, record)
		}
	}
	return records, nil
}
