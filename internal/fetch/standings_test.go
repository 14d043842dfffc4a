package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const standingsFixture = `{
	"records": [
		{
			"teamRecords": [
				{
					"team": {"name": "New York Yankees"},
					"runDifferential": 120,
					"records": {"splitRecords": {"lastTen": {"wins": 7, "losses": 3}}}
				},
				{
					"team": {"name": "Baltimore Orioles"},
					"runDifferential": -15
				}
			]
		},
		{
			"teamRecords": [
				{
					"team": {"name": "Los Angeles Dodgers"},
					"records": {"splitRecords": {"lastTen": {"wins": 6, "losses": 4}}}
				}
			]
		}
	]
}`

func TestFetchStandings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(standingsFixture))
	}))
	defer server.Close()

	client := NewStandingsClient(5 * time.Second)
	records, err := client.FetchStandings(context.Background(), server.URL)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "New York Yankees", records[0].Name)
	assert.Equal(t, 120, records[0].RunDifferential)
	assert.Equal(t, "7-3", records[0].LastTen)

	// Missing last-ten split defaults to "0-0"
	assert.Equal(t, "Baltimore Orioles", records[1].Name)
	assert.Equal(t, -15, records[1].RunDifferential)
	assert.Equal(t, "0-0", records[1].LastTen)

	// Missing run differential defaults to 0; second league is flattened in
	assert.Equal(t, "Los Angeles Dodgers", records[2].Name)
	assert.Equal(t, 0, records[2].RunDifferential)
	assert.Equal(t, "6-4", records[2].LastTen)
}

func TestFetchStandings_EmptyRecords(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"records": []}`))
	}))
	defer server.Close()

	client := NewStandingsClient(5 * time.Second)
	records, err := client.FetchStandings(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFetchStandings_BadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance page</html>`))
	}))
	defer server.Close()

	client := NewStandingsClient(5 * time.Second)
	_, err := client.FetchStandings(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding standings response")
}

func TestFetchStandings_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewStandingsClient(5 * time.Second)
	_, err := client.FetchStandings(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 503")
}

func TestFetchStandings_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(standingsFixture))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewStandingsClient(5 * time.Second)
	_, err := client.FetchStandings(ctx, server.URL)
	require.Error(t, err)
}
