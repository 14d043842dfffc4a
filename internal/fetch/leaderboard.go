package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/joycemanzada/mlbscore/internal/contract"
	"github.com/joycemanzada/mlbscore/schema"
	"golang.org/x/net/html"
)

// tableClassMarker identifies the leaderboard table inside the page.
const tableClassMarker = "rgMasterTable"

// teamHeader is the column header holding the team name on every leaderboard page.
const teamHeader = "Team"

// Shape errors for leaderboard pages. Callers that prefer the degrade-to-empty
// policy can match on ErrLeaderboardShape and continue with no rows.
var (
	ErrLeaderboardShape = errors.New("leaderboard page shape mismatch")
	ErrNoTable          = fmt.Errorf("%w: no table with class %q", ErrLeaderboardShape, tableClassMarker)
)

// columnError reports a header that could not be located in the table.
func columnError(header string) error {
	return fmt.Errorf("%w: column %q not found in header row", ErrLeaderboardShape, header)
}

// LeaderboardClientImpl reads a leaderboard page over HTTP and parses its table.
type LeaderboardClientImpl struct {
	client *http.Client
}

// NewLeaderboardClient returns a LeaderboardClient with the given request timeout.
func NewLeaderboardClient(timeout time.Duration) *LeaderboardClientImpl {
	return &LeaderboardClientImpl{client: newHTTPClient(timeout)}
}

var _ contract.LeaderboardClient = (*LeaderboardClientImpl)(nil) // Compile-time check

// FetchLeaderboard issues one GET with a browser identity header and parses
// the page's leaderboard table. Team and metric columns are resolved by
// header name; a missing table or column returns an ErrLeaderboardShape
// error. Rows whose metric cell fails float parsing are silently dropped.
func (c *LeaderboardClientImpl) FetchLeaderboard(ctx context.Context, src contract.LeaderboardSource) ([]schema.LeaderboardRow, error) {
	body, err := getBody(ctx, c.client, src.URL, browserUserAgent)
	if err != nil {
		return nil, err
	}
	return ParseLeaderboard(body, src.StatHeader)
}

// ParseLeaderboard extracts (team, value) rows from a leaderboard page body.
// Exposed separately so tests and offline tooling can parse saved pages.
func ParseLeaderboard(body []byte, statHeader string) ([]schema.LeaderboardRow, error) {
	doc, err := html.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing leaderboard HTML: %w", err)
	}

	table := findTableByClass(doc, tableClassMarker)
	if table == nil {
		return nil, ErrNoTable
	}

	rows := collectRows(table)
	if len(rows) == 0 {
		return nil, ErrNoTable
	}

	// The first row is the header; resolve columns by name instead of
	// trusting fixed positions.
	header := cellTexts(rows[0])
	teamCol := indexOfHeader(header, teamHeader)
	if teamCol < 0 {
		return nil, columnError(teamHeader)
	}
	statCol := indexOfHeader(header, statHeader)
	if statCol < 0 {
		return nil, columnError(statHeader)
	}

	var results []schema.LeaderboardRow
	for _, row := range rows[1:] {
		cells := cellTexts(row)
		if len(cells) <= teamCol || len(cells) <= statCol {
			continue
		}
		team := strings.TrimSpace(cells[teamCol])
		value, err := strconv.ParseFloat(strings.TrimSpace(cells[statCol]), 64)
		if err != nil || team == "" {
			continue
		}
		results = append(results, schema.LeaderboardRow{Team: team, Value: value})
	}
	return results, nil
}

// findTableByClass walks the node tree for the first table whose class
// attribute contains the marker.
func findTableByClass(n *html.Node, marker string) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" {
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(attr.Val, marker) {
				return n
			}
		}
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findTableByClass(child, marker); found != nil {
			return found
		}
	}
	return nil
}

// collectRows gathers every tr node under the table, including rows nested
// in thead/tbody sections.
func collectRows(table *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			rows = append(rows, n)
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(table)
	return rows
}

// cellTexts returns the text content of each td/th cell in a row.
func cellTexts(row *html.Node) []string {
	var cells []string
	for child := row.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.ElementNode && (child.Data == "td" || child.Data == "th") {
			cells = append(cells, nodeText(child))
		}
	}
	return cells
}

// nodeText concatenates all text beneath a node, covering cells that wrap
// their content in links or spans.
func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		sb.WriteString(nodeText(child))
	}
	return sb.String()
}

// indexOfHeader finds a header cell by trimmed, case-insensitive match.
func indexOfHeader(header []string, name string) int {
	for i, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), name) {
			return i
		}
	}
	return -1
}
