// Package fetch retrieves raw records from the standings API and the
// leaderboard pages, normalizing them into schema types.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// browserUserAgent is sent on leaderboard requests; the leaderboard host
// rejects requests without a browser-like identity.
const browserUserAgent = "Mozilla/5.0"

// newHTTPClient returns the underlying transport for both readers.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getBody issues one GET and returns the response body. Transport failures
// and non-200 statuses are returned to the caller; readers never retry.
func getBody(ctx context.Context, client *http.Client, url, userAgent string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	return body, nil
}
