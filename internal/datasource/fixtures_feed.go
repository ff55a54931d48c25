package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/yourusername/squadra/internal/models"
)

// feedFixture is one row of the federation calendar feed
type feedFixture struct {
	Opponent    string `json:"opponent"`
	Kickoff     string `json:"kickoff"` // RFC 3339
	Home        bool   `json:"home"`
	Venue       string `json:"venue"`
	Competition string `json:"competition"`
}

type feedResponse struct {
	Season   string        `json:"season"`
	Fixtures []feedFixture `json:"fixtures"`
}

// FixturesFeedClient fetches the season calendar from the federation feed
type FixturesFeedClient struct {
	baseURL string
	apiKey  string
	http    *RateLimitedHTTPClient
}

// NewFixturesFeedClient creates a new fixtures feed client
func NewFixturesFeedClient(baseURL, apiKey string, httpClient *RateLimitedHTTPClient) *FixturesFeedClient {
	return &FixturesFeedClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// FetchFixtures retrieves all scheduled fixtures for a season
func (c *FixturesFeedClient) FetchFixtures(ctx context.Context, season string) ([]*models.Match, error) {
	endpoint, err := url.Parse(c.baseURL + "/fixtures")
	if err != nil {
		return nil, fmt.Errorf("invalid feed URL: %w", err)
	}
	q := endpoint.Query()
	q.Set("season", season)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build feed request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("feed request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feed returned status %d: %s", resp.StatusCode, string(body))
	}

	return parseFixtures(resp.Body)
}

// parseFixtures decodes a feed response into scheduled matches. Rows with
// an unparseable kickoff are skipped rather than failing the whole import.
func parseFixtures(r io.Reader) ([]*models.Match, error) {
	var feed feedResponse
	if err := json.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("failed to decode feed response: %w", err)
	}

	matches := make([]*models.Match, 0, len(feed.Fixtures))
	for _, f := range feed.Fixtures {
		kickoff, err := time.Parse(time.RFC3339, f.Kickoff)
		if err != nil {
			continue
		}
		matches = append(matches, &models.Match{
			ID:          uuid.New(),
			Kickoff:     kickoff,
			Opponent:    f.Opponent,
			Home:        f.Home,
			Venue:       f.Venue,
			Competition: f.Competition,
			Status:      models.MatchStatusScheduled,
		})
	}

	return matches, nil
}
