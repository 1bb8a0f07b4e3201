package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"mlb-scores-service/internal/domain"
	"mlb-scores-service/internal/providers"
)

// Config controls how the client reaches the upstream endpoints.
type Config struct {
	BaseURL         string
	ScheduleBaseURL string
	HTTPClient      *http.Client
}

// Client fetches MLB Stats API documents and maps them to domain models.
// It performs single-shot fetches only; retry is the scheduler's concern via
// its next cycle.
type Client struct {
	baseURL         string
	scheduleBaseURL string
	httpClient      httpDoer
}

// NewClient constructs a Client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:         normalizeBaseURL(cfg.BaseURL, defaultBaseURL),
		scheduleBaseURL: normalizeBaseURL(cfg.ScheduleBaseURL, defaultScheduleBaseURL),
		httpClient:      resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchSchedule retrieves the scoreboard for the given YYYY-MM-DD date.
func (c *Client) FetchSchedule(ctx context.Context, date string) (domain.ScheduleSnapshot, error) {
	var payload scoreboardResponse
	if err := c.getJSON(ctx, c.scheduleURL(date), &payload); err != nil {
		return domain.ScheduleSnapshot{}, err
	}
	return mapSchedule(date, payload), nil
}

// FetchFeed retrieves the feed/live document for one game.
func (c *Client) FetchFeed(ctx context.Context, gameID string) (*domain.GameFeed, error) {
	var payload feedResponse
	u := c.baseURL + fmt.Sprintf(feedPathFormat, url.PathEscape(gameID))
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	return mapFeed(payload), nil
}

// FetchPlayByPlay retrieves the playByPlay document for one game.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID string) (*domain.PlaySnapshot, error) {
	var payload playByPlayResponse
	u := c.baseURL + fmt.Sprintf(playByPlayPathFormat, url.PathEscape(gameID))
	if err := c.getJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	return mapPlayByPlay(payload), nil
}

func (c *Client) scheduleURL(date string) string {
	q := url.Values{}
	q.Set("stitch_env", "prod")
	q.Set("sortTemplate", "4")
	q.Set("sportId", "1")
	q.Set("startDate", date)
	q.Set("endDate", date)
	for _, gt := range gameTypes {
		q.Add("gameType", gt)
	}
	q.Set("language", "en")
	for _, id := range leagueIDs {
		q.Add("leagueId", id)
	}
	q.Set("contextTeamId", "")
	return c.scheduleBaseURL + "?" + q.Encode()
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &providers.FetchError{URL: rawURL, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &providers.FetchError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 512))
		return &providers.FetchError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	if decodeErr := json.NewDecoder(resp.Body).Decode(out); decodeErr != nil {
		return &providers.FetchError{URL: rawURL, Err: decodeErr}
	}
	return nil
}
