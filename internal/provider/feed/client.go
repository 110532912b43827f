// Package feed provides the HTTP client for the upstream sports data feed:
// schedule, per-game event lists, and per-game highlight clip lists.
//
// The feed uses Authorization header auth. Rate limiting is handled via a
// token bucket limiter so the notifier's burst of per-game fetches stays
// inside the provider quota.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/nordsport/matchfeed/internal/provider"
)

// Client is the shared HTTP client for all feed endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a feed HTTP client with rate limiting.
func NewClient(baseURL, apiKey string, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		logger:     logger,
	}
}

// envelope is the common feed response wrapper.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// Schedule returns the game summaries for a single date.
func (c *Client) Schedule(ctx context.Context, date time.Time) ([]provider.GameSummary, error) {
	params := url.Values{"date": {date.Format("2006-01-02")}}
	var games []provider.GameSummary
	if err := c.get(ctx, "/v2/schedule", params, &games); err != nil {
		return nil, err
	}
	return games, nil
}

// Game returns the summary record for one game.
func (c *Client) Game(ctx context.Context, gameID string) (*provider.GameSummary, error) {
	var game provider.GameSummary
	if err := c.get(ctx, "/v2/games/"+url.PathEscape(gameID), nil, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

// Events returns the raw event list for one game, already tagged by kind.
func (c *Client) Events(ctx context.Context, gameID string) ([]provider.Event, error) {
	var events []provider.Event
	if err := c.get(ctx, "/v2/games/"+url.PathEscape(gameID)+"/events", nil, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Clips returns the highlight clip list for one game.
func (c *Client) Clips(ctx context.Context, gameID string) ([]provider.VideoClip, error) {
	var clips []provider.VideoClip
	if err := c.get(ctx, "/v2/games/"+url.PathEscape(gameID)+"/videos", nil, &clips); err != nil {
		return nil, err
	}
	return clips, nil
}

// get performs a rate-limited GET request and decodes the data envelope.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("feed %s returned %d: %s", path, resp.StatusCode, truncate(body, 200))
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode %s payload: %w", path, err)
	}
	return nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
