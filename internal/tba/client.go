// Package tba is a thin client for The Blue Alliance Read API v3. It covers
// only the endpoints the zebra tooling needs; there is no retry or backoff.
package tba

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/frcpath/zebraview/internal/pkg/config"
)

const DefaultBaseURL = "https://www.thebluealliance.com/api/v3"

const defaultTimeout = 15 * time.Second

// ErrNoData marks a 404 from TBA. On the zebra endpoint this is the normal
// "no tracking data for this match" answer, not a failure.
var ErrNoData = errors.New("tba: no data for request")

// StatusError reports a non-200, non-404 response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tba: unexpected status %d: %s", e.StatusCode, e.Body)
}

type Client struct {
	baseURL    string
	authKey    string
	userAgent  string
	httpClient *http.Client
}

func New(cfg *config.TBAConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "zebraview/1.0"
	}
	return &Client{
		baseURL:    baseURL,
		authKey:    cfg.AuthKey,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Status returns the TBA API status document.
func (c *Client) Status(ctx context.Context) (json.RawMessage, error) {
	return c.getRaw(ctx, "/status")
}

// Districts returns the district list for a year, verbatim.
func (c *Client) Districts(ctx context.Context, year int) (json.RawMessage, error) {
	return c.getRaw(ctx, fmt.Sprintf("/districts/%d", year))
}

// Events returns the full event list for a 4-digit year or a district key,
// verbatim so it can be written straight to an events file.
func (c *Client) Events(ctx context.Context, key string) (json.RawMessage, error) {
	return c.getRaw(ctx, eventsPath(key, ""))
}

// EventKeys returns just the event keys for a year or district key.
func (c *Client) EventKeys(ctx context.Context, key string) ([]string, error) {
	var keys []string
	if err := c.get(ctx, eventsPath(key, "/keys"), &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// MatchKeys returns all match keys of an event.
func (c *Client) MatchKeys(ctx context.Context, eventKey string) ([]string, error) {
	var keys []string
	if err := c.get(ctx, fmt.Sprintf("/event/%s/matches/keys", eventKey), &keys); err != nil {
		return nil, err
	}
	return keys, nil
}

// Zebra returns the Zebra MotionWorks payload for a match, verbatim. Returns
// ErrNoData when TBA has no tracking data for the match.
func (c *Client) Zebra(ctx context.Context, matchKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, fmt.Sprintf("/match/%s/zebra_motionworks", matchKey))
}

// MatchScores returns the detailed score document for a match, verbatim.
func (c *Client) MatchScores(ctx context.Context, matchKey string) (json.RawMessage, error) {
	return c.getRaw(ctx, fmt.Sprintf("/match/%s", matchKey))
}

// eventsPath picks the year or district form of the events endpoint.
func eventsPath(key, suffix string) string {
	if _, err := strconv.Atoi(key); err == nil {
		return fmt.Sprintf("/events/%s%s", key, suffix)
	}
	return fmt.Sprintf("/district/%s/events%s", key, suffix)
}

func (c *Client) getRaw(ctx context.Context, path string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("tba: creating request: %w", err)
	}
	req.Header.Set("X-TBA-Auth-Key", c.authKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tba: making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNoData
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("tba: decoding response: %w", err)
	}
	return nil
}
