package thesportsdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sports-gateway/internal/domain/events"
	"sports-gateway/internal/domain/leagues"
	"sports-gateway/internal/domain/teams"
	"sports-gateway/internal/providers"
	"sports-gateway/internal/providers/normalize"
)

// Config controls how the TheSportsDB client reaches the upstream API.
type Config struct {
	BaseURL    string
	APIKey     string
	RelayURL   string
	HTTPClient *http.Client
}

// Client fetches events and teams from TheSportsDB v1 and normalizes them.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a TheSportsDB client with the provided configuration.
func NewClient(cfg Config) *Client {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = defaultAPIKey
	}
	return &Client{
		baseURL: normalizeBaseURL(cfg.BaseURL),
		apiKey:  apiKey,
		httpClient: relayDoer{
			direct:   resolveHTTPClient(cfg.HTTPClient),
			relayURL: strings.TrimSpace(cfg.RelayURL),
		},
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string { return providerName }

// FetchEventsByDay retrieves one day of events for a league.
func (c *Client) FetchEventsByDay(ctx context.Context, league leagues.League, date string) ([]events.Highlight, error) {
	leagueID := league.ProviderID()
	if leagueID == "" {
		return nil, fmt.Errorf("%s: unsupported league %q", providerName, league)
	}
	var payload eventsResponse
	if err := c.getJSON(ctx, "eventsday.php", url.Values{"d": {date}, "l": {leagueID}}, &payload); err != nil {
		return nil, err
	}
	return normalize.SportsDB(league).NormalizeAll(league, payload.Events), nil
}

// SearchTeams finds teams by name across all sports.
func (c *Client) SearchTeams(ctx context.Context, name string) ([]teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "searchteams.php", url.Values{"t": {name}}, &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload.Teams), nil
}

// LookupTeam fetches one team by provider id.
func (c *Client) LookupTeam(ctx context.Context, id string) (teams.Team, error) {
	var payload teamsResponse
	if err := c.getJSON(ctx, "lookupteam.php", url.Values{"id": {id}}, &payload); err != nil {
		return teams.Team{}, err
	}
	found := mapTeams(payload.Teams)
	if len(found) == 0 {
		return teams.Team{}, fmt.Errorf("%s: team %q: %w", providerName, id, providers.ErrTeamNotFound)
	}
	return found[0], nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	return fmt.Sprintf("%s/%s/%s?%s", c.baseURL, url.PathEscape(c.apiKey), path, query.Encode())
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%s: decode %s: %w", providerName, path, err)
	}
	return nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode == http.StatusOK {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
	msg := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: c.parseRetryAfter(resp.Header.Get("Retry-After")),
			Remaining:  resp.Header.Get("X-RateLimit-Remaining"),
			Message:    msg,
		}
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%s: status %d: %w", providerName, resp.StatusCode, providers.ErrUnauthorized)
	default:
		return &providers.UpstreamError{Provider: providerName, StatusCode: resp.StatusCode, Body: msg}
	}
}

// parseRetryAfter accepts delta-seconds or an HTTP date.
func (c *Client) parseRetryAfter(v string) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(c.now()); d > 0 {
			return d
		}
	}
	return 0
}
