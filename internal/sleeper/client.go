// Package sleeper is a thin client for the Sleeper fantasy-sports API. Failures
// are converted to UpstreamAPIFailure errors at this boundary; callers never see
// a raw HTTP error.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	apperrors "github.com/domgiordano/xomper-back-end/internal/errors"
)

const handlerName = "sleeper"

// Client calls the Sleeper public API.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
	logger  *slog.Logger
}

// New creates a Sleeper client with the given retry budget.
func New(baseURL string, retryMax int, logger *slog.Logger) *Client {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = retryMax
	httpClient.HTTPClient.Timeout = 30 * time.Second
	httpClient.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
	}
}

// GetUser fetches a Sleeper user by id or username.
func (c *Client) GetUser(ctx context.Context, userID string) (map[string]any, error) {
	var user map[string]any
	if err := c.get(ctx, fmt.Sprintf("/user/%s", userID), "GetUser", &user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetLeague fetches a Sleeper league by id.
func (c *Client) GetLeague(ctx context.Context, leagueID string) (map[string]any, error) {
	var league map[string]any
	if err := c.get(ctx, fmt.Sprintf("/league/%s", leagueID), "GetLeague", &league); err != nil {
		return nil, err
	}
	return league, nil
}

// GetLeagueUsers fetches the members of a league.
func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]map[string]any, error) {
	var users []map[string]any
	if err := c.get(ctx, fmt.Sprintf("/league/%s/users", leagueID), "GetLeagueUsers", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetLeagueRosters fetches the rosters of a league.
func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) ([]map[string]any, error) {
	var rosters []map[string]any
	if err := c.get(ctx, fmt.Sprintf("/league/%s/rosters", leagueID), "GetLeagueRosters", &rosters); err != nil {
		return nil, err
	}
	return rosters, nil
}

// FetchNFLPlayers fetches the full NFL player map, keyed by player id. The
// payload is large (several MB); callers should treat it as a bulk refresh, not
// a per-request lookup.
func (c *Client) FetchNFLPlayers(ctx context.Context) (map[string]map[string]any, error) {
	var players map[string]map[string]any
	if err := c.get(ctx, "/players/nfl", "FetchNFLPlayers", &players); err != nil {
		return nil, err
	}
	return players, nil
}

// get performs a GET against the API and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path, function string, out any) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return upstreamFailure(function, err.Error(), nil)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("sleeper request failed",
			slog.String("path", path), slog.String("error", err.Error()))
		return upstreamFailure(function, "sleeper api unreachable", map[string]any{"path": path})
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("sleeper returned non-200",
			slog.String("path", path), slog.Int("status", resp.StatusCode))
		return upstreamFailure(function, "sleeper api returned an error", map[string]any{
			"path":   path,
			"status": resp.StatusCode,
		})
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return upstreamFailure(function, "failed to read sleeper response", map[string]any{"path": path})
	}
	if err := json.Unmarshal(body, out); err != nil {
		return upstreamFailure(function, "failed to decode sleeper response", map[string]any{"path": path})
	}
	return nil
}

func upstreamFailure(function, message string, details map[string]any) error {
	err := apperrors.New(apperrors.KindUpstreamAPIFailure, message, handlerName, function)
	if details != nil {
		err = err.WithDetails(details)
	}
	return err
}
