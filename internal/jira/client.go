package jira

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ciscomonkey/jira-scripts/internal/config"
)

// Client is a Jira REST API client. The reports only read, so the client
// only exposes GETs; authentication is basic auth with the user's API
// token, which is what Jira Cloud expects.
type Client struct {
	BaseURL    string
	Username   string
	Token      string
	HTTPClient *http.Client

	log *slog.Logger
}

// NewClient creates a Jira API client from the loaded configuration.
func NewClient(cfg config.Config) *Client {
	return &Client{
		BaseURL:  cfg.URL,
		Username: cfg.Username,
		Token:    cfg.Token,
		HTTPClient: &http.Client{
			Timeout: time.Second * 30,
		},
		log: slog.Default(),
	}
}

func (c *Client) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return slog.Default()
}

// get performs a GET request against the API and decodes the response into v.
func (c *Client) get(ctx context.Context, path string, query url.Values, v interface{}) error {
	apiURL := c.BaseURL + path
	if len(query) > 0 {
		apiURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.SetBasicAuth(c.Username, c.Token)
	req.Header.Set("Accept", "application/json")

	c.logger().Debug("jira request", "path", path)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API request failed with status %s: %s", resp.Status, string(body))
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
