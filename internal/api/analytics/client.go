package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/omarshaarawi/statsboard/internal/config"
)

// ErrRequestFailed is the single failure kind of the analytics backend:
// transport errors, non-2xx statuses and undecodable bodies all wrap it.
var ErrRequestFailed = errors.New("request failed")

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(cfg config.Analytics) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
	}
}

// URL resolves a backend path against the configured base URL. It is also
// used for navigation-only links that are never fetched as JSON.
func (c *Client) URL(endpoint string, params url.Values) string {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, result interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, params, result)
}

func (c *Client) Post(ctx context.Context, endpoint string, result interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, nil, result)
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, result interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.URL(endpoint, params), nil)
	if err != nil {
		return fmt.Errorf("%w: error creating request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: error making request: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status code: %d", ErrRequestFailed, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: error decoding response: %w", ErrRequestFailed, err)
	}

	return nil
}
