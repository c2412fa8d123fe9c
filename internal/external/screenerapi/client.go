package screenerapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/wonny/techscreener/internal/contracts"
	"github.com/wonny/techscreener/pkg/httputil"
	"github.com/wonny/techscreener/pkg/logger"
)

// Client talks to the screener backend REST API
// ⭐ SSOT: 백엔드 /stats, /stocks, /sectors, /screen 호출은 이 클라이언트에서만
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

// NewClient creates a new screener API client
func NewClient(httpClient *httputil.Client, baseURL string, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    baseURL,
	}
}

// StatusError is returned for non-2xx responses
type StatusError struct {
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status code: %d", e.Path, e.StatusCode)
}

// GetStats fetches summary statistics
// GET /stats
func (c *Client) GetStats(ctx context.Context) (*contracts.Stats, error) {
	var stats contracts.Stats
	if err := c.getJSON(ctx, "/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetStocks fetches the full, unfiltered stock list
// GET /stocks
func (c *Client) GetStocks(ctx context.Context) ([]contracts.Stock, error) {
	var stocks []contracts.Stock
	if err := c.getJSON(ctx, "/stocks", &stocks); err != nil {
		return nil, err
	}
	if stocks == nil {
		stocks = []contracts.Stock{}
	}
	return stocks, nil
}

// GetSectors fetches the distinct sector names
// GET /sectors
func (c *Client) GetSectors(ctx context.Context) ([]string, error) {
	var sectors []string
	if err := c.getJSON(ctx, "/sectors", &sectors); err != nil {
		return nil, err
	}
	if sectors == nil {
		sectors = []string{}
	}
	return sectors, nil
}

// Screen asks the backend for the stocks matching criteria
// POST /screen
func (c *Client) Screen(ctx context.Context, criteria contracts.FilterCriteria) ([]contracts.Stock, error) {
	resp, err := c.httpClient.PostJSON(ctx, c.baseURL+"/screen", criteria)
	if err != nil {
		return nil, fmt.Errorf("/screen: HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	var stocks []contracts.Stock
	if err := decode(resp, "/screen", &stocks); err != nil {
		return nil, err
	}
	if stocks == nil {
		stocks = []contracts.Stock{}
	}
	return stocks, nil
}

// getJSON fetches path and decodes the JSON body into dest
func (c *Client) getJSON(ctx context.Context, path string, dest interface{}) error {
	resp, err := c.httpClient.Get(ctx, c.baseURL+path)
	if err != nil {
		return fmt.Errorf("%s: HTTP request failed: %w", path, err)
	}
	defer resp.Body.Close()

	return decode(resp, path, dest)
}

func decode(resp *http.Response, path string, dest interface{}) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", path, err)
	}
	return nil
}
