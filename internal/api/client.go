package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is where the backend serves its v1 API in development.
const DefaultBaseURL = "http://localhost:8000/api/v1"

// Endpoint paths, relative to the base URL.
const (
	PathLiveCalls  = "/dashboard/live-calls"
	PathStats      = "/dashboard/stats"
	PathCallVolume = "/dashboard/call-volume"
)

// Client reads the dashboard endpoints over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for baseURL. A zero timeout leaves requests
// bounded only by their context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the normalized base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// LiveCalls fetches the live-calls feed.
func (c *Client) LiveCalls(ctx context.Context) ([]Call, error) {
	var calls []Call
	if err := c.get(ctx, PathLiveCalls, &calls); err != nil {
		return nil, err
	}
	return calls, nil
}

// Stats fetches the aggregate stats block.
func (c *Client) Stats(ctx context.Context) (DashboardStats, error) {
	var stats DashboardStats
	if err := c.get(ctx, PathStats, &stats); err != nil {
		return DashboardStats{}, err
	}
	return stats, nil
}

// CallVolume fetches the daily call-volume series.
func (c *Client) CallVolume(ctx context.Context) ([]CallVolumePoint, error) {
	var points []CallVolumePoint
	if err := c.get(ctx, PathCallVolume, &points); err != nil {
		return nil, err
	}
	return points, nil
}

// get issues a bare GET and decodes the body into v. The status code is not
// inspected; a body that does not decode into v is the failure.
func (c *Client) get(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}
