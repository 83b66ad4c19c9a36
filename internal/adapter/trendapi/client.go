// Package trendapi fetches social media trend summaries from the NLP
// analysis service.
package trendapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/coastwatch/threat-aggregation-service/internal/domain"
)

// Client implements aggregate.TrendSource against the analysis service's
// trending endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a trend API client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchTrends returns the current per-hazard trend summaries.
func (c *Client) FetchTrends(ctx context.Context) ([]domain.TrendSummary, error) {
	u := c.baseURL + "/api/v1/social/trending"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("trend API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("trend API error: status %d: %s", resp.StatusCode, body)
	}

	var trendResp response
	if err := json.NewDecoder(resp.Body).Decode(&trendResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug("fetched social trends",
		"trends", len(trendResp.Trending),
		"posts_analyzed", trendResp.TotalPostsAnalyzed)
	return trendResp.Trending, nil
}

// Analysis service response envelope.

type response struct {
	TotalPostsAnalyzed int                   `json:"total_posts_analyzed"`
	Trending           []domain.TrendSummary `json:"trending"`
}
