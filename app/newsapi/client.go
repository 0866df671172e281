package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/lenormf/news2rss/app/metrics"
)

const DefaultBaseURL = "https://newsapi.org/v2"

// Client talks to the upstream article provider. Requests carry the caller's
// context; no retry or client-side deadline is applied here.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	apiKey    string
	userAgent string
}

func NewClient(apiKey string, userAgent string) *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{},
		apiKey:     apiKey,
		userAgent:  userAgent,
	}
}

// Everything performs a broad search across time.
func (c *Client) Everything(ctx context.Context, params url.Values) ([]Article, int, error) {
	return c.articles(ctx, "everything", params)
}

// TopHeadlines returns the current headlines.
func (c *Client) TopHeadlines(ctx context.Context, params url.Values) ([]Article, int, error) {
	return c.articles(ctx, "top-headlines", params)
}

// Sources returns the provider's source catalog.
func (c *Client) Sources(ctx context.Context) ([]Source, error) {
	var resp sourcesResponse
	if err := c.get(ctx, "top-headlines/sources", nil, &resp); err != nil {
		return nil, err
	}

	if resp.Status != "ok" {
		return nil, &APIError{Code: resp.Code, Message: resp.Message}
	}

	return resp.Sources, nil
}

func (c *Client) articles(ctx context.Context, endpoint string, params url.Values) ([]Article, int, error) {
	var resp articlesResponse
	if err := c.get(ctx, endpoint, params, &resp); err != nil {
		return nil, 0, err
	}

	if resp.Status != "ok" {
		return nil, 0, &APIError{Code: resp.Code, Message: resp.Message}
	}

	return resp.Articles, resp.TotalResults, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	requestURL := fmt.Sprintf("%s/%s", c.BaseURL, endpoint)
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	httpResp, err := c.HTTPClient.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	if err != nil {
		return fmt.Errorf("failed to reach provider: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, 10*1024*1024))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	slog.Debug("Upstream response", "endpoint", endpoint, "status", httpResp.StatusCode, "bytes", len(body))

	if err := json.Unmarshal(body, out); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return &APIError{StatusCode: httpResp.StatusCode, Message: http.StatusText(httpResp.StatusCode)}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
