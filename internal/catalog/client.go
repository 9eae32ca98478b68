// Package catalog talks to the TVMaze show catalog.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/tvshelf/internal/domain"
	"golang.org/x/time/rate"
)

const (
	DefaultBaseURL = "https://api.tvmaze.com"

	defaultTimeout    = 10 * time.Second
	defaultMaxRetries = 3
	baseRetryDelay    = 500 * time.Millisecond
)

// Options configures a Client. Zero values fall back to defaults;
// a negative MaxRetries disables retries.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	RateLimit  float64 // Requests per second; 0 disables limiting
	RateBurst  int
}

// Client implements domain.CatalogClient for TVMaze
type Client struct {
	baseURL    string
	maxRetries int
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a new TVMaze API client
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	switch {
	case opts.MaxRetries == 0:
		opts.MaxRetries = defaultMaxRetries
	case opts.MaxRetries < 0:
		opts.MaxRetries = 0
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if opts.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.RateBurst, 1))
	}

	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		maxRetries: opts.MaxRetries,
		httpClient: &http.Client{Timeout: opts.Timeout},
		limiter:    limiter,
		logger:     logger,
	}
}

// doRequest performs a GET against the catalog.
// Retries with exponential backoff on 5xx and 429 responses.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		if attempt > 0 {
			delay := baseRetryDelay * time.Duration(1<<(attempt-1)) // 500ms, 1s, 2s
			c.logger.Debug("retrying request", "attempt", attempt, "delay", delay, "url", reqURL)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		c.logger.Debug("catalog request", "url", reqURL, "attempt", attempt)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			c.logger.Error("catalog request failed", "error", err)
			return nil, fmt.Errorf("%w: %v", domain.ErrServerOffline, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		switch {
		case resp.StatusCode == http.StatusNotFound:
			return nil, domain.ErrNotFound

		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = domain.ErrRateLimited
			c.logger.Warn("catalog rate limited, will retry", "attempt", attempt, "path", path)
			continue

		case resp.StatusCode >= 500 && resp.StatusCode < 600:
			lastErr = fmt.Errorf("server error: %d", resp.StatusCode)
			c.logger.Warn("catalog server error, will retry",
				"status", resp.StatusCode,
				"body", string(body),
				"attempt", attempt,
				"maxRetries", c.maxRetries,
				"path", path,
			)
			continue

		case resp.StatusCode != http.StatusOK:
			c.logger.Error("catalog request error", "status", resp.StatusCode, "body", string(body))
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		return body, nil
	}

	c.logger.Error("catalog request failed after retries", "error", lastErr, "url", reqURL)
	return nil, lastErr
}

// Search finds shows by free text. A blank query matches nothing and
// makes no request.
func (c *Client) Search(ctx context.Context, text string) ([]domain.Show, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return []domain.Show{}, nil
	}

	query := url.Values{}
	query.Set("q", text)

	body, err := c.doRequest(ctx, "/search/shows", query)
	if err != nil {
		return nil, err
	}

	var results []SearchResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}

	shows := MapSearchResults(results)
	c.logger.Debug("search complete", "query", text, "results", len(shows))
	return shows, nil
}

// GetShow returns a single show
func (c *Client) GetShow(ctx context.Context, id int) (*domain.Show, error) {
	body, err := c.doRequest(ctx, "/shows/"+strconv.Itoa(id), nil)
	if err != nil {
		return nil, err
	}

	var dto ShowDTO
	if err := json.Unmarshal(body, &dto); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}

	show := MapShow(dto)
	return &show, nil
}

// GetEpisodes returns all episodes of a show in airing order
func (c *Client) GetEpisodes(ctx context.Context, showID int) ([]domain.Episode, error) {
	body, err := c.doRequest(ctx, fmt.Sprintf("/shows/%d/episodes", showID), nil)
	if err != nil {
		return nil, err
	}

	var dtos []EpisodeDTO
	if err := json.Unmarshal(body, &dtos); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadResponse, err)
	}

	return MapEpisodes(dtos), nil
}
