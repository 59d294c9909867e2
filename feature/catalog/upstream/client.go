package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"catalog-sync/core/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// MaxResponseSize caps a single page body.
	MaxResponseSize = 32 * 1024 * 1024

	// maxErrorBody caps how much of an error body is echoed into the error.
	maxErrorBody = 512
)

// ErrUnsupportedFilter is returned when an updated-since filter is requested
// for a collection that has no update timestamp.
var ErrUnsupportedFilter = errors.New("updated-since filter not supported")

// Fetcher retrieves every record of a collection, following pagination.
// A non-nil since restricts the result to records updated at or after it.
type Fetcher interface {
	FetchAll(ctx context.Context, collection Collection, since *time.Time) ([]json.RawMessage, error)
}

// Client is the HTTP implementation of Fetcher.
type Client struct {
	http     *http.Client
	baseURL  string
	token    string
	pageSize int
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// NewClient creates a new upstream API client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	var limiter *rate.Limiter
	if cfg.RateLimitRPS > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), 1)
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 250
	}

	return &Client{
		http: &http.Client{
			Timeout: cfg.Timeout(),
			Transport: &http.Transport{
				MaxIdleConns:    10,
				IdleConnTimeout: 90 * time.Second,
			},
		},
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		token:    cfg.AccessToken,
		pageSize: pageSize,
		limiter:  limiter,
		logger:   logger,
	}
}

// FetchAll retrieves every page of collection and returns the raw records in
// upstream order.
func (c *Client) FetchAll(ctx context.Context, collection Collection, since *time.Time) ([]json.RawMessage, error) {
	if since != nil && !collection.SupportsSince() {
		return nil, fmt.Errorf("%s: %w", collection, ErrUnsupportedFilter)
	}

	var (
		all    []json.RawMessage
		cursor string
		pages  int
	)
	for {
		records, next, err := c.fetchPage(ctx, collection, cursor, since)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch %s page %d: %w", collection, pages+1, err)
		}
		pages++
		all = append(all, records...)

		if next == "" {
			break
		}
		if next == cursor {
			return nil, fmt.Errorf("failed to fetch %s: upstream repeated cursor %q", collection, next)
		}
		cursor = next
	}

	c.logger.Debug("Fetched upstream collection",
		zap.String("collection", string(collection)),
		zap.Int("records", len(all)),
		zap.Int("pages", pages),
		zap.Bool("delta", since != nil))

	return all, nil
}

func (c *Client) fetchPage(ctx context.Context, collection Collection, cursor string, since *time.Time) ([]json.RawMessage, string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL(collection, cursor, since), nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(string(collection), "error", time.Since(start).Seconds())
		return nil, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(string(collection), strconv.Itoa(resp.StatusCode), time.Since(start).Seconds())

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response body: %w", err)
	}
	if len(body) > MaxResponseSize {
		return nil, "", fmt.Errorf("response body too large (max %d bytes)", MaxResponseSize)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := string(body)
		if len(snippet) > maxErrorBody {
			snippet = snippet[:maxErrorBody]
		}
		return nil, "", fmt.Errorf("upstream returned status %d: %s", resp.StatusCode, strings.TrimSpace(snippet))
	}

	var page map[string]json.RawMessage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", fmt.Errorf("failed to decode page: %w", err)
	}

	var records []json.RawMessage
	if raw, ok := page[collection.Field()]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, "", fmt.Errorf("failed to decode %s records: %w", collection.Field(), err)
		}
	}

	var next string
	if raw, ok := page["cursor"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &next); err != nil {
			return nil, "", fmt.Errorf("failed to decode cursor: %w", err)
		}
	}

	return records, next, nil
}

func (c *Client) pageURL(collection Collection, cursor string, since *time.Time) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.pageSize))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	if since != nil {
		q.Set("updated_at_min", since.UTC().Format(time.RFC3339))
	}
	return c.baseURL + "/" + collection.Path() + "?" + q.Encode()
}
