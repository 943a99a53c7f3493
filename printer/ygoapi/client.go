package ygoapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	lru "github.com/hashicorp/golang-lru"
	"github.com/ygoproxy/ygoproxy/printer/config"
	"github.com/ygoproxy/ygoproxy/printer/logger"
	"golang.org/x/time/rate"
)

type ClientConfig struct {
	BaseURL           string
	HTTPClient        *http.Client
	Timeout           time.Duration
	MinInterval       time.Duration
	CacheTTL          time.Duration
	CacheSize         int
	MaxRetries        int
	RateLimitedDelay  time.Duration
	ServerErrorDelay  time.Duration
	NetworkErrorDelay time.Duration
}

func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:           config.DefaultAPIBaseURL,
		Timeout:           config.RequestTimeout,
		MinInterval:       config.MinRequestInterval,
		CacheTTL:          config.ResponseCacheTTL,
		CacheSize:         config.ResponseCacheSize,
		MaxRetries:        config.MaxRetries,
		RateLimitedDelay:  config.RateLimitedDelay,
		ServerErrorDelay:  config.ServerErrorDelay,
		NetworkErrorDelay: config.NetworkErrorDelay,
	}
}

// Client performs GET requests against the card database. Requests are
// paced at least MinInterval apart, successful payloads are cached by URL
// for CacheTTL, and 429, 5xx and transport failures are retried.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *lru.Cache
	ttl        time.Duration
	limiter    *rate.Limiter

	maxRetries        int
	rateLimitedDelay  time.Duration
	serverErrorDelay  time.Duration
	networkErrorDelay time.Duration

	now    func() time.Time
	logger *slog.Logger
}

type cacheEntry struct {
	payload   json.RawMessage
	fetchedAt time.Time
}

// CacheStats describes the response cache.
type CacheStats struct {
	Size int
	Keys []string
}

func NewClient(cfg ClientConfig) (*Client, error) {
	defaults := DefaultClientConfig()
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaults.BaseURL
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaults.CacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = defaults.CacheTTL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}

	cache, err := lru.New(cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create response cache: %w", err)
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	return &Client{
		baseURL:           strings.TrimRight(cfg.BaseURL, "/"),
		httpClient:        cfg.HTTPClient,
		cache:             cache,
		ttl:               cfg.CacheTTL,
		limiter:           rate.NewLimiter(limit, 1),
		maxRetries:        cfg.MaxRetries,
		rateLimitedDelay:  cfg.RateLimitedDelay,
		serverErrorDelay:  cfg.ServerErrorDelay,
		networkErrorDelay: cfg.NetworkErrorDelay,
		now:               time.Now,
		logger:            slog.With(slog.String("service", "ygoapi"), slog.String("type", "api")),
	}, nil
}

// retryPolicy chooses the next delay from the failure class of the last
// attempt: a fixed wait after 429, a linearly growing one after 5xx and a
// fixed one after transport errors.
type retryPolicy struct {
	client  *Client
	attempt int
	status  int
}

func (p *retryPolicy) NextBackOff() time.Duration {
	p.attempt++
	switch {
	case p.status == http.StatusTooManyRequests:
		return p.client.rateLimitedDelay
	case p.status >= 500:
		return p.client.serverErrorDelay * time.Duration(p.attempt)
	}
	return p.client.networkErrorDelay
}

func (p *retryPolicy) Reset() {
	p.attempt = 0
	p.status = 0
}

// retryable reports whether a failed attempt with the given status is
// worth repeating. Zero means no response was received.
func retryable(status int) bool {
	return status == 0 || status == http.StatusTooManyRequests || status >= 500
}

// Get fetches endpoint (a path with optional query, relative to the base
// URL) and returns the raw JSON payload.
func (c *Client) Get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	key := c.url(endpoint)

	if payload, ok := c.cached(key); ok {
		return payload, nil
	}

	policy := &retryPolicy{client: c}
	var (
		payload  json.RawMessage
		lastFail error
	)
	attempt := func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return backoff.Permanent(err)
		}

		body, status, err := c.do(ctx, key)
		switch {
		case err == nil:
			payload = body
			return nil
		case ctx.Err() != nil:
			return backoff.Permanent(ctx.Err())
		case !retryable(status):
			return backoff.Permanent(err)
		}
		policy.status = status
		lastFail = err
		return err
	}
	notify := func(err error, delay time.Duration) {
		c.logger.Debug("Retrying request",
			slog.String("url", key),
			slog.Int("attempt", policy.attempt),
			slog.Duration("delay", delay),
			slog.Any("error", err))
	}

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(c.maxRetries)), ctx)
	if err := backoff.RetryNotify(attempt, b, notify); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if lastFail != nil && err == lastFail {
			return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, c.maxRetries+1, err)
		}
		return nil, err
	}

	c.cache.Add(key, cacheEntry{payload: payload, fetchedAt: c.now()})
	return payload, nil
}

// do issues one request. A zero status means no response was received.
func (c *Client) do(ctx context.Context, url string) (json.RawMessage, int, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("request failed: %w", err)
		logger.LogRequest(url, 0, time.Since(start), err)
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response: %w", err)
		logger.LogRequest(url, resp.StatusCode, time.Since(start), err)
		return nil, 0, err
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		err = &retryableError{code: resp.StatusCode, url: url}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		err = &StatusError{Code: resp.StatusCode, URL: url, Body: strings.TrimSpace(string(body))}
	case !json.Valid(body):
		err = fmt.Errorf("invalid JSON from %s", url)
	}
	logger.LogRequest(url, resp.StatusCode, time.Since(start), err)
	if err != nil {
		return nil, resp.StatusCode, err
	}
	return json.RawMessage(body), resp.StatusCode, nil
}

func (c *Client) cached(key string) (json.RawMessage, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	entry := value.(cacheEntry)
	if c.now().Sub(entry.fetchedAt) >= c.ttl {
		c.cache.Remove(key)
		return nil, false
	}
	return entry.payload, true
}

// ClearCache drops every cached response.
func (c *Client) ClearCache() {
	c.cache.Purge()
}

// CacheStats lists cached URLs from least to most recently used.
func (c *Client) CacheStats() CacheStats {
	keys := c.cache.Keys()
	stats := CacheStats{Size: len(keys), Keys: make([]string, 0, len(keys))}
	for _, k := range keys {
		stats.Keys = append(stats.Keys, k.(string))
	}
	return stats
}

func (c *Client) url(endpoint string) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	return c.baseURL + endpoint
}
