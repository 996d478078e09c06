// Package base provides the HTTP fetch machinery underneath the Wikipedia
// API transport: pooled connections, bounded concurrency, retries with
// backoff, and a circuit breaker. The client library on top of it stays free
// of any resilience policy.
package base

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/infra"
)

const (
	// DefaultTimeout for a single API fetch including retries
	DefaultTimeout = 30 * time.Second

	// DefaultCacheTTL for cached response bodies
	DefaultCacheTTL = 5 * time.Minute

	// MaxConcurrentFetches limits parallel requests against one wiki.
	// Wikimedia asks clients to keep request concurrency low.
	MaxConcurrentFetches = 3

	defaultUserAgent = "wikipedia-mcp-server/1.0 (https://github.com/olgasafonova/wikipedia-mcp-server)"
)

// Client bundles the HTTP client with the resilience instruments the
// transport layer uses: response cache, request deduplication, circuit
// breaker, and a concurrency semaphore.
type Client struct {
	HTTPClient *http.Client
	Logger     *slog.Logger
	Cache      *infra.ResponseCache
	Dedup      *infra.Deduplicator
	Breaker    *infra.CircuitBreaker
	Semaphore  chan struct{}
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.HTTPClient = hc
	}
}

// WithLogger sets a custom logger
func WithLogger(l *slog.Logger) ClientOption {
	return func(c *Client) {
		c.Logger = l
	}
}

// WithCache sets a custom response cache
func WithCache(cache *infra.ResponseCache) ClientOption {
	return func(c *Client) {
		c.Cache = cache
	}
}

// WithTimeout overrides the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.HTTPClient.Timeout = d
	}
}

// WithPrivateHostGuard installs a dialer that refuses connections to
// private and link-local addresses. Deployments that accept an arbitrary
// wiki URL from the environment use this to keep the server from being
// pointed at internal infrastructure.
func WithPrivateHostGuard() ClientOption {
	return func(c *Client) {
		if t, ok := c.HTTPClient.Transport.(*http.Transport); ok {
			guarded := t.Clone()
			guarded.DialContext = guardedDialer.DialContext
			c.HTTPClient.Transport = guarded
		}
	}
}

// NewClient creates a base client with pooled transport and default
// resilience instruments
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		HTTPClient: newHTTPClient(DefaultTimeout),
		Logger:     slog.Default(),
		Cache:      infra.NewResponseCache(infra.DefaultMaxCacheEntries),
		Dedup:      infra.NewDeduplicator(),
		Breaker:    infra.NewCircuitBreaker(),
		Semaphore:  make(chan struct{}, MaxConcurrentFetches),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Close releases resources held by the client
func (c *Client) Close() {
	if c.Cache != nil {
		c.Cache.Close()
	}
}

// BreakerStats returns the current circuit breaker snapshot
func (c *Client) BreakerStats() infra.CircuitBreakerStats {
	return c.Breaker.Stats()
}

// AcquireSlot blocks until a fetch slot is free or the context is canceled
func (c *Client) AcquireSlot(ctx context.Context) error {
	select {
	case c.Semaphore <- struct{}{}:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("context canceled while waiting for request slot: %w", ctx.Err())
	}
}

// ReleaseSlot frees a fetch slot
func (c *Client) ReleaseSlot() {
	<-c.Semaphore
}

// checkBreaker returns an error when the circuit is open
func (c *Client) checkBreaker() error {
	if !c.Breaker.Allow() {
		stats := c.Breaker.Stats()
		return &infra.ErrCircuitOpen{
			RetryAt:  stats.LastFailure.Add(30 * time.Second),
			Failures: stats.ConsecutiveFails,
		}
	}
	return nil
}

// FetchConfig describes a single GET fetch
type FetchConfig struct {
	URL       string
	UserAgent string
	MaxRetry  int // defaults to 3
}

// Fetch performs a GET with circuit breaking, bounded concurrency, and
// retries. Server errors (5xx) and rate limiting (429, honoring Retry-After)
// are retried with quadratic backoff; other statuses are returned to the
// caller along with the body.
func (c *Client) Fetch(ctx context.Context, cfg FetchConfig) ([]byte, int, error) {
	if err := c.checkBreaker(); err != nil {
		return nil, 0, err
	}

	if err := c.AcquireSlot(ctx); err != nil {
		return nil, 0, err
	}
	defer c.ReleaseSlot()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.URL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	} else {
		req.Header.Set("User-Agent", defaultUserAgent)
	}

	maxRetry := cfg.MaxRetry
	if maxRetry <= 0 {
		maxRetry = 3
	}

	var lastErr error
	for attempt := 0; attempt < maxRetry; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(attempt*attempt) * 100 * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, 0, fmt.Errorf("context canceled during backoff: %w", ctx.Err())
			}
		}

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("request failed: %w", err)
			c.Logger.Warn("API fetch failed, retrying",
				"attempt", attempt+1,
				"url", cfg.URL,
				"error", err)
			continue
		}

		body, err := readAndClose(resp)
		if err != nil {
			lastErr = fmt.Errorf("failed to read response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
				if seconds, parseErr := strconv.Atoi(retryAfter); parseErr == nil {
					select {
					case <-time.After(time.Duration(seconds) * time.Second):
					case <-ctx.Done():
						return nil, 0, ctx.Err()
					}
					continue
				}
			}
			lastErr = fmt.Errorf("rate limited (429)")
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error %d: %s", resp.StatusCode, truncate(string(body), 200))
			continue
		}

		c.Breaker.RecordSuccess()
		return body, resp.StatusCode, nil
	}

	c.Breaker.RecordFailure()
	return nil, 0, lastErr
}

// readAndClose reads the response body and closes it
func readAndClose(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	return body, err
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// newHTTPClient creates an HTTP client with pooled transport settings
func newHTTPClient(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:          100,
		MaxIdleConnsPerHost:   20,
		MaxConnsPerHost:       50,
		IdleConnTimeout:       120 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 30 * time.Second,
		DisableCompression:    false,
		ForceAttemptHTTP2:     true,
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}
