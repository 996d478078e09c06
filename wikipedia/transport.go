package wikipedia

import (
	"context"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
)

// Getter is the transport capability the client depends on. An
// implementation performs one HTTP GET against baseURL with the given query
// parameters, optionally identifying itself with userAgent, and returns the
// response body as text.
//
// Implementations fail with *NetworkError for anything that keeps a valid
// body from arriving (bad URL, connection failure, error status) and
// *EncodingError when the body is not valid UTF-8 text. Whatever retry,
// caching, or pooling policy an implementation wants is its own business;
// the client never retries on top of it.
type Getter interface {
	Get(ctx context.Context, baseURL string, params url.Values, userAgent string) (string, error)
}

// buildRequestURL combines the endpoint and encoded parameters into the
// final request URL
func buildRequestURL(baseURL string, params url.Values) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	u.RawQuery = params.Encode()
	return u.String(), nil
}

// HTTPGetter is the default transport: net/http with pooled connections,
// bounded concurrency, retries with backoff, a circuit breaker, in-flight
// request coalescing, and an optional response cache.
type HTTPGetter struct {
	client   *base.Client
	maxRetry int
	cacheTTL time.Duration // zero disables caching
}

// HTTPGetterOption configures an HTTPGetter
type HTTPGetterOption func(*HTTPGetter)

// WithBaseClient replaces the underlying fetch client, for custom timeouts,
// logging, or the private-host guard
func WithBaseClient(b *base.Client) HTTPGetterOption {
	return func(g *HTTPGetter) {
		g.client = b
	}
}

// WithCacheTTL enables response caching with the given TTL
func WithCacheTTL(ttl time.Duration) HTTPGetterOption {
	return func(g *HTTPGetter) {
		g.cacheTTL = ttl
	}
}

// WithMaxRetry sets how many attempts a single Get makes
func WithMaxRetry(n int) HTTPGetterOption {
	return func(g *HTTPGetter) {
		g.maxRetry = n
	}
}

// NewHTTPGetter creates the default transport. Caching is off until enabled
// with WithCacheTTL.
func NewHTTPGetter(opts ...HTTPGetterOption) *HTTPGetter {
	g := &HTTPGetter{
		client:   base.NewClient(),
		maxRetry: 3,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Get implements Getter
func (g *HTTPGetter) Get(ctx context.Context, baseURL string, params url.Values, userAgent string) (string, error) {
	fullURL, err := buildRequestURL(baseURL, params)
	if err != nil {
		return "", &NetworkError{URL: baseURL, Err: err}
	}

	if g.cacheTTL > 0 {
		if body, ok := g.client.Cache.Get(fullURL); ok {
			metrics.RecordCacheAccess(true)
			return body, nil
		}
		metrics.RecordCacheAccess(false)
	}

	body, _, err := g.client.Dedup.Do(ctx, fullURL, func() (string, error) {
		return g.fetch(ctx, fullURL, userAgent)
	})
	if err != nil {
		return "", err
	}

	if g.cacheTTL > 0 {
		g.client.Cache.Set(fullURL, body, g.cacheTTL)
		metrics.SetCacheSize(g.client.Cache.Size())
	}
	return body, nil
}

func (g *HTTPGetter) fetch(ctx context.Context, fullURL, userAgent string) (string, error) {
	body, status, err := g.client.Fetch(ctx, base.FetchConfig{
		URL:       fullURL,
		UserAgent: userAgent,
		MaxRetry:  g.maxRetry,
	})
	if err != nil {
		return "", &NetworkError{URL: fullURL, Err: err}
	}
	if status >= 400 {
		return "", &NetworkError{URL: fullURL, Status: status}
	}
	if !utf8.Valid(body) {
		return "", &EncodingError{}
	}
	return string(body), nil
}

// CacheSize returns the number of cached response bodies
func (g *HTTPGetter) CacheSize() int64 {
	return g.client.Cache.Size()
}

// Close releases the transport's background resources
func (g *HTTPGetter) Close() {
	g.client.Close()
}
