// Package wikipedia is a client for the MediaWiki Action API as exposed by
// Wikipedia and compatible wikis. It covers full-text search, geographic
// search, random page sampling, the installed-language catalog, and page
// property lookups (content, summaries, links, images, categories,
// coordinates).
//
// The client speaks to one endpoint at a time, selected through a URL
// template in which LanguageURLMarker stands in for the language code:
//
//	https://{language}.wikipedia.org/w/api.php
//
// Switching languages re-renders the endpoint; pointing the client at a
// private MediaWiki installation is a SetBaseURL call away. All network
// traffic flows through the Getter interface, so the HTTP machinery can be
// swapped without touching request construction or response decoding.
package wikipedia

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"
)

const (
	// LanguageURLMarker is the placeholder a URL template uses where the
	// language code belongs
	LanguageURLMarker = "{language}"

	// DefaultPreLanguageURL and DefaultPostLanguageURL surround the language
	// code in the default endpoint template
	DefaultPreLanguageURL  = "https://"
	DefaultPostLanguageURL = ".wikipedia.org/w/api.php"

	// DefaultLanguage is the language code used until one is configured
	DefaultLanguage = "en"

	// DefaultSearchResults caps how many titles Search and Geosearch ask for
	DefaultSearchResults uint = 10

	// DefaultPropLimit requests the largest batch the API allows when paging
	// through page properties
	DefaultPropLimit = "max"

	// DefaultUserAgent identifies this client per the Wikimedia User-Agent
	// policy; override it with contact details for production traffic
	DefaultUserAgent = "wikipedia-mcp-server/1.0 (https://github.com/olgasafonova/wikipedia-mcp-server)"
)

// Client talks to a single MediaWiki endpoint. The zero value is not usable;
// construct with New. All methods are safe for concurrent use.
type Client struct {
	getter Getter
	logger *slog.Logger

	mu                sync.RWMutex
	preLanguageURL    string
	postLanguageURL   string
	language          string
	searchResults     uint
	imagesResults     string
	linksResults      string
	categoriesResults string
	userAgent         string
}

// Option configures a Client during construction
type Option func(*Client)

// WithGetter replaces the transport. Pass a RestyGetter, a custom
// HTTPGetter, or any test double.
func WithGetter(g Getter) Option {
	return func(c *Client) {
		c.getter = g
	}
}

// WithLogger sets the logger for request diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithLanguage sets the initial language code
func WithLanguage(code string) Option {
	return func(c *Client) {
		c.language = code
	}
}

// WithSearchResults sets how many titles Search and Geosearch request
func WithSearchResults(n uint) Option {
	return func(c *Client) {
		c.searchResults = n
	}
}

// WithImagesResults sets the per-request batch size for PageImages, either a
// number as a string or "max"
func WithImagesResults(limit string) Option {
	return func(c *Client) {
		c.imagesResults = limit
	}
}

// WithLinksResults sets the per-request batch size for PageLinks and
// PageExternalLinks, either a number as a string or "max"
func WithLinksResults(limit string) Option {
	return func(c *Client) {
		c.linksResults = limit
	}
}

// WithCategoriesResults sets the per-request batch size for PageCategories,
// either a number as a string or "max"
func WithCategoriesResults(limit string) Option {
	return func(c *Client) {
		c.categoriesResults = limit
	}
}

// WithUserAgent sets the User-Agent header sent with every request
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithBaseURL installs an endpoint template, exactly as SetBaseURL does
func WithBaseURL(raw string) Option {
	return func(c *Client) {
		c.setBaseURLLocked(raw)
	}
}

// New creates a Client pointed at English Wikipedia. Without WithGetter it
// uses the default HTTP transport; call Close when done with it so the
// transport can release its background resources.
func New(opts ...Option) *Client {
	c := &Client{
		logger:            slog.New(slog.NewTextHandler(io.Discard, nil)),
		preLanguageURL:    DefaultPreLanguageURL,
		postLanguageURL:   DefaultPostLanguageURL,
		language:          DefaultLanguage,
		searchResults:     DefaultSearchResults,
		imagesResults:     DefaultPropLimit,
		linksResults:      DefaultPropLimit,
		categoriesResults: DefaultPropLimit,
		userAgent:         DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.getter == nil {
		c.getter = NewHTTPGetter()
	}
	return c
}

// Close releases transport resources when the transport holds any
func (c *Client) Close() {
	if closer, ok := c.getter.(interface{ Close() }); ok {
		closer.Close()
	}
}

// CacheSize reports how many responses the transport currently caches, or
// zero when the transport does not cache
func (c *Client) CacheSize() int64 {
	if sizer, ok := c.getter.(interface{ CacheSize() int64 }); ok {
		return sizer.CacheSize()
	}
	return 0
}

// BaseURL renders the concrete endpoint: prefix, language code, suffix
func (c *Client) BaseURL() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preLanguageURL + c.language + c.postLanguageURL
}

// SetBaseURL installs a new endpoint template. When raw contains
// LanguageURLMarker, the text around the marker becomes the template and the
// configured language code fills the gap on every request. Without the
// marker, raw is used verbatim and the language code is cleared, since the
// endpoint no longer varies by language.
func (c *Client) SetBaseURL(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setBaseURLLocked(raw)
}

func (c *Client) setBaseURLLocked(raw string) {
	idx := strings.Index(raw, LanguageURLMarker)
	if idx < 0 {
		c.preLanguageURL = raw
		c.language = ""
		c.postLanguageURL = ""
		return
	}
	c.preLanguageURL = raw[:idx]
	c.postLanguageURL = raw[idx+len(LanguageURLMarker):]
}

// Language returns the configured language code
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// SetLanguage switches the language code used to render the endpoint
func (c *Client) SetLanguage(code string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.language = code
}

// SearchResults returns the configured search result cap
func (c *Client) SearchResults() uint {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.searchResults
}

// SetSearchResults changes how many titles Search and Geosearch request
func (c *Client) SetSearchResults(n uint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchResults = n
}

// ImagesResults returns the PageImages batch size
func (c *Client) ImagesResults() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.imagesResults
}

// SetImagesResults changes the PageImages batch size
func (c *Client) SetImagesResults(limit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.imagesResults = limit
}

// LinksResults returns the PageLinks and PageExternalLinks batch size
func (c *Client) LinksResults() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.linksResults
}

// SetLinksResults changes the PageLinks and PageExternalLinks batch size
func (c *Client) SetLinksResults(limit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.linksResults = limit
}

// CategoriesResults returns the PageCategories batch size
func (c *Client) CategoriesResults() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.categoriesResults
}

// SetCategoriesResults changes the PageCategories batch size
func (c *Client) SetCategoriesResults(limit string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.categoriesResults = limit
}

// UserAgent returns the configured User-Agent header value
func (c *Client) UserAgent() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.userAgent
}

// SetUserAgent changes the User-Agent header sent with every request
func (c *Client) SetUserAgent(ua string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.userAgent = ua
}

// requestTarget snapshots the endpoint and user agent under one lock so a
// concurrent SetLanguage cannot tear them apart mid-request
func (c *Client) requestTarget() (baseURL, userAgent string) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.preLanguageURL + c.language + c.postLanguageURL, c.userAgent
}

// query performs one API round trip: send the request, decode the body, and
// surface an API-level error object if the wiki returned one. The decoded
// document is returned as-is for the caller to navigate.
func (c *Client) query(ctx context.Context, params url.Values) (interface{}, error) {
	baseURL, userAgent := c.requestTarget()

	start := time.Now()
	raw, err := c.getter.Get(ctx, baseURL, params, userAgent)
	if err != nil {
		c.logger.Warn("api request failed",
			"action", params.Get("action"),
			"error", err)
		return nil, err
	}
	c.logger.Debug("api request complete",
		"action", params.Get("action"),
		"duration", time.Since(start))

	var doc interface{}
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &DecodeError{Err: err}
	}

	if root := getMap(doc); root != nil {
		if errObj := getMap(root["error"]); errObj != nil {
			return nil, &APIError{
				Code: getString(errObj["code"]),
				Info: getString(errObj["info"]),
			}
		}
	}
	return doc, nil
}
