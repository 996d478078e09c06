package wikipedia

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v6"

	"github.com/olgasafonova/wikipedia-mcp-server/internal/base"
)

// Config holds client settings, loadable from WIKIPEDIA_* environment
// variables
type Config struct {
	// Language selects which Wikipedia the client talks to
	Language string `env:"WIKIPEDIA_LANGUAGE" envDefault:"en"`

	// BaseURL overrides the endpoint template; {language} marks where the
	// language code goes. Without it the client targets *.wikipedia.org.
	BaseURL string `env:"WIKIPEDIA_BASE_URL"`

	// UserAgent identifies the client to the wiki
	UserAgent string `env:"WIKIPEDIA_USER_AGENT"`

	// SearchResults caps how many titles Search and Geosearch return
	SearchResults uint `env:"WIKIPEDIA_SEARCH_RESULTS" envDefault:"10"`

	// ImagesResults, LinksResults, and CategoriesResults are per-request
	// batch sizes for page property listings; a number or "max"
	ImagesResults     string `env:"WIKIPEDIA_IMAGES_RESULTS" envDefault:"max"`
	LinksResults      string `env:"WIKIPEDIA_LINKS_RESULTS" envDefault:"max"`
	CategoriesResults string `env:"WIKIPEDIA_CATEGORIES_RESULTS" envDefault:"max"`

	// Timeout for API requests
	Timeout time.Duration `env:"WIKIPEDIA_TIMEOUT" envDefault:"30s"`

	// MaxRetries for failed requests
	MaxRetries int `env:"WIKIPEDIA_MAX_RETRIES" envDefault:"3"`

	// CacheTTL is how long identical responses are reused; zero disables
	// the response cache
	CacheTTL time.Duration `env:"WIKIPEDIA_CACHE_TTL" envDefault:"5m"`

	// BlockPrivateHosts refuses requests whose target resolves to a
	// private or loopback address, for deployments where the base URL is
	// caller-controlled
	BlockPrivateHosts bool `env:"WIKIPEDIA_BLOCK_PRIVATE_HOSTS"`
}

// LoadConfig reads configuration from the environment
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	return cfg, nil
}

// NewFromConfig builds a Client with the default HTTP transport configured
// per cfg
func NewFromConfig(cfg *Config, logger *slog.Logger) *Client {
	baseOpts := []base.ClientOption{
		base.WithTimeout(cfg.Timeout),
		base.WithLogger(logger),
	}
	if cfg.BlockPrivateHosts {
		baseOpts = append(baseOpts, base.WithPrivateHostGuard())
	}

	getter := NewHTTPGetter(
		WithBaseClient(base.NewClient(baseOpts...)),
		WithMaxRetry(cfg.MaxRetries),
		WithCacheTTL(cfg.CacheTTL),
	)

	opts := []Option{
		WithGetter(getter),
		WithLogger(logger),
		WithLanguage(cfg.Language),
		WithSearchResults(cfg.SearchResults),
		WithImagesResults(cfg.ImagesResults),
		WithLinksResults(cfg.LinksResults),
		WithCategoriesResults(cfg.CategoriesResults),
		WithUserAgent(cfg.UserAgent),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, WithBaseURL(cfg.BaseURL))
	}
	return New(opts...)
}
