package wikipedia

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, uint(10), cfg.SearchResults)
	assert.Equal(t, "max", cfg.ImagesResults)
	assert.Equal(t, "max", cfg.LinksResults)
	assert.Equal(t, "max", cfg.CategoriesResults)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.False(t, cfg.BlockPrivateHosts)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("WIKIPEDIA_LANGUAGE", "sv")
	t.Setenv("WIKIPEDIA_SEARCH_RESULTS", "25")
	t.Setenv("WIKIPEDIA_LINKS_RESULTS", "100")
	t.Setenv("WIKIPEDIA_TIMEOUT", "10s")
	t.Setenv("WIKIPEDIA_CACHE_TTL", "0")
	t.Setenv("WIKIPEDIA_USER_AGENT", "CustomAgent/2.0")
	t.Setenv("WIKIPEDIA_BLOCK_PRIVATE_HOSTS", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "sv", cfg.Language)
	assert.Equal(t, uint(25), cfg.SearchResults)
	assert.Equal(t, "100", cfg.LinksResults)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, time.Duration(0), cfg.CacheTTL)
	assert.Equal(t, "CustomAgent/2.0", cfg.UserAgent)
	assert.True(t, cfg.BlockPrivateHosts)
}

func TestLoadConfig_InvalidValue(t *testing.T) {
	t.Setenv("WIKIPEDIA_SEARCH_RESULTS", "many")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestNewFromConfig(t *testing.T) {
	cfg := &Config{
		Language:          "de",
		UserAgent:         "ConfigAgent/1.0",
		SearchResults:     7,
		ImagesResults:     "20",
		LinksResults:      "max",
		CategoriesResults: "50",
		Timeout:           5 * time.Second,
		MaxRetries:        2,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewFromConfig(cfg, logger)
	defer client.Close()

	assert.Equal(t, "https://de.wikipedia.org/w/api.php", client.BaseURL())
	assert.Equal(t, "de", client.Language())
	assert.Equal(t, uint(7), client.SearchResults())
	assert.Equal(t, "20", client.ImagesResults())
	assert.Equal(t, "50", client.CategoriesResults())
	assert.Equal(t, "ConfigAgent/1.0", client.UserAgent())
}

func TestNewFromConfig_CustomBaseURL(t *testing.T) {
	cfg := &Config{
		Language:  "en",
		BaseURL:   "https://wiki.corp.example/api.php",
		UserAgent: "ConfigAgent/1.0",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewFromConfig(cfg, logger)
	defer client.Close()

	assert.Equal(t, "https://wiki.corp.example/api.php", client.BaseURL())
	assert.Equal(t, "", client.Language(), "marker-free base URL clears the language")
}

func TestNewFromConfig_TemplatedBaseURL(t *testing.T) {
	cfg := &Config{
		Language:  "fi",
		BaseURL:   "https://{language}.wiki.corp.example/api.php",
		UserAgent: "ConfigAgent/1.0",
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	client := NewFromConfig(cfg, logger)
	defer client.Close()

	assert.Equal(t, "https://fi.wiki.corp.example/api.php", client.BaseURL())
	assert.Equal(t, "fi", client.Language())
}
