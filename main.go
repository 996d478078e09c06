// Wikipedia MCP Server - A Model Context Protocol server for Wikipedia
// Provides tools for searching, reading, and traversing Wikipedia articles
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tools"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ServerName    = "wikipedia-mcp-server"
	ServerVersion = "1.0.0"
)

const serverInstructions = `Wikipedia MCP Server provides read-only tools for Wikipedia.

Available tools:
- wikipedia_search: Full-text search for articles
- wikipedia_geosearch: Find articles about places near coordinates
- wikipedia_random: Random article titles
- wikipedia_languages: List supported wiki languages
- wikipedia_page_content: Full article wikitext
- wikipedia_page_summary: Plain-text article introduction
- wikipedia_page_html: Rendered article HTML
- wikipedia_page_sections: Article table of contents
- wikipedia_page_section: One section's wikitext by heading
- wikipedia_page_links: Wiki pages an article links to
- wikipedia_external_links: External URLs cited by an article
- wikipedia_page_categories: Categories an article belongs to
- wikipedia_lang_links: The article on other-language Wikipedias
- wikipedia_page_images: Images used on an article
- wikipedia_page_coordinates: Geographic coordinates of an article's subject

Configure via environment variables:
- WIKIPEDIA_LANGUAGE: Language edition to target (default "en")
- WIKIPEDIA_BASE_URL: Endpoint template; {language} marks the language slot
- WIKIPEDIA_USER_AGENT: User-Agent header for API requests
- WIKIPEDIA_SEARCH_RESULTS: Max titles per search (default 10)
- WIKIPEDIA_CACHE_TTL: Response cache lifetime (default 5m, 0 disables)`

func main() {
	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Load configuration from environment
	cfg, err := wikipedia.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create Wikipedia client
	client := wikipedia.NewFromConfig(cfg, logger)
	defer client.Close()

	ctx := context.Background()

	// Set up tracing (no-op unless OTEL_ENABLED or an OTLP endpoint is set)
	shutdownTracing, err := tracing.Setup(ctx, tracing.DefaultConfig())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdownTracing(ctx) }()

	// Optional Prometheus listener
	if addr := os.Getenv("METRICS_ADDR"); addr != "" {
		go serveMetrics(addr, client, logger)
	}

	// Create MCP server
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger:       logger,
		Instructions: serverInstructions,
	})

	// Register all tools
	tools.NewHandlerRegistry(client, logger).RegisterAll(server)

	// Run server on stdio transport
	logger.Info("Starting Wikipedia MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"base_url", client.BaseURL(),
	)

	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// serveMetrics exposes Prometheus metrics and a health probe, and keeps the
// cache size gauge current while the listener runs.
func serveMetrics(addr string, client *wikipedia.Client, logger *slog.Logger) {
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			metrics.SetCacheSize(client.CacheSize())
		}
	}()

	logger.Info("Metrics listener started", "addr", addr)
	if err := http.ListenAndServe(addr, newMetricsRouter()); err != nil {
		logger.Error("Metrics listener failed", "error", err)
	}
}

// newMetricsRouter builds the router for the metrics listener
func newMetricsRouter() chi.Router {
	router := chi.NewRouter()
	router.Use(metricsMiddleware)
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return router
}

// metricsMiddleware records request counts and latency for the listener itself
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, strconv.Itoa(sw.status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

// statusWriter captures the response status code for metrics
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
