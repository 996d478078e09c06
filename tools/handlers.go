package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikipedia-mcp-server/metrics"
	"github.com/olgasafonova/wikipedia-mcp-server/tracing"
	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// HandlerRegistry provides type-safe tool registration by mapping
// tool names to their concrete handler implementations.
type HandlerRegistry struct {
	client *wikipedia.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *wikipedia.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) {
	for _, spec := range AllTools {
		h.registerByName(server, spec)
	}
	h.logger.Info("Registered all tools", "count", len(AllTools))
}

// registerByName dispatches to the correct typed registration function.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "Search":
		register(h, server, tool, spec, h.search)
	case "Geosearch":
		register(h, server, tool, spec, h.geosearch)
	case "Random":
		register(h, server, tool, spec, h.random)
	case "Languages":
		register(h, server, tool, spec, h.languages)
	case "PageContent":
		register(h, server, tool, spec, h.pageContent)
	case "PageSummary":
		register(h, server, tool, spec, h.pageSummary)
	case "PageHTML":
		register(h, server, tool, spec, h.pageHTML)
	case "PageSections":
		register(h, server, tool, spec, h.pageSections)
	case "PageSection":
		register(h, server, tool, spec, h.pageSection)
	case "PageLinks":
		register(h, server, tool, spec, h.pageLinks)
	case "PageExternalLinks":
		register(h, server, tool, spec, h.pageExternalLinks)
	case "PageCategories":
		register(h, server, tool, spec, h.pageCategories)
	case "PageLangLinks":
		register(h, server, tool, spec, h.pageLangLinks)
	case "PageImages":
		register(h, server, tool, spec, h.pageImages)
	case "PageCoordinates":
		register(h, server, tool, spec, h.pageCoordinates)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
	}
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register is a generic helper that registers a tool with the MCP server.
// It wraps the handler method with panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, func(ctx context.Context, req *mcp.CallToolRequest, args Args) (*mcp.CallToolResult, Result, error) {
		defer h.recoverPanic(spec.Name)

		// Start trace span
		ctx, span := tracing.StartSpan(ctx, "mcp.tool."+spec.Name)
		defer span.End()

		span.SetAttributes(
			attribute.String("mcp.tool.name", spec.Name),
			attribute.String("mcp.tool.category", spec.Category),
			attribute.Bool("mcp.tool.readonly", spec.ReadOnly),
		)

		// Track in-flight requests
		metrics.RequestInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.RequestInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err := method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))
		metrics.RecordAPICall(h.client.Language(), spec.Method, duration)

		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			metrics.RecordRequest(spec.Name, duration, false)
			var apiErr *wikipedia.APIError
			if errors.As(err, &apiErr) {
				metrics.RecordAPIError(spec.Name, apiErr.Code)
			}
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		span.SetStatus(codes.Ok, "")
		metrics.RecordRequest(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	})
}

// recoverPanic recovers from panics in tool handlers.
func (h *HandlerRegistry) recoverPanic(toolName string) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name}

	// Add extractable fields from args using type assertions
	switch a := args.(type) {
	case wikipedia.SearchArgs:
		attrs = append(attrs, "query", a.Query)
	case wikipedia.GeosearchArgs:
		attrs = append(attrs, "latitude", a.Latitude, "longitude", a.Longitude, "radius_meters", a.RadiusMeters)
	case wikipedia.RandomArgs:
		attrs = append(attrs, "count", a.Count)
	case wikipedia.LanguagesArgs:
		// No args to log
	case wikipedia.PageArgs:
		attrs = append(attrs, "title", a.Title)
	case wikipedia.SectionArgs:
		attrs = append(attrs, "title", a.Title, "heading", a.Heading)
	}

	// Add extractable fields from result
	switch r := result.(type) {
	case wikipedia.SearchToolResult:
		attrs = append(attrs, "results_count", r.Count)
	case wikipedia.GeosearchToolResult:
		attrs = append(attrs, "results_count", r.Count)
	case wikipedia.RandomToolResult:
		attrs = append(attrs, "results_count", r.Count)
	case wikipedia.LanguagesToolResult:
		attrs = append(attrs, "languages", r.Count)
	case wikipedia.PageContentToolResult:
		attrs = append(attrs, "output_chars", len(r.Content), "truncated", r.Truncated)
	case wikipedia.PageSummaryToolResult:
		attrs = append(attrs, "output_chars", len(r.Summary))
	case wikipedia.PageHTMLToolResult:
		attrs = append(attrs, "output_chars", len(r.HTML), "truncated", r.Truncated)
	case wikipedia.SectionsToolResult:
		attrs = append(attrs, "sections", r.Count)
	case wikipedia.SectionContentToolResult:
		attrs = append(attrs, "output_chars", len(r.Content))
	case wikipedia.PageLinksToolResult:
		attrs = append(attrs, "links", r.Count)
	case wikipedia.ExternalLinksToolResult:
		attrs = append(attrs, "links", r.Count)
	case wikipedia.CategoriesToolResult:
		attrs = append(attrs, "categories", r.Count)
	case wikipedia.LangLinksToolResult:
		attrs = append(attrs, "lang_links", r.Count)
	case wikipedia.PageImagesToolResult:
		attrs = append(attrs, "images", r.Count)
	case wikipedia.CoordinatesToolResult:
		attrs = append(attrs, "found", r.Found)
	}

	h.logger.Info("Tool executed", attrs...)
}
