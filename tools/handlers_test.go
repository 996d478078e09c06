package tools

import (
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestNewHandlerRegistry(t *testing.T) {
	logger := testLogger()
	client := wikipedia.New(wikipedia.WithLogger(logger))
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	if registry == nil {
		t.Fatal("Expected non-nil registry")
	}
	if registry.client != client {
		t.Error("Registry should hold the client reference")
	}
	if registry.logger != logger {
		t.Error("Registry should hold the logger reference")
	}
}

func TestRegisterAll(t *testing.T) {
	logger := testLogger()
	client := wikipedia.New(wikipedia.WithLogger(logger))
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.0"}, nil)

	// Must not panic; every catalog entry must hit a switch arm
	registry.RegisterAll(server)
}

func TestBuildTool(t *testing.T) {
	logger := testLogger()
	client := wikipedia.New(wikipedia.WithLogger(logger))
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	tests := []struct {
		name      string
		spec      ToolSpec
		wantName  string
		wantDesc  string
		wantRO    bool
		wantIdem  bool
		wantDestr bool
		wantOpen  bool
	}{
		{
			name: "read-only tool",
			spec: ToolSpec{
				Name:        "wikipedia_search",
				Title:       "Search Wikipedia",
				Description: "Search for articles by text",
				Method:      "Search",
				ReadOnly:    true,
				Idempotent:  true,
			},
			wantName:  "wikipedia_search",
			wantDesc:  "Search for articles by text",
			wantRO:    true,
			wantIdem:  true,
			wantDestr: false,
			wantOpen:  false,
		},
		{
			name: "open world tool",
			spec: ToolSpec{
				Name:        "wikipedia_page_content",
				Title:       "Get Page Content",
				Description: "Get article wikitext by title",
				Method:      "PageContent",
				OpenWorld:   true,
			},
			wantName: "wikipedia_page_content",
			wantDesc: "Get article wikitext by title",
			wantOpen: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := registry.buildTool(tt.spec)

			if tool.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", tool.Name, tt.wantName)
			}
			if tool.Description != tt.wantDesc {
				t.Errorf("Description = %q, want %q", tool.Description, tt.wantDesc)
			}
			if tool.Annotations == nil {
				t.Fatal("Expected annotations")
			}
			if tool.Annotations.ReadOnlyHint != tt.wantRO {
				t.Errorf("ReadOnlyHint = %v, want %v", tool.Annotations.ReadOnlyHint, tt.wantRO)
			}
			if tool.Annotations.IdempotentHint != tt.wantIdem {
				t.Errorf("IdempotentHint = %v, want %v", tool.Annotations.IdempotentHint, tt.wantIdem)
			}
			if tt.wantDestr && (tool.Annotations.DestructiveHint == nil || !*tool.Annotations.DestructiveHint) {
				t.Error("Expected DestructiveHint to be true")
			}
			if tt.wantOpen && (tool.Annotations.OpenWorldHint == nil || !*tool.Annotations.OpenWorldHint) {
				t.Error("Expected OpenWorldHint to be true")
			}
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	logger := testLogger()
	client := wikipedia.New(wikipedia.WithLogger(logger))
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)

	// Test that recoverPanic doesn't panic itself
	func() {
		defer registry.recoverPanic("test_tool")
		panic("test panic")
	}()

	// If we get here, panic was recovered successfully
}

func TestLogExecution(t *testing.T) {
	logger := testLogger()
	client := wikipedia.New(wikipedia.WithLogger(logger))
	defer client.Close()

	registry := NewHandlerRegistry(client, logger)
	spec := ToolSpec{Name: "test_tool"}

	// Test with SearchArgs
	registry.logExecution(spec,
		wikipedia.SearchArgs{Query: "test"},
		wikipedia.SearchToolResult{
			Query:  "test",
			Titles: []string{"Test Article"},
			Count:  1,
		})

	// Test with GeosearchArgs
	registry.logExecution(spec,
		wikipedia.GeosearchArgs{Latitude: 48.85, Longitude: 2.29, RadiusMeters: 250},
		wikipedia.GeosearchToolResult{Count: 3})

	// Test with PageArgs
	registry.logExecution(spec,
		wikipedia.PageArgs{Title: "Go (programming language)"},
		wikipedia.PageContentToolResult{Content: "text", Truncated: false})

	// Test with SectionArgs
	registry.logExecution(spec,
		wikipedia.SectionArgs{Title: "Go (programming language)", Heading: "History"},
		wikipedia.SectionContentToolResult{Content: "section text"})
}

func TestAllToolsNotEmpty(t *testing.T) {
	if len(AllTools) == 0 {
		t.Error("AllTools should not be empty")
	}

	// Verify each tool has required fields
	for i, spec := range AllTools {
		if spec.Name == "" {
			t.Errorf("Tool %d has empty Name", i)
		}
		if !strings.HasPrefix(spec.Name, "wikipedia_") {
			t.Errorf("Tool %s should be prefixed with wikipedia_", spec.Name)
		}
		if spec.Method == "" {
			t.Errorf("Tool %s has empty Method", spec.Name)
		}
		if spec.Description == "" {
			t.Errorf("Tool %s has empty Description", spec.Name)
		}
		if spec.Category == "" {
			t.Errorf("Tool %s has empty Category", spec.Name)
		}
	}
}

func TestToolSpecMethods(t *testing.T) {
	knownMethods := map[string]bool{
		"Search":            true,
		"Geosearch":         true,
		"Random":            true,
		"Languages":         true,
		"PageContent":       true,
		"PageSummary":       true,
		"PageHTML":          true,
		"PageSections":      true,
		"PageSection":       true,
		"PageLinks":         true,
		"PageExternalLinks": true,
		"PageCategories":    true,
		"PageLangLinks":     true,
		"PageImages":        true,
		"PageCoordinates":   true,
	}

	for _, spec := range AllTools {
		if !knownMethods[spec.Method] {
			t.Errorf("Tool %s has unknown method: %s", spec.Name, spec.Method)
		}
	}
}

func TestToolNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, spec := range AllTools {
		if seen[spec.Name] {
			t.Errorf("Duplicate tool name: %s", spec.Name)
		}
		seen[spec.Name] = true
	}
}

func TestToolsByCategory(t *testing.T) {
	searchTools := ToolsByCategory("search")
	if len(searchTools) == 0 {
		t.Error("Expected search tools")
	}

	for _, tool := range searchTools {
		if tool.Category != "search" {
			t.Errorf("Tool %s has category %s, expected search", tool.Name, tool.Category)
		}
	}

	readTools := ToolsByCategory("read")
	if len(readTools) == 0 {
		t.Error("Expected read tools")
	}

	// Non-existent category should return empty
	unknownTools := ToolsByCategory("unknown")
	if len(unknownTools) != 0 {
		t.Errorf("Expected 0 tools for unknown category, got %d", len(unknownTools))
	}
}
