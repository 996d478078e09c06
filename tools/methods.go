package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

// DefaultGeosearchRadius is applied when a geosearch call omits the radius
const DefaultGeosearchRadius = 250

// The methods below adapt the wikipedia client to the MCP argument and
// result shapes. Argument validation that only matters at the tool boundary
// (required strings, defaults) lives here; coordinate range checks stay in
// the client so every caller gets them.

func (h *HandlerRegistry) search(ctx context.Context, args wikipedia.SearchArgs) (wikipedia.SearchToolResult, error) {
	query := strings.TrimSpace(args.Query)
	if query == "" {
		return wikipedia.SearchToolResult{}, fmt.Errorf("query is required")
	}

	titles, err := h.client.Search(ctx, query)
	if err != nil {
		return wikipedia.SearchToolResult{}, err
	}

	return wikipedia.SearchToolResult{
		Query:  query,
		Titles: titles,
		Count:  len(titles),
	}, nil
}

func (h *HandlerRegistry) geosearch(ctx context.Context, args wikipedia.GeosearchArgs) (wikipedia.GeosearchToolResult, error) {
	radius := args.RadiusMeters
	if radius == 0 {
		radius = DefaultGeosearchRadius
	}

	titles, err := h.client.Geosearch(ctx, args.Latitude, args.Longitude, radius)
	if err != nil {
		return wikipedia.GeosearchToolResult{}, err
	}

	return wikipedia.GeosearchToolResult{
		Latitude:     args.Latitude,
		Longitude:    args.Longitude,
		RadiusMeters: radius,
		Titles:       titles,
		Count:        len(titles),
	}, nil
}

func (h *HandlerRegistry) random(ctx context.Context, args wikipedia.RandomArgs) (wikipedia.RandomToolResult, error) {
	count := args.Count
	if count == 0 {
		count = 1
	}

	titles, err := h.client.RandomCount(ctx, count)
	if err != nil {
		return wikipedia.RandomToolResult{}, err
	}

	return wikipedia.RandomToolResult{
		Titles: titles,
		Count:  len(titles),
	}, nil
}

func (h *HandlerRegistry) languages(ctx context.Context, _ wikipedia.LanguagesArgs) (wikipedia.LanguagesToolResult, error) {
	languages, err := h.client.Languages(ctx)
	if err != nil {
		return wikipedia.LanguagesToolResult{}, err
	}

	return wikipedia.LanguagesToolResult{
		Languages: languages,
		Count:     len(languages),
	}, nil
}

func (h *HandlerRegistry) pageContent(ctx context.Context, args wikipedia.PageArgs) (wikipedia.PageContentToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.PageContentToolResult{}, err
	}

	content, err := h.client.PageContent(ctx, title)
	if err != nil {
		return wikipedia.PageContentToolResult{}, err
	}

	content, truncated := truncateContent(content, wikipedia.CharacterLimit)

	result := wikipedia.PageContentToolResult{
		Title:     title,
		Content:   content,
		Truncated: truncated,
	}
	if truncated {
		result.Message = "Content was truncated due to size limits. Consider fetching specific sections."
	}
	return result, nil
}

func (h *HandlerRegistry) pageSummary(ctx context.Context, args wikipedia.PageArgs) (wikipedia.PageSummaryToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.PageSummaryToolResult{}, err
	}

	summary, err := h.client.PageSummary(ctx, title)
	if err != nil {
		return wikipedia.PageSummaryToolResult{}, err
	}

	return wikipedia.PageSummaryToolResult{
		Title:   title,
		Summary: summary,
	}, nil
}

func (h *HandlerRegistry) pageHTML(ctx context.Context, args wikipedia.PageArgs) (wikipedia.PageHTMLToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.PageHTMLToolResult{}, err
	}

	html, err := h.client.PageHTML(ctx, title)
	if err != nil {
		return wikipedia.PageHTMLToolResult{}, err
	}

	// Sanitize HTML to prevent XSS
	html = sanitizeHTML(html)
	html, truncated := truncateContent(html, wikipedia.CharacterLimit)

	result := wikipedia.PageHTMLToolResult{
		Title:     title,
		HTML:      html,
		Truncated: truncated,
	}
	if truncated {
		result.Message = "Content was truncated due to size limits."
	}
	return result, nil
}

func (h *HandlerRegistry) pageSections(ctx context.Context, args wikipedia.PageArgs) (wikipedia.SectionsToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.SectionsToolResult{}, err
	}

	sections, err := h.client.PageSections(ctx, title)
	if err != nil {
		return wikipedia.SectionsToolResult{}, err
	}

	return wikipedia.SectionsToolResult{
		Title:    title,
		Sections: sections,
		Count:    len(sections),
	}, nil
}

func (h *HandlerRegistry) pageSection(ctx context.Context, args wikipedia.SectionArgs) (wikipedia.SectionContentToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.SectionContentToolResult{}, err
	}
	heading := strings.TrimSpace(args.Heading)
	if heading == "" {
		return wikipedia.SectionContentToolResult{}, fmt.Errorf("heading is required")
	}

	content, ok, err := h.client.PageSectionContent(ctx, title, heading)
	if err != nil {
		return wikipedia.SectionContentToolResult{}, err
	}
	if !ok {
		return wikipedia.SectionContentToolResult{}, fmt.Errorf("no section '%s' found on page '%s'", heading, title)
	}

	return wikipedia.SectionContentToolResult{
		Title:   title,
		Heading: heading,
		Content: content,
	}, nil
}

func (h *HandlerRegistry) pageLinks(ctx context.Context, args wikipedia.PageArgs) (wikipedia.PageLinksToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.PageLinksToolResult{}, err
	}

	links, err := h.client.PageLinks(ctx, title)
	if err != nil {
		return wikipedia.PageLinksToolResult{}, err
	}

	return wikipedia.PageLinksToolResult{
		Title: title,
		Links: links,
		Count: len(links),
	}, nil
}

func (h *HandlerRegistry) pageExternalLinks(ctx context.Context, args wikipedia.PageArgs) (wikipedia.ExternalLinksToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.ExternalLinksToolResult{}, err
	}

	links, err := h.client.PageExternalLinks(ctx, title)
	if err != nil {
		return wikipedia.ExternalLinksToolResult{}, err
	}

	return wikipedia.ExternalLinksToolResult{
		Title: title,
		Links: links,
		Count: len(links),
	}, nil
}

func (h *HandlerRegistry) pageCategories(ctx context.Context, args wikipedia.PageArgs) (wikipedia.CategoriesToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.CategoriesToolResult{}, err
	}

	categories, err := h.client.PageCategories(ctx, title)
	if err != nil {
		return wikipedia.CategoriesToolResult{}, err
	}

	return wikipedia.CategoriesToolResult{
		Title:      title,
		Categories: categories,
		Count:      len(categories),
	}, nil
}

func (h *HandlerRegistry) pageLangLinks(ctx context.Context, args wikipedia.PageArgs) (wikipedia.LangLinksToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.LangLinksToolResult{}, err
	}

	langLinks, err := h.client.PageLangLinks(ctx, title)
	if err != nil {
		return wikipedia.LangLinksToolResult{}, err
	}

	return wikipedia.LangLinksToolResult{
		Title:     title,
		LangLinks: langLinks,
		Count:     len(langLinks),
	}, nil
}

func (h *HandlerRegistry) pageImages(ctx context.Context, args wikipedia.PageArgs) (wikipedia.PageImagesToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.PageImagesToolResult{}, err
	}

	images, err := h.client.PageImages(ctx, title)
	if err != nil {
		return wikipedia.PageImagesToolResult{}, err
	}

	return wikipedia.PageImagesToolResult{
		Title:  title,
		Images: images,
		Count:  len(images),
	}, nil
}

func (h *HandlerRegistry) pageCoordinates(ctx context.Context, args wikipedia.PageArgs) (wikipedia.CoordinatesToolResult, error) {
	title, err := requireTitle(args.Title)
	if err != nil {
		return wikipedia.CoordinatesToolResult{}, err
	}

	lat, lon, found, err := h.client.PageCoordinates(ctx, title)
	if err != nil {
		return wikipedia.CoordinatesToolResult{}, err
	}

	result := wikipedia.CoordinatesToolResult{
		Title: title,
		Found: found,
	}
	if found {
		result.Latitude = lat
		result.Longitude = lon
	}
	return result, nil
}

// requireTitle trims and validates a page title argument
func requireTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", fmt.Errorf("title is required")
	}
	return title, nil
}
