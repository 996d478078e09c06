package tools

import (
	"fmt"
	"regexp"
)

// HTML sanitization patterns for XSS prevention - optimized with combined regexes
// Note: Go's regexp doesn't support backreferences, so we use separate patterns for each tag
var (
	// Patterns for dangerous tags with content (separate patterns since Go doesn't support backrefs)
	scriptTagRegex = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTagRegex  = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	iframeTagRegex = regexp.MustCompile(`(?is)<iframe[^>]*>.*?</iframe>`)
	objectTagRegex = regexp.MustCompile(`(?is)<object[^>]*>.*?</object>`)
	embedTagRegex  = regexp.MustCompile(`(?is)<embed[^>]*>.*?</embed>`)
	appletTagRegex = regexp.MustCompile(`(?is)<applet[^>]*>.*?</applet>`)
	formTagRegex   = regexp.MustCompile(`(?is)<form[^>]*>.*?</form>`)

	// Combined pattern for self-closing dangerous tags (single pass for 3 tag types)
	dangerousSelfClosingTagsRegex = regexp.MustCompile(`(?is)<(?:meta|link|base)[^>]*>`)

	// Remove event handler attributes (onclick, onerror, onload, etc.)
	eventHandlerRegex = regexp.MustCompile(`(?i)\s+on\w+\s*=\s*(?:"[^"]*"|'[^']*'|[^\s>]*)`)

	// Combined pattern for dangerous URL schemes (javascript: and data:)
	dangerousURLRegex = regexp.MustCompile(`(?i)(href|src|action)\s*=\s*["']?\s*(?:javascript|data):[^"'>\s]*["']?`)

	// Remove style attributes that could contain expressions
	styleAttrRegex = regexp.MustCompile(`(?i)\s+style\s*=\s*(?:"[^"]*"|'[^']*')`)
)

// sanitizeHTML removes potentially dangerous HTML elements and attributes
// to prevent XSS attacks when HTML content is displayed by clients
func sanitizeHTML(html string) string {
	// Remove dangerous tags with content
	html = scriptTagRegex.ReplaceAllString(html, "")
	html = styleTagRegex.ReplaceAllString(html, "")
	html = iframeTagRegex.ReplaceAllString(html, "")
	html = objectTagRegex.ReplaceAllString(html, "")
	html = embedTagRegex.ReplaceAllString(html, "")
	html = appletTagRegex.ReplaceAllString(html, "")
	html = formTagRegex.ReplaceAllString(html, "")

	// Remove self-closing dangerous tags (meta, link, base)
	html = dangerousSelfClosingTagsRegex.ReplaceAllString(html, "")

	// Remove event handlers
	html = eventHandlerRegex.ReplaceAllString(html, "")

	// Remove dangerous URL schemes (javascript:, data:)
	html = dangerousURLRegex.ReplaceAllString(html, "$1=\"\"")

	// Remove style attributes (can contain CSS expressions)
	html = styleAttrRegex.ReplaceAllString(html, "")

	return html
}

// truncateContent truncates content if it exceeds the limit
func truncateContent(content string, limit int) (string, bool) {
	if len(content) <= limit {
		return content, false
	}

	truncationMsg := fmt.Sprintf(`

---
[CONTENT TRUNCATED]
Showing: %d of %d characters (%.1f%% of full content)

To get the full content:
1. List headings with wikipedia_page_sections
2. Fetch one section at a time with wikipedia_page_section
3. Use wikipedia_page_summary when only the lead matters`,
		limit, len(content), float64(limit)/float64(len(content))*100)

	return content[:limit] + truncationMsg, true
}
