package tools

// AllTools contains all tool specifications for the Wikipedia MCP server.
// Tools are organized by category for easier maintenance.
// Tool descriptions follow a structured format for optimal LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments with defaults
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SEARCH TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_search",
		Method:   "Search",
		Title:    "Search Wikipedia",
		Category: "search",
		Description: `Full-text search across Wikipedia articles.

USE WHEN: User asks "find articles about X", "search Wikipedia for X", or doesn't know the exact article title.

NOT FOR: Finding articles near a location (use wikipedia_geosearch). Not for fetching a known article (use wikipedia_page_content or wikipedia_page_summary).

PARAMETERS:
- query: Search text (required)

RETURNS: Matching article titles, best match first.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_geosearch",
		Method:   "Geosearch",
		Title:    "Search Near Coordinates",
		Category: "search",
		Description: `Find Wikipedia articles about places near geographic coordinates.

USE WHEN: User asks "what's near these coordinates", "articles about places around lat/lon", "landmarks near 48.8583, 2.2944".

NOT FOR: Text search (use wikipedia_search). Not for finding the coordinates of an article (use wikipedia_page_coordinates).

PARAMETERS:
- latitude: Decimal degrees, -90 to 90 (required)
- longitude: Decimal degrees, -180 to 180 (required)
- radius_meters: Search radius, 10 to 10000 (default 250)

RETURNS: Article titles ordered by distance from the point.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// DISCOVERY TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_random",
		Method:   "Random",
		Title:    "Random Articles",
		Category: "discovery",
		Description: `Get random Wikipedia article titles from the main namespace.

USE WHEN: User asks "show me a random article", "surprise me", "pick random Wikipedia pages".

PARAMETERS:
- count: How many titles to return (default 1)

RETURNS: Random article titles.`,
		ReadOnly:  true,
		OpenWorld: true,
	},
	{
		Name:     "wikipedia_languages",
		Method:   "Languages",
		Title:    "List Languages",
		Category: "discovery",
		Description: `List all languages the wiki supports, with their codes.

USE WHEN: User asks "what languages does Wikipedia have", "what's the language code for Danish", "list supported languages".

NOT FOR: Finding a specific article in other languages (use wikipedia_lang_links).

PARAMETERS: None

RETURNS: Language codes with native display names.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// READ TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_page_content",
		Method:   "PageContent",
		Title:    "Get Page Content",
		Category: "read",
		Description: `Retrieve the full wikitext source of an article.

USE WHEN: User says "show me the X article", "get the full text of X", "read the X page".

NOT FOR: A short overview (use wikipedia_page_summary). Not for rendered output (use wikipedia_page_html).

PARAMETERS:
- title: Article title (required)

RETURNS: Raw wikitext. Large articles truncated at 25KB.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_summary",
		Method:   "PageSummary",
		Title:    "Get Page Summary",
		Category: "read",
		Description: `Get the plain-text introduction of an article, without markup.

USE WHEN: User asks "what is X", "give me a quick overview of X", "summarize the X article".

NOT FOR: The full article (use wikipedia_page_content).

PARAMETERS:
- title: Article title (required)

RETURNS: The article's lead section as plain text.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_html",
		Method:   "PageHTML",
		Title:    "Get Page HTML",
		Category: "read",
		Description: `Retrieve an article rendered as HTML.

USE WHEN: User needs the rendered article with formatting, tables, and markup resolved.

NOT FOR: Plain reading (use wikipedia_page_summary or wikipedia_page_content).

PARAMETERS:
- title: Article title (required)

RETURNS: Sanitized HTML. Large articles truncated at 25KB.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_sections",
		Method:   "PageSections",
		Title:    "Get Page Sections",
		Category: "read",
		Description: `Get an article's section structure (table of contents).

USE WHEN: User asks "what sections does X have", "show the table of contents", or before fetching one section of a long article.

NOT FOR: Section text itself (use wikipedia_page_section).

PARAMETERS:
- title: Article title (required)

RETURNS: Section headings with nesting level, number, and anchor.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_section",
		Method:   "PageSection",
		Title:    "Get Section Content",
		Category: "read",
		Description: `Fetch one section of an article by its heading.

USE WHEN: User asks "get the History section of X", "show the Early life part", or the full article was truncated.

NOT FOR: Listing headings (use wikipedia_page_sections).

PARAMETERS:
- title: Article title (required)
- heading: Section heading, case-insensitive (required)

RETURNS: The section's wikitext.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// LINK TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_page_links",
		Method:   "PageLinks",
		Title:    "Get Page Links",
		Category: "links",
		Description: `Get titles of wiki pages an article links to.

USE WHEN: User asks "what does X link to", "related articles from X", "outgoing links of X".

NOT FOR: External URLs (use wikipedia_external_links). Not for other-language versions (use wikipedia_lang_links).

PARAMETERS:
- title: Article title (required)

RETURNS: Linked article titles.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_external_links",
		Method:   "PageExternalLinks",
		Title:    "Get External Links",
		Category: "links",
		Description: `Get external URLs referenced by an article.

USE WHEN: User asks "what sources does X cite", "external links on X", "URLs referenced by the article".

NOT FOR: Links to other wiki articles (use wikipedia_page_links).

PARAMETERS:
- title: Article title (required)

RETURNS: External URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_categories",
		Method:   "PageCategories",
		Title:    "Get Page Categories",
		Category: "links",
		Description: `Get the categories an article belongs to.

USE WHEN: User asks "how is X categorized", "what topics does X belong to".

PARAMETERS:
- title: Article title (required)

RETURNS: Category names without the "Category:" prefix.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_lang_links",
		Method:   "PageLangLinks",
		Title:    "Get Language Links",
		Category: "links",
		Description: `Find the same article on Wikipedias in other languages.

USE WHEN: User asks "is there a German version of X", "what languages is X available in".

NOT FOR: Listing all wiki languages (use wikipedia_languages).

PARAMETERS:
- title: Article title (required)

RETURNS: Language codes with the article's title in each language.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// MEDIA AND LOCATION TOOLS
	// ==========================================================================
	{
		Name:     "wikipedia_page_images",
		Method:   "PageImages",
		Title:    "Get Page Images",
		Category: "media",
		Description: `Get images and media files used on an article.

USE WHEN: User asks "what images are on X", "show pictures from the article", "list media on this page".

PARAMETERS:
- title: Article title (required)

RETURNS: Image titles with direct file URLs.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "wikipedia_page_coordinates",
		Method:   "PageCoordinates",
		Title:    "Get Page Coordinates",
		Category: "media",
		Description: `Get the geographic coordinates of an article's subject.

USE WHEN: User asks "where is X", "coordinates of X", "lat/lon for the Eiffel Tower article".

NOT FOR: Finding articles near a point (use wikipedia_geosearch).

PARAMETERS:
- title: Article title (required)

RETURNS: Latitude and longitude when the article has coordinates; found=false otherwise.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}
