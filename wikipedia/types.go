package wikipedia

// CharacterLimit caps page content returned through the MCP tools so a
// single article cannot blow out a model's context window
const CharacterLimit = 25000

// ========== Domain Types ==========

// Language is one entry of a wiki's interlanguage catalog
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Image is one media file used by a page
type Image struct {
	Title          string `json:"title"`
	URL            string `json:"url"`
	DescriptionURL string `json:"description_url,omitempty"`
}

// Section is one heading in a page's table of contents. Index is the API's
// section identifier, which is not always numeric ("T-1" marks transcluded
// sections).
type Section struct {
	Index  string `json:"index"`
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Number string `json:"number,omitempty"`
	Anchor string `json:"anchor,omitempty"`
}

// LangLink points at the same article on a wiki in another language
type LangLink struct {
	Lang  string `json:"lang"`
	Title string `json:"title"`
}

// ========== Search Types ==========

type SearchArgs struct {
	Query string `json:"query" jsonschema:"Search query text"`
}

type SearchToolResult struct {
	Query  string   `json:"query"`
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

type GeosearchArgs struct {
	Latitude     float64 `json:"latitude" jsonschema:"Latitude in decimal degrees (-90 to 90)"`
	Longitude    float64 `json:"longitude" jsonschema:"Longitude in decimal degrees (-180 to 180)"`
	RadiusMeters int     `json:"radius_meters,omitempty" jsonschema:"Search radius in meters (10 to 10000, default 250)"`
}

type GeosearchToolResult struct {
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	RadiusMeters int      `json:"radius_meters"`
	Titles       []string `json:"titles"`
	Count        int      `json:"count"`
}

// ========== Random Types ==========

type RandomArgs struct {
	Count uint `json:"count,omitempty" jsonschema:"How many random titles to return (default 1)"`
}

type RandomToolResult struct {
	Titles []string `json:"titles"`
	Count  int      `json:"count"`
}

// ========== Languages Types ==========

type LanguagesArgs struct {
	// No arguments needed
}

type LanguagesToolResult struct {
	Languages []Language `json:"languages"`
	Count     int        `json:"count"`
}

// ========== Page Types ==========

type PageArgs struct {
	Title string `json:"title" jsonschema:"Page title"`
}

type PageContentToolResult struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Truncated bool   `json:"truncated,omitempty"`
	Message   string `json:"message,omitempty"`
}

type PageSummaryToolResult struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

type PageHTMLToolResult struct {
	Title     string `json:"title"`
	HTML      string `json:"html"`
	Truncated bool   `json:"truncated,omitempty"`
	Message   string `json:"message,omitempty"`
}

type SectionArgs struct {
	Title   string `json:"title" jsonschema:"Page title"`
	Heading string `json:"heading" jsonschema:"Section heading to fetch"`
}

type SectionContentToolResult struct {
	Title   string `json:"title"`
	Heading string `json:"heading"`
	Content string `json:"content"`
}

type SectionsToolResult struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
	Count    int       `json:"count"`
}

type PageLinksToolResult struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
	Count int      `json:"count"`
}

type PageImagesToolResult struct {
	Title  string  `json:"title"`
	Images []Image `json:"images"`
	Count  int     `json:"count"`
}

type ExternalLinksToolResult struct {
	Title string   `json:"title"`
	Links []string `json:"links"`
	Count int      `json:"count"`
}

type CategoriesToolResult struct {
	Title      string   `json:"title"`
	Categories []string `json:"categories"`
	Count      int      `json:"count"`
}

type LangLinksToolResult struct {
	Title     string     `json:"title"`
	LangLinks []LangLink `json:"lang_links"`
	Count     int        `json:"count"`
}

type CoordinatesToolResult struct {
	Title     string  `json:"title"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
	Found     bool    `json:"found"`
}
