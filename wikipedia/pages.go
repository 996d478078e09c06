package wikipedia

import "context"

// PageContent returns the full wikitext of a page. Redirects are followed.
// A page without a readable revision, including a page that does not exist,
// fails with *MissingPathError at the revisions path.
func (c *Client) PageContent(ctx context.Context, title string) (string, error) {
	params := newQueryParams()
	params.Set("prop", "revisions")
	params.Set("rvprop", "content")
	params.Set("rvslots", "main")
	params.Set("rvlimit", "1")
	params.Set("titles", title)
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}
	page, err := firstPage(doc)
	if err != nil {
		return "", err
	}

	revisions := getSlice(page["revisions"])
	if len(revisions) == 0 {
		return "", &MissingPathError{Path: "query.pages.revisions"}
	}
	rev := getMap(revisions[0])
	if rev == nil {
		return "", &MissingPathError{Path: "query.pages.revisions"}
	}

	if slots := getMap(rev["slots"]); slots != nil {
		if main := getMap(slots["main"]); main != nil {
			if content, ok := main["*"].(string); ok {
				return content, nil
			}
			if content, ok := main["content"].(string); ok {
				return content, nil
			}
		}
	}
	// Older MediaWiki versions put the content directly on the revision
	if content, ok := rev["*"].(string); ok {
		return content, nil
	}
	return "", &MissingPathError{Path: "query.pages.revisions.slots.main"}
}

// PageSummary returns the introduction of a page as plain text
func (c *Client) PageSummary(ctx context.Context, title string) (string, error) {
	params := newQueryParams()
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("titles", title)
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}
	page, err := firstPage(doc)
	if err != nil {
		return "", err
	}

	summary, ok := page["extract"].(string)
	if !ok {
		return "", &MissingPathError{Path: "query.pages.extract"}
	}
	return summary, nil
}

// PageHTML returns the rendered HTML of a page. The markup comes back
// exactly as the wiki produced it; sanitize before showing it to anything
// that executes scripts.
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	params := newActionParams("parse")
	params.Set("page", title)
	params.Set("prop", "text")
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return "", err
	}
	value, err := parseField(doc, "text")
	if err != nil {
		return "", err
	}

	text := getMap(value)
	if text == nil {
		return "", &MissingPathError{Path: "parse.text"}
	}
	html, ok := text["*"].(string)
	if !ok {
		return "", &MissingPathError{Path: "parse.text"}
	}
	return html, nil
}

// PageID returns the numeric page ID for a title. ok is false when no such
// page exists.
func (c *Client) PageID(ctx context.Context, title string) (id int64, ok bool, err error) {
	params := newQueryParams()
	params.Set("prop", "info")
	params.Set("titles", title)
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return 0, false, err
	}
	page, err := firstPage(doc)
	if err != nil {
		return 0, false, err
	}

	if _, missing := page["missing"]; missing {
		return 0, false, nil
	}
	id = getInt64(page["pageid"])
	if id == 0 {
		return 0, false, nil
	}
	return id, true, nil
}
