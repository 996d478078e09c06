package wikipedia

import "context"

// PageLinks returns the titles of all article pages a page links to,
// following the API's continuation protocol until the listing is exhausted.
// Links into non-article namespaces (talk pages, templates) are excluded
func (c *Client) PageLinks(ctx context.Context, title string) ([]string, error) {
	params := newQueryParams()
	params.Set("prop", "links")
	params.Set("plnamespace", "0")
	params.Set("pllimit", c.LinksResults())
	params.Set("titles", title)
	params.Set("redirects", "1")

	var links []string
	for {
		doc, err := c.query(ctx, params)
		if err != nil {
			return nil, err
		}
		page, err := firstPage(doc)
		if err != nil {
			return nil, err
		}
		for _, item := range getSlice(page["links"]) {
			record := getMap(item)
			if record == nil {
				continue
			}
			if linked, ok := record["title"].(string); ok {
				links = append(links, linked)
			}
		}
		if !applyContinue(doc, params) {
			break
		}
	}
	return links, nil
}

// PageExternalLinks returns every external URL cited by a page
func (c *Client) PageExternalLinks(ctx context.Context, title string) ([]string, error) {
	params := newQueryParams()
	params.Set("prop", "extlinks")
	params.Set("ellimit", c.LinksResults())
	params.Set("titles", title)
	params.Set("redirects", "1")

	var links []string
	for {
		doc, err := c.query(ctx, params)
		if err != nil {
			return nil, err
		}
		page, err := firstPage(doc)
		if err != nil {
			return nil, err
		}
		for _, item := range getSlice(page["extlinks"]) {
			record := getMap(item)
			if record == nil {
				continue
			}
			if target, ok := record["*"].(string); ok {
				links = append(links, target)
			}
		}
		if !applyContinue(doc, params) {
			break
		}
	}
	return links, nil
}

// PageLangLinks returns the article's counterparts on wikis in other
// languages
func (c *Client) PageLangLinks(ctx context.Context, title string) ([]LangLink, error) {
	params := newQueryParams()
	params.Set("prop", "langlinks")
	params.Set("lllimit", DefaultPropLimit)
	params.Set("titles", title)
	params.Set("redirects", "1")

	var langLinks []LangLink
	for {
		doc, err := c.query(ctx, params)
		if err != nil {
			return nil, err
		}
		page, err := firstPage(doc)
		if err != nil {
			return nil, err
		}
		for _, item := range getSlice(page["langlinks"]) {
			record := getMap(item)
			if record == nil {
				continue
			}
			lang, ok := record["lang"].(string)
			if !ok {
				continue
			}
			linked, ok := record["*"].(string)
			if !ok {
				continue
			}
			langLinks = append(langLinks, LangLink{Lang: lang, Title: linked})
		}
		if !applyContinue(doc, params) {
			break
		}
	}
	return langLinks, nil
}
