package wikipedia

import (
	"context"
	"strings"
)

const categoryPrefix = "Category:"

// PageCategories returns the categories a page belongs to, with the
// namespace prefix stripped
func (c *Client) PageCategories(ctx context.Context, title string) ([]string, error) {
	params := newQueryParams()
	params.Set("prop", "categories")
	params.Set("cllimit", c.CategoriesResults())
	params.Set("titles", title)
	params.Set("redirects", "1")

	var categories []string
	for {
		doc, err := c.query(ctx, params)
		if err != nil {
			return nil, err
		}
		page, err := firstPage(doc)
		if err != nil {
			return nil, err
		}
		for _, item := range getSlice(page["categories"]) {
			record := getMap(item)
			if record == nil {
				continue
			}
			name, ok := record["title"].(string)
			if !ok {
				continue
			}
			categories = append(categories, strings.TrimPrefix(name, categoryPrefix))
		}
		if !applyContinue(doc, params) {
			break
		}
	}
	return categories, nil
}
