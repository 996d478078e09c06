package wikipedia

import "context"

// Search returns the titles of pages matching the query, best matches
// first, capped at the configured search result limit
func (c *Client) Search(ctx context.Context, query string) ([]string, error) {
	doc, err := c.query(ctx, searchParams(query, c.SearchResults()))
	if err != nil {
		return nil, err
	}
	return extractTitles(doc, "search")
}

// Geosearch returns the titles of pages about places within radius meters
// of the coordinate, nearest first, capped at the configured search result
// limit. Out-of-range arguments fail with *InvalidParameterError before any
// network traffic.
func (c *Client) Geosearch(ctx context.Context, latitude, longitude float64, radius int) ([]string, error) {
	if err := validateCoordinates(latitude, longitude, radius); err != nil {
		return nil, err
	}
	doc, err := c.query(ctx, geosearchParams(latitude, longitude, radius, c.SearchResults()))
	if err != nil {
		return nil, err
	}
	return extractTitles(doc, "geosearch")
}
