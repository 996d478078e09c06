package wikipedia

import "context"

// PageCoordinates returns the primary coordinate attached to a page. found
// is false when the page carries no coordinate, which most pages do not.
func (c *Client) PageCoordinates(ctx context.Context, title string) (latitude, longitude float64, found bool, err error) {
	params := newQueryParams()
	params.Set("prop", "coordinates")
	params.Set("colimit", DefaultPropLimit)
	params.Set("titles", title)
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return 0, 0, false, err
	}
	page, err := firstPage(doc)
	if err != nil {
		return 0, 0, false, err
	}

	coords := getSlice(page["coordinates"])
	if len(coords) == 0 {
		return 0, 0, false, nil
	}
	primary := getMap(coords[0])
	if primary == nil {
		return 0, 0, false, nil
	}

	latitude, latOK := getFloat(primary["lat"])
	longitude, lonOK := getFloat(primary["lon"])
	if !latOK || !lonOK {
		return 0, 0, false, nil
	}
	return latitude, longitude, true, nil
}
