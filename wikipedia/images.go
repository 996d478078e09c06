package wikipedia

import "context"

// PageImages returns the media files used by a page, with their direct and
// description-page URLs. The generator returns nothing at all for a page
// without images, so an empty result is not an error.
func (c *Client) PageImages(ctx context.Context, title string) ([]Image, error) {
	params := newQueryParams()
	params.Set("generator", "images")
	params.Set("gimlimit", c.ImagesResults())
	params.Set("prop", "imageinfo")
	params.Set("iiprop", "url")
	params.Set("titles", title)
	params.Set("redirects", "1")

	var images []Image
	for {
		doc, err := c.query(ctx, params)
		if err != nil {
			return nil, err
		}

		pages := getMap(getMap(getMap(doc)["query"])["pages"])
		if pages == nil {
			break
		}
		for _, p := range pages {
			page := getMap(p)
			if page == nil {
				continue
			}
			image := Image{Title: getString(page["title"])}
			if infos := getSlice(page["imageinfo"]); len(infos) > 0 {
				if info := getMap(infos[0]); info != nil {
					image.URL = getString(info["url"])
					image.DescriptionURL = getString(info["descriptionurl"])
				}
			}
			if image.Title == "" && image.URL == "" {
				continue
			}
			images = append(images, image)
		}

		if !applyContinue(doc, params) {
			break
		}
	}
	return images, nil
}
