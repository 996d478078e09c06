package wikipedia

import "context"

// RandomCount returns up to count random article titles. The wiki may
// return fewer than requested.
func (c *Client) RandomCount(ctx context.Context, count uint) ([]string, error) {
	doc, err := c.query(ctx, randomParams(count))
	if err != nil {
		return nil, err
	}
	return extractTitles(doc, "random")
}

// Random returns a single random article title. ok is false when the wiki
// returned an empty sample, which is not an error.
func (c *Client) Random(ctx context.Context) (title string, ok bool, err error) {
	titles, err := c.RandomCount(ctx, 1)
	if err != nil {
		return "", false, err
	}
	if len(titles) == 0 {
		return "", false, nil
	}
	return titles[0], true, nil
}
