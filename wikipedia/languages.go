package wikipedia

import "context"

// Languages returns the wiki's interlanguage catalog: every language code
// the installation knows, with its local display name. Catalog entries
// missing either field are dropped.
func (c *Client) Languages(ctx context.Context) ([]Language, error) {
	doc, err := c.query(ctx, languagesParams())
	if err != nil {
		return nil, err
	}
	items, err := queryList(doc, "languages")
	if err != nil {
		return nil, err
	}

	langs := make([]Language, 0, len(items))
	for _, item := range items {
		record := getMap(item)
		if record == nil {
			continue
		}
		code, ok := record["code"].(string)
		if !ok {
			continue
		}
		// The display name lives under the legacy "*" key
		name, ok := record["*"].(string)
		if !ok {
			continue
		}
		langs = append(langs, Language{Code: code, Name: name})
	}
	return langs, nil
}
