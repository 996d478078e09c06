package wikipedia

import "net/url"

// Response navigation. The envelope down to the result collection is
// checked strictly: a missing or mis-typed step fails the whole call with
// *MissingPathError, because a malformed envelope means the request itself
// went wrong. Individual records inside the collection are handled
// leniently: a record without the expected fields is dropped and the rest
// still count. One odd entry should not sink a page of good results.

// queryList returns the array at query.<key>, failing strictly when any
// step of the path is absent or the wrong shape
func queryList(doc interface{}, key string) ([]interface{}, error) {
	root := getMap(doc)
	if root == nil {
		return nil, &MissingPathError{Path: "query"}
	}
	query := getMap(root["query"])
	if query == nil {
		return nil, &MissingPathError{Path: "query"}
	}
	items := getSlice(query[key])
	if items == nil {
		return nil, &MissingPathError{Path: "query." + key}
	}
	return items, nil
}

// extractTitles maps a result collection to its title strings, dropping
// records that have no string title
func extractTitles(doc interface{}, key string) ([]string, error) {
	items, err := queryList(doc, key)
	if err != nil {
		return nil, err
	}
	titles := make([]string, 0, len(items))
	for _, item := range items {
		record := getMap(item)
		if record == nil {
			continue
		}
		title, ok := record["title"].(string)
		if !ok {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// pagesMap returns the query.pages object, keyed by page ID
func pagesMap(doc interface{}) (map[string]interface{}, error) {
	root := getMap(doc)
	if root == nil {
		return nil, &MissingPathError{Path: "query"}
	}
	query := getMap(root["query"])
	if query == nil {
		return nil, &MissingPathError{Path: "query"}
	}
	pages := getMap(query["pages"])
	if pages == nil {
		return nil, &MissingPathError{Path: "query.pages"}
	}
	return pages, nil
}

// firstPage returns the single page object from query.pages. Page property
// requests for one title produce exactly one entry; the key is the page ID,
// so it has to be found by iteration.
func firstPage(doc interface{}) (map[string]interface{}, error) {
	pages, err := pagesMap(doc)
	if err != nil {
		return nil, err
	}
	for _, p := range pages {
		if page := getMap(p); page != nil {
			return page, nil
		}
	}
	return nil, &MissingPathError{Path: "query.pages"}
}

// parseField returns parse.<key> from an action=parse response
func parseField(doc interface{}, key string) (interface{}, error) {
	root := getMap(doc)
	if root == nil {
		return nil, &MissingPathError{Path: "parse"}
	}
	parse := getMap(root["parse"])
	if parse == nil {
		return nil, &MissingPathError{Path: "parse"}
	}
	value, ok := parse[key]
	if !ok {
		return nil, &MissingPathError{Path: "parse." + key}
	}
	return value, nil
}

// applyContinue copies the continuation tokens from the response into
// params and reports whether another request is needed. The API hands back
// an opaque bag of tokens; echoing all of them is the documented protocol.
func applyContinue(doc interface{}, params url.Values) bool {
	root := getMap(doc)
	if root == nil {
		return false
	}
	cont := getMap(root["continue"])
	if cont == nil {
		return false
	}
	for key, value := range cont {
		if s, ok := value.(string); ok {
			params.Set(key, s)
		}
	}
	return true
}
