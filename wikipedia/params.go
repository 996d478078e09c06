package wikipedia

import (
	"net/url"
	"strconv"
)

// newActionParams starts a parameter set for the given API action, always in
// JSON format
func newActionParams(action string) url.Values {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("action", action)
	return params
}

func newQueryParams() url.Values {
	return newActionParams("query")
}

// searchParams builds a full-text search over page titles and content.
// srprop is deliberately empty: only titles are wanted, not snippets.
func searchParams(query string, limit uint) url.Values {
	params := newQueryParams()
	params.Set("list", "search")
	params.Set("srprop", "")
	params.Set("srlimit", strconv.FormatUint(uint64(limit), 10))
	params.Set("srsearch", query)
	return params
}

// geosearchParams builds a radius search around a coordinate. The API takes
// the coordinate as "lat|lon" and the radius in meters.
func geosearchParams(latitude, longitude float64, radius int, limit uint) url.Values {
	params := newQueryParams()
	params.Set("list", "geosearch")
	params.Set("gsradius", strconv.Itoa(radius))
	params.Set("gscoord", formatFloat(latitude)+"|"+formatFloat(longitude))
	params.Set("gslimit", strconv.FormatUint(uint64(limit), 10))
	return params
}

// randomParams builds a random-page sample restricted to articles
// (namespace 0)
func randomParams(count uint) url.Values {
	params := newQueryParams()
	params.Set("list", "random")
	params.Set("rnnamespace", "0")
	params.Set("rnlimit", strconv.FormatUint(uint64(count), 10))
	return params
}

// languagesParams builds a site-info request for the wiki's interlanguage
// catalog
func languagesParams() url.Values {
	params := newQueryParams()
	params.Set("meta", "siteinfo")
	params.Set("siprop", "languages")
	return params
}

// formatFloat renders a coordinate with the shortest exact representation
func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
