package wikipedia

import (
	"context"
	"strconv"
	"strings"
)

// PageSections returns a page's table of contents. Entries the parser
// cannot identify are dropped.
func (c *Client) PageSections(ctx context.Context, title string) ([]Section, error) {
	params := newActionParams("parse")
	params.Set("page", title)
	params.Set("prop", "sections")
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return nil, err
	}
	value, err := parseField(doc, "sections")
	if err != nil {
		return nil, err
	}
	items := getSlice(value)
	if items == nil {
		return nil, &MissingPathError{Path: "parse.sections"}
	}

	sections := make([]Section, 0, len(items))
	for _, item := range items {
		record := getMap(item)
		if record == nil {
			continue
		}
		line, ok := record["line"].(string)
		if !ok {
			continue
		}
		section := Section{
			Index:  getString(record["index"]),
			Title:  line,
			Number: getString(record["number"]),
			Anchor: getString(record["anchor"]),
		}
		if level, err := strconv.Atoi(getString(record["level"])); err == nil {
			section.Level = level
		}
		sections = append(sections, section)
	}
	return sections, nil
}

// PageSectionContent returns the wikitext of one section, located by its
// heading (case-insensitive). ok is false when the page has no section with
// that heading.
func (c *Client) PageSectionContent(ctx context.Context, title, heading string) (content string, ok bool, err error) {
	sections, err := c.PageSections(ctx, title)
	if err != nil {
		return "", false, err
	}

	index := ""
	for _, section := range sections {
		if strings.EqualFold(section.Title, heading) {
			index = section.Index
			break
		}
	}
	if index == "" {
		return "", false, nil
	}

	params := newActionParams("parse")
	params.Set("page", title)
	params.Set("section", index)
	params.Set("prop", "wikitext")
	params.Set("redirects", "1")

	doc, err := c.query(ctx, params)
	if err != nil {
		return "", false, err
	}
	value, err := parseField(doc, "wikitext")
	if err != nil {
		return "", false, err
	}

	wikitext := getMap(value)
	if wikitext == nil {
		return "", false, &MissingPathError{Path: "parse.wikitext"}
	}
	text, found := wikitext["*"].(string)
	if !found {
		return "", false, &MissingPathError{Path: "parse.wikitext"}
	}
	return text, true, nil
}
