package wikipedia

import (
	"context"
	"testing"
)

const sectionsResponse = `{"parse":{"title":"Earth","sections":[` +
	`{"toclevel":1,"level":"2","line":"Etymology","number":"1","index":"1","anchor":"Etymology"},` +
	`{"toclevel":1,"level":"2","line":"Chronology","number":"2","index":"2","anchor":"Chronology"},` +
	`{"toclevel":2,"level":"3","line":"Formation","number":"2.1","index":"3","anchor":"Formation"}]}}`

func TestPageSections_Success(t *testing.T) {
	getter := &fakeGetter{responses: []string{sectionsResponse}}
	client := newTestClient(getter)

	sections, err := client.PageSections(context.Background(), "Earth")
	if err != nil {
		t.Fatalf("PageSections failed: %v", err)
	}
	if len(sections) != 3 {
		t.Fatalf("len(sections) = %d, want 3", len(sections))
	}
	if sections[0].Title != "Etymology" || sections[0].Index != "1" {
		t.Errorf("sections[0] = %+v, want Etymology at index 1", sections[0])
	}
	if sections[2].Level != 3 {
		t.Errorf("sections[2].Level = %d, want 3", sections[2].Level)
	}
	if sections[2].Number != "2.1" {
		t.Errorf("sections[2].Number = %q, want %q", sections[2].Number, "2.1")
	}

	params := getter.lastParams(t)
	if got := params.Get("action"); got != "parse" {
		t.Errorf("action = %q, want %q", got, "parse")
	}
	if got := params.Get("prop"); got != "sections" {
		t.Errorf("prop = %q, want %q", got, "sections")
	}
}

func TestPageSectionContent_Success(t *testing.T) {
	getter := &fakeGetter{responses: []string{
		sectionsResponse,
		`{"parse":{"title":"Earth","wikitext":{"*":"== Chronology ==\nThe oldest material..."}}}`,
	}}
	client := newTestClient(getter)

	content, ok, err := client.PageSectionContent(context.Background(), "Earth", "chronology")
	if err != nil {
		t.Fatalf("PageSectionContent failed: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if content != "== Chronology ==\nThe oldest material..." {
		t.Errorf("content = %q, want the section wikitext", content)
	}

	if getter.calls != 2 {
		t.Fatalf("transport was invoked %d times, want 2", getter.calls)
	}
	params := getter.lastParams(t)
	if got := params.Get("section"); got != "2" {
		t.Errorf("section = %q, want %q", got, "2")
	}
	if got := params.Get("prop"); got != "wikitext" {
		t.Errorf("prop = %q, want %q", got, "wikitext")
	}
}

func TestPageSectionContent_UnknownHeading(t *testing.T) {
	getter := &fakeGetter{responses: []string{sectionsResponse}}
	client := newTestClient(getter)

	_, ok, err := client.PageSectionContent(context.Background(), "Earth", "Bibliography")
	if err != nil {
		t.Fatalf("PageSectionContent failed: %v", err)
	}
	if ok {
		t.Error("ok = true, want false for an unknown heading")
	}
	if getter.calls != 1 {
		t.Errorf("transport was invoked %d times, want 1 (no content fetch)", getter.calls)
	}
}
