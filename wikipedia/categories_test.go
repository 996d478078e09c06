package wikipedia

import (
	"context"
	"testing"
)

func TestPageCategories_StripsNamespacePrefix(t *testing.T) {
	getter := &fakeGetter{responses: []string{
		`{"query":{"pages":{"9228":{"title":"Earth","categories":[{"ns":14,"title":"Category:Planets"},{"ns":14,"title":"Category:Earth"}]}}}}`,
	}}
	client := newTestClient(getter)

	categories, err := client.PageCategories(context.Background(), "Earth")
	if err != nil {
		t.Fatalf("PageCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[0] != "Planets" || categories[1] != "Earth" {
		t.Errorf("categories = %v, want [Planets Earth]", categories)
	}

	params := getter.lastParams(t)
	if got := params.Get("prop"); got != "categories" {
		t.Errorf("prop = %q, want %q", got, "categories")
	}
	if got := params.Get("cllimit"); got != "max" {
		t.Errorf("cllimit = %q, want %q", got, "max")
	}
}

func TestPageCategories_Continuation(t *testing.T) {
	getter := &fakeGetter{responses: []string{
		`{"continue":{"clcontinue":"9228|Terrestrial_planets","continue":"||"},"query":{"pages":{"9228":{"title":"Earth","categories":[{"title":"Category:Planets"}]}}}}`,
		`{"query":{"pages":{"9228":{"title":"Earth","categories":[{"title":"Category:Terrestrial planets"}]}}}}`,
	}}
	client := newTestClient(getter)

	categories, err := client.PageCategories(context.Background(), "Earth")
	if err != nil {
		t.Fatalf("PageCategories failed: %v", err)
	}
	if len(categories) != 2 || categories[1] != "Terrestrial planets" {
		t.Errorf("categories = %v, want both pages of results", categories)
	}
	if getter.calls != 2 {
		t.Errorf("transport was invoked %d times, want 2", getter.calls)
	}
}
