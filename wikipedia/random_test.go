package wikipedia

import (
	"context"
	"testing"
)

func TestRandomCount_Success(t *testing.T) {
	getter := &fakeGetter{responses: []string{
		`{"query":{"random":[{"id":1,"title":"Alpha"},{"id":2,"title":"Beta"},{"id":3,"title":"Gamma"}]}}`,
	}}
	client := newTestClient(getter)

	titles, err := client.RandomCount(context.Background(), 3)
	if err != nil {
		t.Fatalf("RandomCount failed: %v", err)
	}
	if len(titles) != 3 {
		t.Fatalf("len(titles) = %d, want 3", len(titles))
	}

	params := getter.lastParams(t)
	if got := params.Get("list"); got != "random" {
		t.Errorf("list = %q, want %q", got, "random")
	}
	if got := params.Get("rnnamespace"); got != "0" {
		t.Errorf("rnnamespace = %q, want %q", got, "0")
	}
	if got := params.Get("rnlimit"); got != "3" {
		t.Errorf("rnlimit = %q, want %q", got, "3")
	}
}

func TestRandom_ReturnsFirstTitle(t *testing.T) {
	getter := &fakeGetter{responses: []string{
		`{"query":{"random":[{"id":1,"title":"First"},{"id":2,"title":"Second"}]}}`,
	}}
	client := newTestClient(getter)

	title, ok, err := client.Random(context.Background())
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if !ok {
		t.Fatal("ok = false, want true")
	}
	if title != "First" {
		t.Errorf("title = %q, want %q", title, "First")
	}
	if got := getter.lastParams(t).Get("rnlimit"); got != "1" {
		t.Errorf("rnlimit = %q, want %q", got, "1")
	}
}

func TestRandom_EmptySampleIsNotAnError(t *testing.T) {
	getter := &fakeGetter{responses: []string{`{"query":{"random":[]}}`}}
	client := newTestClient(getter)

	title, ok, err := client.Random(context.Background())
	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}
	if ok {
		t.Error("ok = true, want false for empty sample")
	}
	if title != "" {
		t.Errorf("title = %q, want empty", title)
	}
}

func TestRandom_PropagatesError(t *testing.T) {
	getter := &fakeGetter{responses: []string{`{"query":{}}`}}
	client := newTestClient(getter)

	_, _, err := client.Random(context.Background())
	if !IsMissingPath(err) {
		t.Errorf("IsMissingPath(%v) = false, want true", err)
	}
}
