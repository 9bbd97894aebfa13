package mcp

import (
	"context"
	"errors"
	"testing"

	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := NewService(history.NewStore(store.NewMemory()))
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestServiceSearch(t *testing.T) {
	svc := newTestService(t)

	results, err := svc.Search(context.Background(), "dog", 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Name != "dog" || results[1].Name != "dog2" {
		t.Fatalf("unexpected order %s, %s", results[0].Name, results[1].Name)
	}
	if results[0].Emoji != "\U0001F436" {
		t.Fatalf("unexpected glyph %q", results[0].Emoji)
	}

	none, err := svc.Search(context.Background(), "zzzzznotreal", 0)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no results, got %d", len(none))
	}

	if _, err := svc.Search(context.Background(), "  ", 0); err == nil {
		t.Fatalf("expected an error for an empty query")
	}
}

func TestServiceListCategory(t *testing.T) {
	svc := newTestService(t)

	items, err := svc.ListCategory(context.Background(), "nature", 0)
	if err != nil {
		t.Fatalf("ListCategory failed: %v", err)
	}
	if len(items) != 46 {
		t.Fatalf("expected 46 nature items, got %d", len(items))
	}
	if items[0].Name != "monkey_face" {
		t.Fatalf("expected monkey_face first, got %s", items[0].Name)
	}

	byName, err := svc.ListCategory(context.Background(), "Animals & Nature", 3)
	if err != nil {
		t.Fatalf("ListCategory by name failed: %v", err)
	}
	if len(byName) != 3 {
		t.Fatalf("expected limit to apply, got %d", len(byName))
	}

	if _, err := svc.ListCategory(context.Background(), "bogus", 0); err == nil {
		t.Fatalf("expected unknown category error")
	}
}

func TestServiceRecordAndRecent(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	if _, err := svc.Record(ctx, ":dog:"); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	items, err := svc.Record(ctx, "1f431")
	if err != nil {
		t.Fatalf("Record by code failed: %v", err)
	}
	if len(items) != 2 || items[0].Unified != "1F431" || items[1].Unified != "1F436" {
		t.Fatalf("unexpected history %+v", items)
	}
	if items[0].Count != 1 {
		t.Fatalf("expected count 1, got %d", items[0].Count)
	}

	recent, err := svc.ListCategory(ctx, "history", 0)
	if err != nil {
		t.Fatalf("ListCategory history failed: %v", err)
	}
	if len(recent) != 2 || recent[0].Name != "cat" {
		t.Fatalf("unexpected history category %+v", recent)
	}

	if _, err := svc.Record(ctx, "not_an_emoji"); !errors.Is(err, ErrEmojiNotFound) {
		t.Fatalf("expected ErrEmojiNotFound, got %v", err)
	}
}

func TestServiceCategories(t *testing.T) {
	svc := newTestService(t)
	summaries := svc.Categories(context.Background())
	if len(summaries) != 11 {
		t.Fatalf("expected 11 categories, got %d", len(summaries))
	}
	if summaries[0].Key != "all" || summaries[1].Key != "history" {
		t.Fatalf("unexpected order %s, %s", summaries[0].Key, summaries[1].Key)
	}
}

func TestTemplateArg(t *testing.T) {
	if got := templateArg("flags"); got != "flags" {
		t.Fatalf("string arg = %q", got)
	}
	if got := templateArg([]string{"food"}); got != "food" {
		t.Fatalf("list arg = %q", got)
	}
	if got := templateArg(nil); got != "" {
		t.Fatalf("nil arg = %q", got)
	}
}
