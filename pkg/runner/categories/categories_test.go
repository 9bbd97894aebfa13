package categories

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/i18n"
)

func TestSummaries(t *testing.T) {
	index := emoji.NewIndex(emoji.MustDefault(), emoji.Categories())
	rows := Summaries(index, nil)
	if len(rows) != len(emoji.Categories()) {
		t.Fatalf("got %d rows", len(rows))
	}

	want := map[string]int{
		"all":        362,
		"history":    -1,
		"emotion":    68,
		"people":     33,
		"nature":     46,
		"food":       45,
		"activities": 25,
		"places":     36,
		"objects":    50,
		"symbols":    35,
		"flags":      24,
	}
	for _, r := range rows {
		if got := r.Count; got != want[r.Key] {
			t.Fatalf("%s count = %d, want %d", r.Key, got, want[r.Key])
		}
		if r.Title != r.Name {
			t.Fatalf("untranslated title %q should echo name %q", r.Title, r.Name)
		}
	}
}

func TestTranslatedTitles(t *testing.T) {
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	index := emoji.NewIndex(emoji.MustDefault(), emoji.Categories())
	for _, r := range Summaries(index, bundle.Printer("en-US")) {
		if r.Title == "" || strings.HasPrefix(r.Title, "emoji") {
			t.Fatalf("%s title = %q", r.Key, r.Title)
		}
	}
}

func TestTable(t *testing.T) {
	var out bytes.Buffer
	c := Categories{Out: &out}
	if err := c.Do(context.Background()); err != nil {
		t.Fatalf("Do: %v", err)
	}
	for _, want := range []string{"flags", "Smileys & Emotion", "68"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("table missing %q:\n%s", want, out.String())
		}
	}
}
