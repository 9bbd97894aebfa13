package emoji

import (
	"testing"
)

func TestDecode(t *testing.T) {
	cases := map[string]string{
		"1F600":                 "\U0001F600",
		"0023-FE0F-20E3":        "#\uFE0F\u20E3",
		"1F1E6-1F1FA":           "\U0001F1E6\U0001F1FA",
		"1f436":                 "\U0001F436",
		"1F3F3-FE0F-200D-1F308": "\U0001F3F3\uFE0F\u200D\U0001F308",
	}
	for in, want := range cases {
		got, err := Decode(in)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", in, err)
		}
		if got != want {
			t.Fatalf("Decode(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "ZZZZ", "1F600--1F600", "110000"} {
		if _, err := Decode(in); err == nil {
			t.Fatalf("Decode(%q) expected error", in)
		}
	}
	if got := (Item{Unified: "nope"}).Glyph(); got != "" {
		t.Fatalf("Glyph of malformed item = %q, want empty", got)
	}
}

func TestMatchesNameIsCaseInsensitive(t *testing.T) {
	it := Item{ShortNames: []string{"guide_dog"}}
	if !it.MatchesName("DOG") {
		t.Fatalf("expected upper-case query to match")
	}
	if it.MatchesName("cat") {
		t.Fatalf("unexpected match for cat")
	}
}

func TestDefaultCatalogue(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.Len() == 0 {
		t.Fatalf("bundled catalogue is empty")
	}
	if len(c.Current()) >= c.Len() {
		t.Fatalf("expected obsoleted entries to be filtered from Current")
	}
	for _, it := range c.Current() {
		if it.Obsolete() {
			t.Fatalf("Current returned obsoleted item %s", it.PrimaryName())
		}
		if it.Glyph() == "" {
			t.Fatalf("item %s does not decode", it.Unified)
		}
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	if _, err := Load([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
	if _, err := Load([]byte(`[{"short_names":["x"]}]`)); err == nil {
		t.Fatalf("expected missing unified error")
	}
}

func TestLookup(t *testing.T) {
	c := MustDefault()
	it, ok := c.LookupName(":dog:")
	if !ok || it.Unified != "1F436" {
		t.Fatalf("LookupName(dog) = %+v, %v", it, ok)
	}
	if _, ok := c.Lookup("1F46E"); ok {
		t.Fatalf("Lookup should not return obsoleted items")
	}
	if _, ok := c.LookupName("cop"); ok {
		t.Fatalf("LookupName should not return obsoleted items")
	}
}

func TestParseCategory(t *testing.T) {
	if c, ok := ParseCategory("Nature"); !ok || c != Nature {
		t.Fatalf("ParseCategory(Nature) = %+v, %v", c, ok)
	}
	if c, ok := ParseCategory("food & drink"); !ok || c != Food {
		t.Fatalf("ParseCategory(food & drink) = %+v, %v", c, ok)
	}
	if _, ok := ParseCategory("bogus"); ok {
		t.Fatalf("expected bogus to be unknown")
	}
	if !All.Synthetic() || !History.Synthetic() || Flags.Synthetic() {
		t.Fatalf("unexpected Synthetic results")
	}
	if got := Emotion.TranslationKey(); got != "emojiSmileys & Emotion" {
		t.Fatalf("TranslationKey = %q", got)
	}
}
