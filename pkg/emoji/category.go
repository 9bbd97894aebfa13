package emoji

import "strings"

// Category is a named grouping of catalogue items. Two categories are
// synthetic: All aggregates every dataset category and History refers to the
// user's selection history.
type Category struct {
	Key    string
	Symbol string
	Name   string
}

var (
	All        = Category{Key: "all", Name: "All"}
	History    = Category{Key: "history", Symbol: "🕘", Name: "Recently used"}
	Emotion    = Category{Key: "emotion", Symbol: "😀", Name: "Smileys & Emotion"}
	People     = Category{Key: "people", Symbol: "🧑", Name: "People & Body"}
	Nature     = Category{Key: "nature", Symbol: "🐻", Name: "Animals & Nature"}
	Food       = Category{Key: "food", Symbol: "🍔", Name: "Food & Drink"}
	Activities = Category{Key: "activities", Symbol: "⚾️", Name: "Activities"}
	Places     = Category{Key: "places", Symbol: "✈️", Name: "Travel & Places"}
	Objects    = Category{Key: "objects", Symbol: "💡", Name: "Objects"}
	Symbols    = Category{Key: "symbols", Symbol: "🔣", Name: "Symbols"}
	Flags      = Category{Key: "flags", Symbol: "🚩", Name: "Flags"}
)

// Categories returns the fixed category enumeration in display order. The
// order decides the concatenation order of the All view.
func Categories() []Category {
	return []Category{
		All,
		History,
		Emotion,
		People,
		Nature,
		Food,
		Activities,
		Places,
		Objects,
		Symbols,
		Flags,
	}
}

// CategoryByKey looks a category up by its key, case-insensitively.
func CategoryByKey(key string) (Category, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, c := range Categories() {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryByName looks a category up by its display name.
func CategoryByName(name string) (Category, bool) {
	name = strings.TrimSpace(name)
	for _, c := range Categories() {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// ParseCategory accepts either a key or a display name.
func ParseCategory(s string) (Category, bool) {
	if c, ok := CategoryByKey(s); ok {
		return c, true
	}
	return CategoryByName(s)
}

// Synthetic reports whether the category is not backed by dataset items.
func (c Category) Synthetic() bool {
	return c.Key == All.Key || c.Key == History.Key
}

// TranslationKey is the identifier used to look up the category title.
func (c Category) TranslationKey() string {
	return "emoji" + c.Name
}

func (c Category) String() string {
	return c.Name
}
