// Package selection computes which items the picker shows for a given state.
package selection

import (
	"errors"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
)

// ErrNotFound signals that a non-empty search query matched nothing. An empty
// category is not an error.
var ErrNotFound = errors.New("selection: nothing matches the search query")

// State is the picker state the display list is derived from.
type State struct {
	SearchQuery      string
	ActiveCategory   emoji.Category
	Ready            bool
	History          []history.Record
	CategorizedItems map[string][]emoji.Item
	ColumnSize       int
	ViewportWidth    int
}

// Searching reports whether a search query is active.
func (s State) Searching() bool {
	return s.SearchQuery != ""
}

// Entry is one cell of the display list.
type Entry struct {
	Key  string
	Item emoji.Item
}

// Predicate decides whether an item may be displayed.
type Predicate func(emoji.Item) bool

// Engine evaluates display lists against a fixed catalogue.
type Engine struct {
	categories []emoji.Category
	catalogue  []emoji.Item
}

// NewEngine searches over the current items of x and concatenates its
// categories, in enumeration order, for the All view.
func NewEngine(x *emoji.Index) *Engine {
	return &Engine{
		categories: x.Categories(),
		catalogue:  x.Current(),
	}
}

// DisplayList applies, in order: the All view when no query is set, a search
// over the whole catalogue when one is, the history list, and finally the
// active category's items. include, when non-nil, drops items it rejects.
func (e *Engine) DisplayList(st State, include Predicate) ([]Entry, error) {
	var items []emoji.Item
	switch {
	case st.ActiveCategory.Key == emoji.All.Key && !st.Searching():
		for _, c := range e.categories {
			if c.Synthetic() {
				continue
			}
			items = append(items, st.CategorizedItems[c.Name]...)
		}
	case st.Searching():
		items = e.Search(st.SearchQuery)
	case st.ActiveCategory.Key == emoji.History.Key:
		items = history.Items(st.History)
	default:
		items = st.CategorizedItems[st.ActiveCategory.Name]
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		if include != nil && !include(it) {
			continue
		}
		entries = append(entries, Entry{Key: it.Unified, Item: it})
	}
	if len(entries) == 0 && st.Searching() {
		return entries, ErrNotFound
	}
	return entries, nil
}

// Search returns every catalogue item with a short name containing query,
// ignoring case, ordered by sort order.
func (e *Engine) Search(query string) []emoji.Item {
	out := make([]emoji.Item, 0)
	for _, it := range e.catalogue {
		if it.MatchesName(query) {
			out = append(out, it)
		}
	}
	emoji.SortBySortOrder(out)
	return out
}
