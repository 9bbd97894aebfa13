package emoji

import "sort"

// Index is the per-category, sort-ordered view of a catalogue. It is built
// once and never changes afterwards.
type Index struct {
	categories []Category
	current    []Item
	grouped    map[string][]Item
}

// NewIndex groups the current items of c by the given categories.
func NewIndex(c *Catalogue, categories []Category) *Index {
	current := c.Current()
	return &Index{
		categories: append([]Category(nil), categories...),
		current:    current,
		grouped:    Initialize(current, categories),
	}
}

// Initialize drops obsoleted items, partitions the rest by category name and
// stable-sorts each partition by sort order. Every category gets an entry,
// possibly empty.
func Initialize(items []Item, categories []Category) map[string][]Item {
	out := make(map[string][]Item, len(categories))
	for _, c := range categories {
		out[c.Name] = []Item{}
	}
	for _, it := range items {
		if it.Obsolete() {
			continue
		}
		list, ok := out[it.Category]
		if !ok {
			continue
		}
		out[it.Category] = append(list, it)
	}
	for name := range out {
		SortBySortOrder(out[name])
	}
	return out
}

// SortBySortOrder orders items by ascending sort order, keeping ties stable.
func SortBySortOrder(items []Item) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].SortOrder < items[j].SortOrder
	})
}

// Categories returns the enumeration the index was built with.
func (x *Index) Categories() []Category {
	return append([]Category(nil), x.categories...)
}

// Current returns all non-obsoleted items in table order.
func (x *Index) Current() []Item {
	return append([]Item(nil), x.current...)
}

// Category returns the sorted items of the named category.
func (x *Index) Category(name string) []Item {
	return append([]Item(nil), x.grouped[name]...)
}

// Grouped returns a copy of the category name to items mapping.
func (x *Index) Grouped() map[string][]Item {
	out := make(map[string][]Item, len(x.grouped))
	for k, v := range x.grouped {
		out[k] = append([]Item(nil), v...)
	}
	return out
}

// Count reports how many items the named category holds.
func (x *Index) Count(name string) int {
	return len(x.grouped[name])
}
