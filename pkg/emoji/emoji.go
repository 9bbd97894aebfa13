// Package emoji holds the static emoji catalogue and its per-category index.
package emoji

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

//go:embed data/emoji.json
var catalogueJSON []byte

// Item is one selectable entry of the catalogue. The JSON shape follows the
// upstream emoji dataset so persisted history stays compatible with it.
type Item struct {
	Name        string   `json:"name,omitempty"`
	Unified     string   `json:"unified"`
	ShortNames  []string `json:"short_names"`
	Category    string   `json:"category"`
	SortOrder   int      `json:"sort_order"`
	ObsoletedBy string   `json:"obsoleted_by,omitempty"`
}

// Obsolete reports whether the item has been superseded by another one.
func (i Item) Obsolete() bool {
	return i.ObsoletedBy != ""
}

// Glyph returns the rendered text of the item. Malformed code points render
// as an empty string.
func (i Item) Glyph() string {
	s, err := Decode(i.Unified)
	if err != nil {
		return ""
	}
	return s
}

// MatchesName reports whether any short name contains query, ignoring case.
func (i Item) MatchesName(query string) bool {
	query = strings.ToLower(query)
	for _, name := range i.ShortNames {
		if strings.Contains(strings.ToLower(name), query) {
			return true
		}
	}
	return false
}

// PrimaryName is the first short name, or the unified code when there is none.
func (i Item) PrimaryName() string {
	if len(i.ShortNames) > 0 {
		return i.ShortNames[0]
	}
	return i.Unified
}

func (i Item) String() string {
	return i.Glyph()
}

// Decode turns a hyphen separated list of hexadecimal code points, such as
// "1F3F3-FE0F-200D-1F308", into the text it represents.
func Decode(unified string) (string, error) {
	unified = strings.TrimSpace(unified)
	if unified == "" {
		return "", fmt.Errorf("emoji: empty code point sequence")
	}
	var b strings.Builder
	for _, part := range strings.Split(unified, "-") {
		cp, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return "", fmt.Errorf("emoji: code point %q: %w", part, err)
		}
		r := rune(cp)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("emoji: code point %q is not a valid rune", part)
		}
		b.WriteRune(r)
	}
	return b.String(), nil
}

// Catalogue is the immutable static item table.
type Catalogue struct {
	items []Item
}

// Load parses a JSON array of items.
func Load(data []byte) (*Catalogue, error) {
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("emoji: decode catalogue: %w", err)
	}
	for idx, it := range items {
		if it.Unified == "" {
			return nil, fmt.Errorf("emoji: catalogue entry %d has no unified code", idx)
		}
	}
	return &Catalogue{items: items}, nil
}

var embedded = sync.OnceValues(func() (*Catalogue, error) {
	return Load(catalogueJSON)
})

// Default returns the catalogue bundled with the binary.
func Default() (*Catalogue, error) {
	return embedded()
}

// MustDefault is Default for callers that treat the bundled data as a build
// time invariant.
func MustDefault() *Catalogue {
	c, err := Default()
	if err != nil {
		panic(err)
	}
	return c
}

// Len reports the size of the raw table, obsoleted items included.
func (c *Catalogue) Len() int {
	return len(c.items)
}

// Items returns a copy of the raw table, obsoleted items included.
func (c *Catalogue) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Current returns every item that has not been superseded, in table order.
func (c *Catalogue) Current() []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if !it.Obsolete() {
			out = append(out, it)
		}
	}
	return out
}

// Lookup finds a current item by its unified code.
func (c *Catalogue) Lookup(unified string) (Item, bool) {
	unified = strings.ToUpper(strings.TrimSpace(unified))
	for _, it := range c.items {
		if it.Unified == unified && !it.Obsolete() {
			return it, true
		}
	}
	return Item{}, false
}

// LookupName finds a current item by one of its short names.
func (c *Catalogue) LookupName(name string) (Item, bool) {
	name = strings.ToLower(strings.Trim(strings.TrimSpace(name), ":"))
	for _, it := range c.items {
		if it.Obsolete() {
			continue
		}
		for _, n := range it.ShortNames {
			if n == name {
				return it, true
			}
		}
	}
	return Item{}, false
}
