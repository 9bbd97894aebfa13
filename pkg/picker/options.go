package picker

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/emojisel/pkg/emoji"
)

// DefaultTheme is the accent colour used when none is configured.
const DefaultTheme = "#007AFF"

// Options configures a Controller. The zero value is not useful; start from
// DefaultOptions.
type Options struct {
	Theme             string
	InitialCategory   emoji.Category
	ShowTabs          bool
	ShowSearchBar     bool
	ShowHistory       bool
	ShowSectionTitles bool
	ColumnCount       int
	SearchPlaceholder string

	// StrictHistory surfaces unreadable history instead of silently
	// treating it as empty.
	StrictHistory bool
}

func DefaultOptions() Options {
	return Options{
		Theme:             DefaultTheme,
		InitialCategory:   emoji.All,
		ShowTabs:          true,
		ShowSearchBar:     true,
		ShowHistory:       false,
		ShowSectionTitles: true,
		ColumnCount:       6,
		SearchPlaceholder: "Search...",
	}
}

// Normalize fills unset fields with defaults and validates the theme colour.
func (o Options) Normalize() (Options, error) {
	d := DefaultOptions()
	if o.Theme == "" {
		o.Theme = d.Theme
	}
	if _, err := colorful.Hex(o.Theme); err != nil {
		return o, fmt.Errorf("picker: theme %q is not a hex colour: %w", o.Theme, err)
	}
	if o.InitialCategory.Key == "" {
		o.InitialCategory = d.InitialCategory
	}
	if _, ok := emoji.CategoryByKey(o.InitialCategory.Key); !ok {
		return o, fmt.Errorf("picker: unknown initial category %q", o.InitialCategory.Key)
	}
	if o.ColumnCount < 1 {
		o.ColumnCount = 1
	}
	if o.SearchPlaceholder == "" {
		o.SearchPlaceholder = d.SearchPlaceholder
	}
	return o, nil
}
