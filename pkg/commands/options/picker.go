package options

import (
	"fmt"
	"log"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/picker"
	"tableflip.dev/emojisel/pkg/store"
)

// PickerOptions are the widget options a command can override for one run.
// Unset flags fall back to the config file, then EMOJISEL_* variables, then
// the defaults.
type PickerOptions struct {
	Theme         string
	Category      string
	Tabs          bool
	Search        bool
	History       bool
	Titles        bool
	Columns       int
	Placeholder   string
	Locale        string
	StrictHistory bool
}

// pickerFlags maps flag names to config keys.
var pickerFlags = map[string]string{
	"theme":          store.KeyTheme,
	"category":       store.KeyCategory,
	"tabs":           store.KeyTabs,
	"search":         store.KeySearch,
	"history":        store.KeyHistory,
	"titles":         store.KeyTitles,
	"columns":        store.KeyColumns,
	"placeholder":    store.KeyPlaceholder,
	"locale":         store.KeyLocale,
	"strict-history": store.KeyStrictHistory,
}

func AddPickerArgs(cmd *cobra.Command, o *PickerOptions) {
	d := picker.DefaultOptions()
	f := cmd.Flags()
	f.StringVar(&o.Theme, "theme", d.Theme, "Accent colour as #RRGGBB.")
	f.StringVar(&o.Category, "category", d.InitialCategory.Key,
		"Category shown first.")
	f.BoolVar(&o.Tabs, "tabs", d.ShowTabs, "Show the category tabs.")
	f.BoolVar(&o.Search, "search", d.ShowSearchBar, "Show the search bar.")
	f.BoolVar(&o.History, "history", d.ShowHistory, "Remember picks and offer them as recently used.")
	f.BoolVar(&o.Titles, "titles", d.ShowSectionTitles, "Show the section title above the grid.")
	f.IntVar(&o.Columns, "columns", d.ColumnCount, "Number of grid columns.")
	f.StringVar(&o.Placeholder, "placeholder", d.SearchPlaceholder, "Search bar placeholder.")
	f.StringVar(&o.Locale, "locale", "en-US", "Locale for titles and messages.")
	f.BoolVar(&o.StrictHistory, "strict-history", false, "Report unreadable history instead of starting empty.")

	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("locale", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"en-US", "de-DE", "fr-FR"}, cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve merges flags in fs with the loaded configuration. Call it after
// store.LoadConfig so the config file has been read.
func (o *PickerOptions) Resolve(fs *pflag.FlagSet) (picker.Options, string, error) {
	v := viper.GetViper()
	for name, key := range pickerFlags {
		if flag := fs.Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return picker.Options{}, "", err
			}
		}
	}

	opts := picker.Options{
		Theme:             v.GetString(store.KeyTheme),
		ShowTabs:          v.GetBool(store.KeyTabs),
		ShowSearchBar:     v.GetBool(store.KeySearch),
		ShowHistory:       v.GetBool(store.KeyHistory),
		ShowSectionTitles: v.GetBool(store.KeyTitles),
		ColumnCount:       v.GetInt(store.KeyColumns),
		SearchPlaceholder: v.GetString(store.KeyPlaceholder),
		StrictHistory:     v.GetBool(store.KeyStrictHistory),
	}

	if _, err := colorful.Hex(opts.Theme); err != nil {
		log.Printf("theme %q is not a hex colour, using %s", opts.Theme, picker.DefaultTheme)
		opts.Theme = picker.DefaultTheme
	}

	c, ok := emoji.ParseCategory(v.GetString(store.KeyCategory))
	if !ok {
		return picker.Options{}, "", fmt.Errorf("unknown category %q", v.GetString(store.KeyCategory))
	}
	opts.InitialCategory = c

	opts, err := opts.Normalize()
	if err != nil {
		return picker.Options{}, "", err
	}
	return opts, v.GetString(store.KeyLocale), nil
}
