// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/emojisel/pkg/emoji"
)

// CategoryOptions captures a category selection flag.
type CategoryOptions struct {
	Category string
}

// AddCategoryArgs wires the category flag and its shell completion.
func AddCategoryArgs(cmd *cobra.Command, o *CategoryOptions, def string) {
	cmd.Flags().StringVar(&o.Category, "category", def,
		"Category key or name, one of "+strings.Join(CategoryKeys(), ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("category", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return CategoryCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
	})
}

// Resolve parses the flag value. An empty value resolves to All.
func (o *CategoryOptions) Resolve() (emoji.Category, error) {
	if strings.TrimSpace(o.Category) == "" {
		return emoji.All, nil
	}
	c, ok := emoji.ParseCategory(strings.TrimSpace(o.Category))
	if !ok {
		return emoji.Category{}, fmt.Errorf("unknown category %q, expected one of %s", o.Category, strings.Join(CategoryKeys(), ", "))
	}
	return c, nil
}

// CategoryKeys lists the category keys in display order.
func CategoryKeys() []string {
	keys := make([]string, 0, len(emoji.Categories()))
	for _, c := range emoji.Categories() {
		keys = append(keys, c.Key)
	}
	return keys
}

// CategoryCompletions returns the keys starting with toComplete, each
// described by its category name.
func CategoryCompletions(toComplete string) []string {
	out := make([]string, 0)
	for _, c := range emoji.Categories() {
		if strings.HasPrefix(c.Key, toComplete) {
			out = append(out, c.Key+"\t"+c.Name)
		}
	}
	return out
}
