package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/emojisel/pkg/commands/options"
	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/runner/search"
	"tableflip.dev/emojisel/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	ko := &options.CodeOptions{}
	var locale string

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find", "ls"},
		Short:   "print emoji matching a query",
		Long: options.Wrap80("Print every emoji with a short name containing the query. " +
			"Without a query, print the emoji of --category instead."),
		Example: `
emojisel search dog
emojisel search --category flags
emojisel search smil --json
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := co.Resolve()
			if err != nil {
				return output.HandleError(err)
			}

			bundle, err := i18n.LoadEmbedded()
			if err != nil {
				return err
			}

			s := search.Search{
				Query:      strings.Join(args, " "),
				Category:   c,
				ShowCode:   ko.ShowCode,
				JSON:       output.JSON,
				Translator: bundle.Printer(locale),
				Out:        cmd.OutOrStdout(),
			}
			if c == emoji.History {
				p, err := store.Load(nil)
				if err != nil {
					return output.HandleError(err)
				}
				s.History = history.NewStore(p)
			}
			return output.HandleError(s.Do(cmd.Context()))
		},
	}

	options.AddCategoryArgs(cmd, co, emoji.All.Key)
	options.AddShowCodeArgs(cmd, ko)
	cmd.Flags().StringVar(&locale, "locale", i18n.BaseLocale, "Locale for titles and messages.")

	topLevel.AddCommand(cmd)
}
