package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/runner/categories"
)

func addCategories(topLevel *cobra.Command) {
	var locale string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "list the picker categories",
		Example: `
emojisel categories
emojisel categories --locale de-DE
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			bundle, err := i18n.LoadEmbedded()
			if err != nil {
				return err
			}
			c := categories.Categories{
				Translator: bundle.Printer(locale),
				JSON:       output.JSON,
				Out:        cmd.OutOrStdout(),
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&locale, "locale", i18n.BaseLocale, "Locale for category titles.")

	topLevel.AddCommand(cmd)
}
