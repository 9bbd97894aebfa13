package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/emojisel/pkg/commands/options"
	hist "tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/runner/history"
	"tableflip.dev/emojisel/pkg/snake"
	"tableflip.dev/emojisel/pkg/store"
)

func addHistory(topLevel *cobra.Command) {
	ko := &options.CodeOptions{}
	var (
		forget bool
		yes   bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "show or clear the recently used emoji",
		Example: `
emojisel history
emojisel history --json
emojisel history --clear --yes
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			p, err := store.Load(nil)
			if err != nil {
				return output.HandleError(err)
			}
			h := history.History{
				Store:    hist.NewStore(p),
				Clear:    forget,
				ShowCode: ko.ShowCode,
				JSON:     output.JSON,
				Out:      cmd.OutOrStdout(),
			}
			if forget && !yes {
				h.Confirm = func() (bool, error) {
					return snake.Confirm(cmd.InOrStdin(), cmd.OutOrStdout(), "Forget all recently used emoji?", false)
				}
			}
			return output.HandleError(h.Do(cmd.Context()))
		},
	}

	options.AddShowCodeArgs(cmd, ko)
	cmd.Flags().BoolVar(&forget, "clear", false, "Forget every recently used emoji.")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask before clearing.")

	topLevel.AddCommand(cmd)
}
