package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/emojisel/pkg/commands/options"
	"tableflip.dev/emojisel/pkg/runner/pick"
	"tableflip.dev/emojisel/pkg/store"
)

func addPick(topLevel *cobra.Command) {
	po := &options.PickerOptions{}
	io := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "open the emoji picker and print the chosen emoji",
		Long: options.Wrap80("Open the full screen emoji picker. Tab through categories, " +
			"type to search, move with the arrow keys and press enter to pick. " +
			"The picked emoji is printed, or copied with --copy."),
		Example: `
emojisel pick
emojisel pick --history --category history
emojisel pick --columns 10 --theme "#FF2D55" --copy
emojisel pick --simple
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			opts, locale, err := po.Resolve(cmd.Flags())
			if err != nil {
				return err
			}

			p := pick.Pick{
				Options: opts,
				Locale:  locale,
				Copy:    io.Copy,
				Simple:  io.Simple,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
			}
			if opts.ShowHistory {
				p.Persistence, err = store.Load(cfg)
				if err != nil {
					return err
				}
			}
			return output.HandleError(p.Do(cmd.Context()))
		},
	}

	options.AddPickerArgs(cmd, po)
	options.AddInteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
