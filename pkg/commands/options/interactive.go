package options

import (
	"github.com/spf13/cobra"
)

// InteractiveOptions
type InteractiveOptions struct {
	Simple bool
	Copy   bool
}

func AddInteractiveArgs(cmd *cobra.Command, o *InteractiveOptions) {
	cmd.Flags().BoolVar(&o.Simple, "simple", false,
		`Use line prompts instead of the full screen picker.`)
	cmd.Flags().BoolVarP(&o.Copy, "copy", "c", false,
		`Copy the picked emoji to the clipboard instead of printing it.`)
}
