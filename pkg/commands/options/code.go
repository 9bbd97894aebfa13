package options

import (
	"github.com/spf13/cobra"
)

// CodeOptions
type CodeOptions struct {
	ShowCode bool
}

func AddShowCodeArgs(cmd *cobra.Command, o *CodeOptions) {
	cmd.Flags().BoolVarP(&o.ShowCode, "show-code", "k", false,
		"Show the unified code point sequence of each emoji.")
}
