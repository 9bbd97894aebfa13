package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/store"
)

type Info struct {
	Config      store.Config
	Persistence store.Persistence
	Out         io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}

	if override := os.Getenv("EMOJISEL_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "EMOJISEL_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, "EMOJISEL_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	if f := n.Config.ConfigFile(); f != "" {
		_, _ = fmt.Fprintln(n.Out, "Config.file:", f)
	} else {
		_, _ = fmt.Fprintln(n.Out, "Config.file: none, using defaults")
	}
	_, _ = fmt.Fprintln(n.Out, "Config.path:", n.Config.BasePath())

	cat, err := emoji.Default()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(n.Out, "Catalogue: %d emoji, %d current\n", cat.Len(), len(cat.Current()))

	if n.Persistence == nil {
		return fmt.Errorf("failed to create persistence object")
	}

	_, _ = fmt.Fprintf(n.Out, "Keys:\n")
	found := 0
	for _, k := range n.Persistence.Keys(ctx) {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", k)
		found++
	}
	if found == 0 {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", "no keys")
	}

	records, err := history.NewStore(n.Persistence).Load(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(n.Out, color.YellowString("History: %v", err))
		return nil
	}
	_, _ = fmt.Fprintf(n.Out, "History: %d recently used\n", len(records))
	return nil
}
