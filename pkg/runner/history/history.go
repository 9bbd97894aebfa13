// Package history shows and resets the recently used emoji.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/emojisel/pkg/emoji"
	hist "tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/printers"
)

// Clearer is a history store that can forget everything it holds.
type Clearer interface {
	hist.Store
	Clear(ctx context.Context) error
}

type History struct {
	Store    Clearer
	Clear    bool
	ShowCode bool
	JSON     bool
	// Confirm, when set, is asked before clearing.
	Confirm func() (bool, error)

	Out io.Writer
}

func (h *History) Do(ctx context.Context) error {
	if h.Out == nil {
		h.Out = color.Output
	}
	if h.Store == nil {
		return errors.New("can not read history, no persistence")
	}

	if h.Clear {
		return h.clear(ctx)
	}

	records, err := h.Store.Load(ctx)
	if err != nil {
		return err
	}

	if h.JSON {
		if records == nil {
			records = []hist.Record{}
		}
		b, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(h.Out, string(b))
		return err
	}

	pp := printers.PrettyPrint{ShowCode: h.ShowCode}
	pp.NewLine()
	pp.TitleWithCount(emoji.History.Name, len(records))
	pp.Items(hist.Items(records)...)
	return nil
}

func (h *History) clear(ctx context.Context) error {
	if h.Confirm != nil {
		ok, err := h.Confirm()
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(h.Out, "history kept")
			return nil
		}
	}
	if err := h.Store.Clear(ctx); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(h.Out, "history cleared")
	return nil
}
