// Package categories lists the picker categories.
package categories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/i18n"
)

// Categories prints every category with its symbol and item count.
type Categories struct {
	Translator i18n.Translator
	JSON       bool
	Out        io.Writer
}

// Summary is the JSON shape of one category row.
type Summary struct {
	Key    string `json:"key"`
	Symbol string `json:"symbol,omitempty"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Count  int    `json:"count"`
}

// Summaries describes cats against index. Synthetic categories report the
// size of the view they stand for: All counts every real item and History
// reports -1 because it depends on stored state. Without tr the title is the
// category name.
func Summaries(index *emoji.Index, tr i18n.Translator) []Summary {
	out := make([]Summary, 0, len(index.Categories()))
	for _, c := range index.Categories() {
		s := Summary{
			Key:    c.Key,
			Symbol: c.Symbol,
			Name:   c.Name,
			Title:  c.Name,
			Count:  index.Count(c.Name),
		}
		if tr != nil {
			s.Title = tr.T(c.TranslationKey())
		}
		switch c {
		case emoji.All:
			s.Count = 0
			for _, other := range index.Categories() {
				if !other.Synthetic() {
					s.Count += index.Count(other.Name)
				}
			}
		case emoji.History:
			s.Count = -1
		}
		out = append(out, s)
	}
	return out
}

func (c *Categories) Do(ctx context.Context) error {
	if c.Out == nil {
		c.Out = color.Output
	}
	cat, err := emoji.Default()
	if err != nil {
		return err
	}
	rows := Summaries(emoji.NewIndex(cat, emoji.Categories()), c.Translator)

	if c.JSON {
		b, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(c.Out, string(b))
		return err
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("", bold.Sprint("Key"), bold.Sprint("Name"), bold.Sprint("Items"))
	for _, r := range rows {
		count := strconv.Itoa(r.Count)
		if r.Count < 0 {
			count = faint.Sprint("-")
		}
		tbl.AddRow(r.Symbol, r.Key, r.Title, count)
	}
	tbl.RightAlign(3)

	_, _ = fmt.Fprintln(c.Out, "")
	_, _ = fmt.Fprintln(c.Out, tbl)
	_, _ = fmt.Fprintln(c.Out, "")
	return nil
}
