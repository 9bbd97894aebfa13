// Package search prints emoji matching a query or belonging to a category.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/printers"
	"tableflip.dev/emojisel/pkg/selection"
)

type Search struct {
	Query    string
	Category emoji.Category
	ShowCode bool
	JSON     bool
	// History feeds the history category. It may be nil.
	History    history.Store
	Translator i18n.Translator

	Out io.Writer
}

// Result is the JSON shape of one printed emoji.
type Result struct {
	Emoji      string   `json:"emoji"`
	Unified    string   `json:"unified"`
	ShortNames []string `json:"shortNames"`
	Category   string   `json:"category"`
}

func (s *Search) Do(ctx context.Context) error {
	if s.Out == nil {
		s.Out = color.Output
	}
	if s.Translator == nil {
		s.Translator = i18n.Identity{}
	}
	if s.Category.Key == "" {
		s.Category = emoji.All
	}

	cat, err := emoji.Default()
	if err != nil {
		return err
	}
	index := emoji.NewIndex(cat, emoji.Categories())

	st := selection.State{
		SearchQuery:      strings.TrimSpace(s.Query),
		ActiveCategory:   s.Category,
		Ready:            true,
		CategorizedItems: index.Grouped(),
		ColumnSize:       1,
	}
	if st.ActiveCategory == emoji.History && !st.Searching() {
		if s.History == nil {
			return errors.New("history is not configured")
		}
		st.History, err = s.History.Load(ctx)
		if err != nil {
			return err
		}
	}

	entries, err := selection.NewEngine(index).DisplayList(st, nil)
	if err != nil && !errors.Is(err, selection.ErrNotFound) {
		return err
	}
	notFound := errors.Is(err, selection.ErrNotFound)

	items := make([]emoji.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.Item)
	}

	if s.JSON {
		return s.printJSON(items)
	}

	if notFound {
		_, _ = fmt.Fprintln(s.Out, color.New(color.Faint, color.Italic).Sprint(s.Translator.T(i18n.KeyNotFound)))
		return nil
	}

	title := s.Translator.T(st.ActiveCategory.TranslationKey())
	if st.Searching() {
		title = s.Translator.T(i18n.KeySearchResults)
	}
	pp := printers.PrettyPrint{ShowCode: s.ShowCode}
	pp.NewLine()
	pp.TitleWithCount(title, len(items))
	pp.Items(items...)
	return nil
}

func (s *Search) printJSON(items []emoji.Item) error {
	out := make([]Result, 0, len(items))
	for _, it := range items {
		out = append(out, Result{
			Emoji:      it.Glyph(),
			Unified:    it.Unified,
			ShortNames: it.ShortNames,
			Category:   it.Category,
		})
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(s.Out, string(b))
	return err
}
