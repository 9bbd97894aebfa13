// Package pick runs the interactive emoji picker.
package pick

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/picker"
	"tableflip.dev/emojisel/pkg/selection"
	"tableflip.dev/emojisel/pkg/snake"
	"tableflip.dev/emojisel/pkg/store"
	"tableflip.dev/emojisel/pkg/tui/app"
)

// ErrNothingPicked is returned when the picker exits without a selection.
var ErrNothingPicked = errors.New("no emoji picked")

// Pick shows the picker and reports the chosen emoji.
type Pick struct {
	Options picker.Options
	Locale  string
	// Persistence holds the history. When nil, history lives in memory for
	// the duration of the run.
	Persistence store.Persistence

	// Copy puts the result on the clipboard instead of printing it.
	Copy bool
	// Simple uses the line prompt instead of the full screen picker.
	Simple bool

	In  io.Reader
	Out io.Writer
}

func (p *Pick) Do(ctx context.Context) error {
	if p.In == nil {
		p.In = os.Stdin
	}
	if p.Out == nil {
		p.Out = color.Output
	}

	cat, err := emoji.Default()
	if err != nil {
		return err
	}
	index := emoji.NewIndex(cat, emoji.Categories())

	var hs history.Store = history.NewMemoryStore()
	if p.Persistence != nil {
		hs = history.NewStore(p.Persistence)
	}

	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		return err
	}
	tr := bundle.Printer(p.Locale)

	var glyph string
	if p.Simple {
		glyph, err = p.prompt(ctx, index, hs)
	} else {
		glyph, err = p.run(ctx, index, hs, tr)
	}
	if err != nil {
		return err
	}
	if glyph == "" {
		return ErrNothingPicked
	}
	return p.report(glyph)
}

func (p *Pick) run(ctx context.Context, index *emoji.Index, hs history.Store, tr i18n.Translator) (string, error) {
	if os.Getenv("EMOJISEL_DEBUG") != "" {
		f, err := tea.LogToFile("emojisel-debug.log", "emojisel")
		if err != nil {
			return "", err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	var picked string
	ctrl, err := picker.New(index, hs, p.Options, func(g string) { picked = g }, nil)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var watch <-chan store.Event
	if p.Options.ShowHistory && p.Persistence != nil {
		watch, err = p.Persistence.Watch(ctx)
		if err != nil {
			log.Printf("pick: history sync disabled: %v", err)
			watch = nil
		}
	}

	model := app.New(app.Config{
		Controller:   ctrl,
		Translator:   tr,
		Watch:        watch,
		QuitOnSelect: true,
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	ctrl.Unmount()
	if err != nil {
		return "", err
	}
	return picked, nil
}

// prompt walks category then emoji with line prompts.
func (p *Pick) prompt(ctx context.Context, index *emoji.Index, hs history.Store) (string, error) {
	st := selection.State{
		ActiveCategory:   p.Options.InitialCategory,
		Ready:            true,
		CategorizedItems: index.Grouped(),
		ColumnSize:       1,
	}

	cats := make([]emoji.Category, 0, len(index.Categories()))
	for _, c := range index.Categories() {
		if c == emoji.History && !p.Options.ShowHistory {
			continue
		}
		cats = append(cats, c)
	}
	if p.Options.ShowTabs {
		c, err := snake.PromptCategory(p.In, p.Out, cats)
		if err != nil {
			return "", err
		}
		st.ActiveCategory = c
	}

	if p.Options.ShowHistory {
		records, err := hs.Load(ctx)
		if err != nil && p.Options.StrictHistory {
			return "", err
		}
		st.History = records
	}

	entries, err := selection.NewEngine(index).DisplayList(st, nil)
	if err != nil {
		return "", err
	}
	items := make([]emoji.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e.Item)
	}

	item, err := snake.PromptEmoji(p.In, p.Out, st.ActiveCategory.Name, items)
	if err != nil {
		return "", err
	}
	if p.Options.ShowHistory {
		if _, err := hs.Record(ctx, item); err != nil {
			_, _ = fmt.Fprintln(os.Stderr, color.YellowString("warning: %v", err))
		}
	}
	return item.Glyph(), nil
}

func (p *Pick) report(glyph string) error {
	if p.Copy {
		if err := clipboard.WriteAll(glyph); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		if terminal(p.Out) {
			_, _ = fmt.Fprintf(p.Out, "%s %s\n", glyph, color.New(color.Faint).Sprint("copied to the clipboard"))
		}
		return nil
	}
	if terminal(p.Out) {
		_, _ = fmt.Fprintln(p.Out, color.New(color.Bold).Sprint(glyph))
		return nil
	}
	_, err := fmt.Fprintln(p.Out, glyph)
	return err
}

// terminal reports whether w is an interactive terminal.
func terminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
