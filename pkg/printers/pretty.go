package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/emojisel/pkg/emoji"
)

type PrettyPrint struct {
	ShowCode bool
}

var (
	spacing = strings.Repeat(" ", len("1F1FA-1F1F8  "))
)

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowCode {
		_, _ = t.Fprint(color.Output, spacing)
	}
	_, _ = t.Fprintln(color.Output, title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowCode {
		_, _ = t.Fprint(color.Output, spacing)
	}
	_, _ = t.Fprint(color.Output, title)
	_, _ = c.Fprintf(color.Output, " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(color.Output, " item")
	default:
		_, _ = c.Fprintln(color.Output, " items")
	}
}

// Items prints one emoji per line followed by its short names.
func (pp *PrettyPrint) Items(items ...emoji.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowCode {
			_, _ = f.Fprint(color.Output, spacing)
		}
		_, _ = f.Fprint(color.Output, " none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	n := color.New(color.Faint)

	for _, it := range items {
		if pp.ShowCode {
			_, _ = y.Fprint(color.Output, it.Unified)
			if pad := len(spacing) - len(it.Unified); pad > 0 {
				_, _ = y.Fprint(color.Output, strings.Repeat(" ", pad))
			} else {
				_, _ = y.Fprint(color.Output, " ")
			}
		}
		_, _ = t.Fprintf(color.Output, "%s  :%s:", it.Glyph(), it.PrimaryName())
		if len(it.ShortNames) > 1 {
			_, _ = n.Fprintf(color.Output, " (%s)", strings.Join(it.ShortNames[1:], ", "))
		}
		_, _ = t.Fprintln(color.Output, "")
	}
	_, _ = t.Fprintln(color.Output, "")
}
