// Package snake holds the line-oriented prompts used when a full screen picker
// is not wanted.
package snake

import (
	"errors"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/emojisel/pkg/emoji"
)

// ErrNothingToPick is returned when a prompt is given an empty list.
var ErrNothingToPick = errors.New("snake: nothing to pick from")

// PromptCategory asks for one of the given categories.
func PromptCategory(in io.Reader, out io.Writer, categories []emoji.Category) (emoji.Category, error) {
	if len(categories) == 0 {
		return emoji.Category{}, ErrNothingToPick
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Symbol }} {{ .Name | bold }}",
		Inactive: "   {{ .Symbol }} {{ .Name }}",
		Selected: "{{ .Symbol }} {{ .Name | bold }}",
	}

	searcher := func(input string, index int) bool {
		c := categories[index]
		name := squash(c.Name + c.Key)
		return strings.Contains(name, squash(input))
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Category",
		Items:     categories,
		Templates: templates,
		Size:      len(categories),
		Searcher:  searcher,
		Stdin:     io.NopCloser(in),
		Stdout:    nopWriteCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return emoji.Category{}, err
	}
	return categories[i], nil
}

// PromptEmoji asks for one of items. Typing filters by short name.
func PromptEmoji(in io.Reader, out io.Writer, label string, items []emoji.Item) (emoji.Item, error) {
	if len(items) == 0 {
		return emoji.Item{}, ErrNothingToPick
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ .Glyph }}  {{ .PrimaryName | bold }} {{ .Category | cyan }}",
		Inactive: "   {{ .Glyph }}  {{ .PrimaryName }} {{ .Category | faint }}",
		Selected: "{{ .Glyph }}  {{ .PrimaryName | bold }}",
		Details: `
--------- Details ----------
{{ "Names:" | faint }}	{{ range .ShortNames }}:{{ . }}: {{ end }}
{{ "Code:" | faint }}	{{ .Unified }}
`,
	}

	searcher := func(input string, index int) bool {
		return items[index].MatchesName(squash(input))
	}

	prompt := promptui.Select{
		HideHelp:          true,
		Label:             label,
		Items:             items,
		Templates:         templates,
		Size:              10,
		Searcher:          searcher,
		StartInSearchMode: true,
		Stdin:             io.NopCloser(in),
		Stdout:            nopWriteCloser{out},
	}

	i, _, err := prompt.Run()
	if err != nil {
		return emoji.Item{}, err
	}
	return items[i], nil
}

func squash(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
