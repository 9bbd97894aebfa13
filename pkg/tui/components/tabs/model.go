// Package tabs renders the category tab bar.
package tabs

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/tui/theme"
)

// Model is a row of category symbols with an indicator under the active one.
type Model struct {
	categories []emoji.Category
	active     string
	width      int
	styles     theme.TabTheme
}

func New(categories []emoji.Category, styles theme.TabTheme) *Model {
	return &Model{categories: categories, styles: styles}
}

func (m *Model) SetWidth(width int) { m.width = width }

// SetActive marks the tab with the given category key. All matches no tab.
func (m *Model) SetActive(key string) { m.active = key }

// TabWidth is the width each tab gets: the bar width split evenly.
func (m *Model) TabWidth() int {
	if len(m.categories) == 0 {
		return 0
	}
	return max(m.width/len(m.categories), 3)
}

// View renders two lines: the symbols and the active indicator.
func (m *Model) View() string {
	w := m.TabWidth()
	var symbols, indicator strings.Builder
	for _, c := range m.categories {
		cell := center(c.Symbol, w)
		if c.Key == m.active {
			symbols.WriteString(m.styles.Active.Render(cell))
			indicator.WriteString(m.styles.Indicator.Render(strings.Repeat("━", w)))
			continue
		}
		symbols.WriteString(m.styles.Inactive.Render(cell))
		indicator.WriteString(strings.Repeat(" ", w))
	}
	return lipgloss.JoinVertical(lipgloss.Left, symbols.String(), indicator.String())
}

func center(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}
