// Package grid lays the display list out as a scrollable grid with a cursor.
package grid

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/viewport"
	"github.com/mattn/go-runewidth"

	"tableflip.dev/emojisel/pkg/selection"
	"tableflip.dev/emojisel/pkg/tui/theme"
)

type Model struct {
	viewport viewport.Model
	entries  []selection.Entry
	columns  int
	cell     int
	cursor   int
	top      int
	styles   theme.GridTheme
}

// New makes a grid with the given column count.
func New(columns int, styles theme.GridTheme) *Model {
	if columns < 1 {
		columns = 1
	}
	return &Model{
		viewport: viewport.New(viewport.WithWidth(1), viewport.WithHeight(1)),
		columns:  columns,
		cell:     2,
		styles:   styles,
	}
}

// SetSize sizes the viewport holding the grid.
func (m *Model) SetSize(width, height int) {
	m.viewport.SetWidth(max(width, 1))
	m.viewport.SetHeight(max(height, 1))
	m.scrollToCursor()
	m.render()
}

// SetCellWidth sets the width of one cell, never narrower than one
// double-width glyph.
func (m *Model) SetCellWidth(width int) {
	m.cell = max(width, 2)
	m.render()
}

// SetEntries replaces the displayed entries, keeping the cursor in range.
func (m *Model) SetEntries(entries []selection.Entry) {
	m.entries = entries
	if m.cursor >= len(entries) {
		m.cursor = max(len(entries)-1, 0)
	}
	m.scrollToCursor()
	m.render()
}

// Reset moves the cursor and the scroll position back to the origin.
func (m *Model) Reset() {
	m.cursor = 0
	m.top = 0
	m.viewport.SetYOffset(0)
	m.render()
}

// Move shifts the cursor by dx cells and dy rows, clamped to the entries.
func (m *Model) Move(dx, dy int) {
	if len(m.entries) == 0 {
		return
	}
	next := m.cursor + dx + dy*m.columns
	if next < 0 {
		next = 0
	}
	if next >= len(m.entries) {
		next = len(m.entries) - 1
	}
	m.cursor = next
	m.scrollToCursor()
	m.render()
}

// PageRows is the number of rows visible at once.
func (m *Model) PageRows() int {
	return max(m.viewport.Height(), 1)
}

// Selected returns the entry under the cursor.
func (m *Model) Selected() (selection.Entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return selection.Entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) Cursor() int { return m.cursor }

func (m *Model) CellWidth() int { return m.cell }

// Top is the first visible row.
func (m *Model) Top() int { return m.top }

func (m *Model) Rows() int {
	return (len(m.entries) + m.columns - 1) / m.columns
}

func (m *Model) View() string {
	return m.viewport.View()
}

func (m *Model) scrollToCursor() {
	row := m.cursor / m.columns
	page := m.PageRows()
	switch {
	case row < m.top:
		m.top = row
	case row >= m.top+page:
		m.top = row - page + 1
	}
	m.viewport.SetYOffset(m.top)
}

func (m *Model) render() {
	var b strings.Builder
	for i, e := range m.entries {
		if i > 0 && i%m.columns == 0 {
			b.WriteByte('\n')
		}
		cell := pad(e.Item.Glyph(), m.cell)
		if i == m.cursor {
			b.WriteString(m.styles.Selected.Render(cell))
		} else {
			b.WriteString(m.styles.Cell.Render(cell))
		}
	}
	m.viewport.SetContent(b.String())
	m.viewport.SetYOffset(m.top)
}

func pad(s string, width int) string {
	sw := runewidth.StringWidth(s)
	if sw >= width {
		return s
	}
	left := (width - sw) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-sw-left)
}
