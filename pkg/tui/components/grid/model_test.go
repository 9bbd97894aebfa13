package grid

import (
	"strings"
	"testing"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/selection"
	"tableflip.dev/emojisel/pkg/tui/theme"
)

func entries(t *testing.T, n int) []selection.Entry {
	t.Helper()
	items := emoji.MustDefault().Current()
	if len(items) < n {
		t.Fatalf("catalogue too small for %d entries", n)
	}
	out := make([]selection.Entry, 0, n)
	for _, it := range items[:n] {
		out = append(out, selection.Entry{Key: it.Unified, Item: it})
	}
	return out
}

func TestMoveClampsAndWraps(t *testing.T) {
	m := New(4, theme.New(theme.DefaultAccent).Grid)
	m.SetSize(40, 10)
	m.SetEntries(entries(t, 10))

	m.Move(1, 0)
	if m.Cursor() != 1 {
		t.Fatalf("right = %d", m.Cursor())
	}
	m.Move(0, 1)
	if m.Cursor() != 5 {
		t.Fatalf("down = %d", m.Cursor())
	}
	m.Move(0, 5)
	if m.Cursor() != 9 {
		t.Fatalf("down past end = %d", m.Cursor())
	}
	m.Move(-100, 0)
	if m.Cursor() != 0 {
		t.Fatalf("left past start = %d", m.Cursor())
	}
	if m.Rows() != 3 {
		t.Fatalf("rows = %d", m.Rows())
	}
}

func TestScrollFollowsCursor(t *testing.T) {
	m := New(2, theme.New(theme.DefaultAccent).Grid)
	m.SetSize(10, 2)
	m.SetEntries(entries(t, 12))

	m.Move(0, 3)
	if m.Top() != 2 {
		t.Fatalf("top after moving to row 3 = %d", m.Top())
	}
	m.Move(0, -3)
	if m.Top() != 0 {
		t.Fatalf("top after moving back = %d", m.Top())
	}

	m.Move(0, m.PageRows()*3)
	m.Reset()
	if m.Cursor() != 0 || m.Top() != 0 {
		t.Fatalf("reset left cursor=%d top=%d", m.Cursor(), m.Top())
	}
}

func TestSelectedAndShrink(t *testing.T) {
	m := New(3, theme.New(theme.DefaultAccent).Grid)
	m.SetSize(30, 5)
	if _, ok := m.Selected(); ok {
		t.Fatalf("empty grid has no selection")
	}

	list := entries(t, 6)
	m.SetEntries(list)
	m.Move(0, 1)
	m.Move(2, 0)
	got, ok := m.Selected()
	if !ok || got.Key != list[5].Key {
		t.Fatalf("selected = %+v", got)
	}

	m.SetEntries(list[:2])
	if m.Cursor() != 1 {
		t.Fatalf("cursor after shrink = %d", m.Cursor())
	}
	if !strings.Contains(m.View(), list[0].Item.Glyph()) {
		t.Fatalf("view missing first glyph:\n%s", m.View())
	}
}

func TestCellWidthClampsToGlyph(t *testing.T) {
	m := New(3, theme.New(theme.DefaultAccent).Grid)
	m.SetSize(30, 5)
	m.SetEntries(entries(t, 3))

	m.SetCellWidth(10)
	if m.CellWidth() != 10 {
		t.Fatalf("cell = %d, want 10", m.CellWidth())
	}
	m.SetCellWidth(1)
	if m.CellWidth() != 2 {
		t.Fatalf("cell = %d, want the double-width minimum 2", m.CellWidth())
	}
	m.SetCellWidth(0)
	if m.CellWidth() != 2 {
		t.Fatalf("cell = %d, want 2", m.CellWidth())
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 6); got != "  ab  " {
		t.Fatalf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Fatalf("pad should not truncate, got %q", got)
	}
}
