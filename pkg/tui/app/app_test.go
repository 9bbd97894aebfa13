package app

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/picker"
	"tableflip.dev/emojisel/pkg/store"
	"tableflip.dev/emojisel/pkg/tui/events"
)

type fixture struct {
	m        *Model
	store    *history.MemoryStore
	selected []string
	quit     bool
}

func newFixture(t *testing.T, quitOnSelect bool, mutate func(*picker.Options)) *fixture {
	t.Helper()
	f := &fixture{store: history.NewMemoryStore()}
	opts := picker.DefaultOptions()
	opts.ShowHistory = true
	if mutate != nil {
		mutate(&opts)
	}
	x := emoji.NewIndex(emoji.MustDefault(), emoji.Categories())
	ctrl, err := picker.New(x, f.store, opts, func(g string) { f.selected = append(f.selected, g) }, nil)
	if err != nil {
		t.Fatalf("picker.New: %v", err)
	}
	bundle, err := i18n.LoadEmbedded()
	if err != nil {
		t.Fatalf("i18n: %v", err)
	}
	f.m = New(Config{Controller: ctrl, Translator: bundle.Printer("en-US"), QuitOnSelect: quitOnSelect})
	f.drain(t, f.m.Init())
	return f
}

// drain runs commands and feeds back the messages the picker produces.
// Cursor blinks and other timers are dropped.
func (f *fixture) drain(t *testing.T, cmds ...tea.Cmd) {
	t.Helper()
	queue := append([]tea.Cmd(nil), cmds...)
	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		if cmd == nil {
			continue
		}
		switch v := cmd().(type) {
		case tea.BatchMsg:
			queue = append(queue, []tea.Cmd(v)...)
		case tea.QuitMsg:
			f.quit = true
		case events.HistoryMsg, events.StoreChangedMsg:
			next, nextCmd := f.m.Update(v)
			f.m = assertAppModel(t, next)
			queue = append(queue, nextCmd)
		}
	}
}

func (f *fixture) send(t *testing.T, msg tea.Msg) {
	t.Helper()
	next, cmd := f.m.Update(msg)
	f.m = assertAppModel(t, next)
	f.drain(t, cmd)
}

func (f *fixture) typeText(t *testing.T, s string) {
	t.Helper()
	for _, r := range s {
		f.send(t, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func assertAppModel(t *testing.T, model tea.Model) *Model {
	t.Helper()
	m, ok := model.(*Model)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	return m
}

func TestLoadingUntilLayout(t *testing.T) {
	f := newFixture(t, false, nil)
	if f.m.ctrl.Phase() != picker.PhaseAwaitingLayout {
		t.Fatalf("phase after init = %s", f.m.ctrl.Phase())
	}
	f.m.termWidth = 60
	if view := f.m.View(); !strings.Contains(view, "Loading...") {
		t.Fatalf("expected loading view, got:\n%s", view)
	}

	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})
	if f.m.ctrl.Phase() != picker.PhaseReady {
		t.Fatalf("phase after layout = %s", f.m.ctrl.Phase())
	}
	if view := f.m.View(); !strings.Contains(view, "All") {
		t.Fatalf("expected All title, got:\n%s", view)
	}
}

func TestTabCyclesCategories(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})

	f.send(t, tea.KeyPressMsg{Code: tea.KeyTab})
	if got := f.m.ctrl.State().ActiveCategory; got != emoji.History {
		t.Fatalf("after tab = %s", got.Key)
	}
	f.send(t, tea.KeyPressMsg{Code: tea.KeyTab})
	if got := f.m.ctrl.State().ActiveCategory; got != emoji.Emotion {
		t.Fatalf("after second tab = %s", got.Key)
	}
	if view := f.m.View(); !strings.Contains(view, "Smileys & Emotion") {
		t.Fatalf("expected category title, got:\n%s", view)
	}

	f.send(t, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if got := f.m.ctrl.State().ActiveCategory; got != emoji.History {
		t.Fatalf("after shift+tab = %s", got.Key)
	}

	f.send(t, tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl})
	if got := f.m.ctrl.State().ActiveCategory; got != emoji.All {
		t.Fatalf("after ctrl+a = %s", got.Key)
	}
}

func TestSearchAndPick(t *testing.T) {
	f := newFixture(t, true, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})

	f.typeText(t, "dog")
	if q := f.m.ctrl.State().SearchQuery; q != "dog" {
		t.Fatalf("query = %q", q)
	}
	if view := f.m.View(); !strings.Contains(view, "Search Results") {
		t.Fatalf("expected search title, got:\n%s", view)
	}

	f.send(t, tea.KeyPressMsg{Code: tea.KeyEnter})
	if len(f.selected) != 1 || f.selected[0] != "\U0001F436" {
		t.Fatalf("selected = %q", f.selected)
	}
	if !f.quit {
		t.Fatalf("expected quit after pick")
	}
	stored, _ := f.store.Load(context.Background())
	if len(stored) != 1 || stored[0].Unified != "1F436" {
		t.Fatalf("stored = %+v", stored)
	}
}

func TestPasteSetsQuery(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})

	f.send(t, tea.PasteMsg("dog"))
	if v := f.m.search.Value(); v != "dog" {
		t.Fatalf("search bar = %q", v)
	}
	if q := f.m.ctrl.State().SearchQuery; q != "dog" {
		t.Fatalf("query after paste = %q", q)
	}
	if view := f.m.View(); !strings.Contains(view, "Search Results") {
		t.Fatalf("expected search title, got:\n%s", view)
	}
	entry, ok := f.m.grid.Selected()
	if !ok || entry.Item.Unified != "1F436" {
		t.Fatalf("selected after paste = %+v", entry)
	}
}

func TestGridFollowsColumnSize(t *testing.T) {
	f := newFixture(t, false, nil)

	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})
	if got, want := f.m.grid.CellWidth(), f.m.ctrl.State().ColumnSize; got != want || want != 10 {
		t.Fatalf("cell width = %d, column size = %d", got, want)
	}

	f.send(t, tea.WindowSizeMsg{Width: 6, Height: 24})
	if f.m.ctrl.State().ColumnSize != 1 {
		t.Fatalf("column size = %d", f.m.ctrl.State().ColumnSize)
	}
	if got := f.m.grid.CellWidth(); got != 2 {
		t.Fatalf("narrow cell width = %d, want 2", got)
	}
}

func TestCursorMovesBeforePick(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})
	f.typeText(t, "dog")

	f.send(t, tea.KeyPressMsg{Code: tea.KeyRight})
	f.send(t, tea.KeyPressMsg{Code: tea.KeyEnter})
	if len(f.selected) != 1 || f.selected[0] != "\U0001F415" {
		t.Fatalf("selected = %q", f.selected)
	}
	if f.quit {
		t.Fatalf("should not quit without QuitOnSelect")
	}
}

func TestNotFoundAndEscape(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})

	f.typeText(t, "zzzzznotreal")
	if view := f.m.View(); !strings.Contains(view, "couldn't find") {
		t.Fatalf("expected not found message, got:\n%s", view)
	}

	f.send(t, tea.KeyPressMsg{Code: tea.KeyEscape})
	if q := f.m.ctrl.State().SearchQuery; q != "" {
		t.Fatalf("esc should clear the query, got %q", q)
	}
	if f.quit {
		t.Fatalf("esc with a query should not quit")
	}

	f.send(t, tea.KeyPressMsg{Code: tea.KeyEscape})
	if !f.quit {
		t.Fatalf("esc with an empty query should quit")
	}
}

func TestStoreChangeReloadsHistory(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 24})

	dog, _ := emoji.MustDefault().LookupName("dog")
	if _, err := f.store.Record(context.Background(), dog); err != nil {
		t.Fatalf("record: %v", err)
	}
	if n := len(f.m.ctrl.State().History); n != 0 {
		t.Fatalf("history should not change before the event, got %d", n)
	}

	f.send(t, events.StoreChangedMsg{Event: store.Event{Type: store.EventKeyChanged, Key: history.Key}})
	if n := len(f.m.ctrl.State().History); n != 1 {
		t.Fatalf("history after reload = %d records", n)
	}

	loads := f.store.Loads
	f.send(t, events.StoreChangedMsg{Event: store.Event{Type: store.EventKeyChanged, Key: "other"}})
	if f.store.Loads != loads {
		t.Fatalf("unrelated keys should not reload history")
	}
}

func TestHelpOverlay(t *testing.T) {
	f := newFixture(t, false, nil)
	f.send(t, tea.WindowSizeMsg{Width: 80, Height: 30})

	f.send(t, tea.KeyPressMsg{Code: tea.KeyF1})
	if !f.m.showHelp {
		t.Fatalf("f1 should open help")
	}
	f.send(t, tea.KeyPressMsg{Code: tea.KeyEscape})
	if f.m.showHelp || f.quit {
		t.Fatalf("esc should close help without quitting")
	}
}

func TestHiddenBars(t *testing.T) {
	f := newFixture(t, false, func(o *picker.Options) {
		o.ShowTabs = false
		o.ShowSearchBar = false
		o.ShowSectionTitles = false
	})
	f.send(t, tea.WindowSizeMsg{Width: 60, Height: 10})

	view := f.m.View()
	if strings.Contains(view, "All") || strings.Contains(view, "━") {
		t.Fatalf("expected bare grid, got:\n%s", view)
	}

	f.send(t, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if !f.quit {
		t.Fatalf("q should quit when there is no search bar")
	}
}
