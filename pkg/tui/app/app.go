// Package app hosts the Bubble Tea program for the emoji picker.
package app

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/picker"
	"tableflip.dev/emojisel/pkg/selection"
	"tableflip.dev/emojisel/pkg/store"
	"tableflip.dev/emojisel/pkg/tui/components/grid"
	"tableflip.dev/emojisel/pkg/tui/components/help"
	"tableflip.dev/emojisel/pkg/tui/components/tabs"
	"tableflip.dev/emojisel/pkg/tui/events"
	"tableflip.dev/emojisel/pkg/tui/theme"
)

const (
	tabsHeight   = 2
	searchHeight = 3
	titleHeight  = 1
	footerHeight = 1
)

// Config wires a Model to its controller and collaborators.
type Config struct {
	Controller *picker.Controller
	Translator i18n.Translator
	// Watch, when set, triggers a history reload whenever the stored list
	// changes underneath the picker.
	Watch <-chan store.Event
	// QuitOnSelect exits the program after the first pick.
	QuitOnSelect bool
}

// Model is the picker UI. It only renders and forwards input; all state
// transitions go through the controller.
type Model struct {
	ctx  context.Context
	ctrl *picker.Controller
	opts picker.Options
	tr   i18n.Translator
	th   theme.Theme

	tabs   *tabs.Model
	grid   *grid.Model
	help   *help.Model
	search textinput.Model

	watch        <-chan store.Event
	quitOnSelect bool

	showHelp   bool
	notFound   bool
	scroll     int
	status     string
	statusErr  bool
	termWidth  int
	termHeight int
}

// New builds the UI model. The controller must not be mounted yet; Init
// mounts it.
func New(cfg Config) *Model {
	opts := cfg.Controller.Options()
	tr := cfg.Translator
	if tr == nil {
		tr = i18n.Identity{}
	}
	th := theme.New(opts.Theme)

	ti := textinput.New()
	ti.Placeholder = opts.SearchPlaceholder
	ti.Prompt = "🔍 "
	ti.CharLimit = 64
	ti.Styles.Cursor.Color = lipgloss.Color(th.Accent)
	if opts.ShowSearchBar {
		ti.Focus()
	}

	m := &Model{
		ctx:          context.Background(),
		ctrl:         cfg.Controller,
		opts:         opts,
		tr:           tr,
		th:           th,
		tabs:         tabs.New(cfg.Controller.Tabs(), th.Tabs),
		grid:         grid.New(opts.ColumnCount, th.Grid),
		help:         help.New(80, 24, th.Help),
		search:       ti,
		watch:        cfg.Watch,
		quitOnSelect: cfg.QuitOnSelect,
	}
	m.tabs.SetActive(opts.InitialCategory.Key)
	return m
}

// Init mounts the controller, starts the history load and the store watch.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		events.RunHistory(m.ctx, m.ctrl.Mount(), false),
		events.Listen(m.watch),
	}
	if m.opts.ShowSearchBar {
		cmds = append(cmds, textinput.Blink)
	}
	return tea.Batch(cmds...)
}

// Update handles messages and keybindings.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.ctrl.Layout(msg.Width)
		m.applySizes()
		m.refresh()
	case events.HistoryMsg:
		if m.ctrl.ApplyHistory(msg.Result) {
			m.setErrorStatus(m.ctrl.LastError())
			m.refresh()
		}
		if msg.QuitAfter {
			cmds = append(cmds, tea.Quit)
		}
	case events.StoreChangedMsg:
		if msg.Event.Affects(history.Key) {
			cmds = append(cmds, events.RunHistory(m.ctx, m.ctrl.Reload(), false))
		}
		cmds = append(cmds, events.Listen(m.watch))
	case events.WatchClosedMsg:
		m.watch = nil
	case tea.KeyPressMsg:
		if m.showHelp {
			switch msg.String() {
			case "esc", "q", "f1", "?":
				m.showHelp = false
			case "ctrl+c":
				return m, tea.Quit
			default:
				var cmd tea.Cmd
				m.help, cmd = m.help.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
		cmds = append(cmds, m.handleKey(msg))
	default:
		if m.opts.ShowSearchBar {
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.syncQuery()
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "f1":
		m.showHelp = true
		return nil
	case "tab":
		m.selectCategory(m.ctrl.NextCategory(1))
		return nil
	case "shift+tab":
		m.selectCategory(m.ctrl.NextCategory(-1))
		return nil
	case "ctrl+a":
		m.selectCategory(emoji.All)
		return nil
	case "up":
		m.grid.Move(0, -1)
		return nil
	case "down":
		m.grid.Move(0, 1)
		return nil
	case "left":
		m.grid.Move(-1, 0)
		return nil
	case "right":
		m.grid.Move(1, 0)
		return nil
	case "pgup":
		m.grid.Move(0, -m.grid.PageRows())
		return nil
	case "pgdown":
		m.grid.Move(0, m.grid.PageRows())
		return nil
	case "enter":
		return m.pick()
	case "esc":
		if m.ctrl.State().Searching() {
			m.search.Reset()
			m.setQuery("")
			return nil
		}
		return tea.Quit
	}

	if !m.opts.ShowSearchBar {
		switch msg.String() {
		case "q":
			return tea.Quit
		case "?":
			m.showHelp = true
		}
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.syncQuery()
	return cmd
}

// syncQuery pushes the search bar's value to the controller when it changed.
func (m *Model) syncQuery() {
	if v := m.search.Value(); v != m.ctrl.State().SearchQuery {
		m.setQuery(v)
	}
}

func (m *Model) pick() tea.Cmd {
	if !m.ctrl.State().Ready {
		return nil
	}
	entry, ok := m.grid.Selected()
	if !ok {
		return nil
	}
	record := m.ctrl.SelectItem(entry.Item)
	m.status = entry.Item.Glyph() + "  :" + entry.Item.PrimaryName() + ":"
	m.statusErr = false
	if record == nil {
		if m.quitOnSelect {
			return tea.Quit
		}
		return nil
	}
	return events.RunHistory(m.ctx, record, m.quitOnSelect)
}

func (m *Model) selectCategory(c emoji.Category) {
	if !m.ctrl.SelectCategory(c) {
		return
	}
	m.search.Reset()
	m.tabs.SetActive(c.Key)
	m.refresh()
}

func (m *Model) setQuery(q string) {
	m.ctrl.SetSearchQuery(q)
	m.grid.Reset()
	m.refresh()
}

// refresh pulls the display list from the controller into the grid.
func (m *Model) refresh() {
	if token := m.ctrl.ScrollToken(); token != m.scroll {
		m.scroll = token
		m.grid.Reset()
	}
	entries, err := m.ctrl.DisplayList()
	m.notFound = errors.Is(err, selection.ErrNotFound)
	m.grid.SetEntries(entries)
}

func (m *Model) setErrorStatus(err error) {
	if err == nil {
		if m.statusErr {
			m.status = ""
			m.statusErr = false
		}
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

// applySizes recalculates component sizes based on the current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	used := footerHeight
	if m.opts.ShowTabs {
		used += tabsHeight
	}
	if m.opts.ShowSearchBar {
		used += searchHeight
	}
	if m.opts.ShowSectionTitles {
		used += titleHeight
	}
	m.tabs.SetWidth(m.termWidth)
	m.search.SetWidth(max(m.termWidth-m.th.Search.Frame.GetHorizontalFrameSize()-lipgloss.Width(m.search.Prompt)-1, 1))
	m.grid.SetSize(m.termWidth, max(m.termHeight-used, 1))
	m.grid.SetCellWidth(m.ctrl.State().ColumnSize)
	m.help.SetSize(m.termWidth, m.termHeight)
}

// View renders the tab bar, search input, title, grid and status line.
func (m *Model) View() string {
	if m.termWidth == 0 {
		return ""
	}
	if m.showHelp {
		return m.help.View()
	}
	if m.ctrl.Phase() != picker.PhaseReady {
		return m.th.Footer.Status.Render(m.tr.T(i18n.KeyLoading))
	}

	var parts []string
	if m.opts.ShowTabs {
		parts = append(parts, m.tabs.View())
	}
	if m.opts.ShowSearchBar {
		frame := m.th.Search.Frame.Width(m.termWidth - m.th.Search.Frame.GetHorizontalBorderSize())
		parts = append(parts, frame.Render(m.search.View()))
	}
	if m.opts.ShowSectionTitles {
		parts = append(parts, m.th.Title.Render(m.ctrl.SectionTitle(m.tr)))
	}
	if m.notFound {
		parts = append(parts, m.th.Grid.NotFound.Render(m.tr.T(i18n.KeyNotFound)))
	} else {
		parts = append(parts, m.grid.View())
	}
	parts = append(parts, m.footer())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) footer() string {
	line := m.status
	style := m.th.Footer.Status
	if m.statusErr {
		style = m.th.Footer.Error
	}
	if line == "" {
		line = "enter pick · tab category · esc clear/quit · f1 help"
		style = m.th.Footer.Help
	}
	return style.Render(truncate.StringWithTail(strings.TrimSpace(line), uint(max(m.termWidth-1, 1)), "…"))
}
