// Package picker holds the picker's state machine. It knows nothing about
// rendering: a view layer drives it with mount, layout and input events and
// renders whatever DisplayList returns.
package picker

import (
	"context"
	"errors"
	"log"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/history"
	"tableflip.dev/emojisel/pkg/i18n"
	"tableflip.dev/emojisel/pkg/selection"
)

// Phase is the lifecycle position of a Controller.
type Phase int

const (
	PhaseUninitialized Phase = iota
	PhaseAwaitingLayout
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseAwaitingLayout:
		return "awaiting-layout"
	case PhaseReady:
		return "ready"
	}
	return "unknown"
}

// ErrNoCallback is returned by New when no selection callback is given.
var ErrNoCallback = errors.New("picker: an item selected callback is required")

// HistoryResult is the outcome of a history load or record.
type HistoryResult struct {
	Records []history.Record
	Err     error
	// Generation identifies the mount the operation was started under.
	Generation int
}

// HistoryFunc performs history I/O. The view layer runs it off the event loop
// and hands the result back through ApplyHistory.
type HistoryFunc func(ctx context.Context) HistoryResult

// Controller owns the picker state. It is not safe for concurrent use; all
// calls are expected from a single event loop.
type Controller struct {
	opts       Options
	index      *emoji.Index
	engine     *selection.Engine
	store      history.Store
	onSelected func(string)
	include    selection.Predicate

	phase      Phase
	generation int
	state      selection.State
	scroll     int
	lastErr    error
}

// New builds a Controller over index. store may be nil when history is
// disabled. include may be nil.
func New(index *emoji.Index, store history.Store, opts Options, onSelected func(string), include selection.Predicate) (*Controller, error) {
	if onSelected == nil {
		return nil, ErrNoCallback
	}
	opts, err := opts.Normalize()
	if err != nil {
		return nil, err
	}
	return &Controller{
		opts:       opts,
		index:      index,
		engine:     selection.NewEngine(index),
		store:      store,
		onSelected: onSelected,
		include:    include,
		state: selection.State{
			ActiveCategory: opts.InitialCategory,
			History:        []history.Record{},
		},
	}, nil
}

func (c *Controller) Options() Options { return c.opts }

func (c *Controller) Phase() Phase { return c.phase }

// State returns a copy of the current state.
func (c *Controller) State() selection.State {
	st := c.state
	st.History = append([]history.Record(nil), c.state.History...)
	return st
}

// ScrollToken changes every time the view must reset its scroll position.
func (c *Controller) ScrollToken() int { return c.scroll }

// LastError is the most recent history error worth showing, if any.
func (c *Controller) LastError() error { return c.lastErr }

func (c *Controller) historyEnabled() bool {
	return c.opts.ShowHistory && c.store != nil
}

// Mount moves an uninitialized controller to awaiting layout. The returned
// func loads history and is nil when history is disabled or the controller
// was already mounted.
func (c *Controller) Mount() HistoryFunc {
	if c.phase != PhaseUninitialized {
		return nil
	}
	c.generation++
	c.phase = PhaseAwaitingLayout
	c.state.ActiveCategory = c.opts.InitialCategory
	c.state.SearchQuery = ""
	c.lastErr = nil
	return c.Reload()
}

// Reload returns a func that re-reads history, or nil when history is
// disabled or the controller is not mounted.
func (c *Controller) Reload() HistoryFunc {
	if !c.historyEnabled() || c.phase == PhaseUninitialized {
		return nil
	}
	gen, store := c.generation, c.store
	return func(ctx context.Context) HistoryResult {
		records, err := store.Load(ctx)
		return HistoryResult{Records: records, Err: err, Generation: gen}
	}
}

// Unmount returns the controller to uninitialized. History results started
// before the unmount are ignored.
func (c *Controller) Unmount() {
	c.phase = PhaseUninitialized
	c.state.Ready = false
	c.state.CategorizedItems = nil
}

// Layout records the measured viewport width. The first call after Mount
// builds the category index and makes the controller ready; later calls only
// update the geometry.
func (c *Controller) Layout(width int) {
	if c.phase == PhaseUninitialized {
		return
	}
	if width < 0 {
		width = 0
	}
	c.state.ViewportWidth = width
	c.state.ColumnSize = width / c.opts.ColumnCount
	if c.phase == PhaseAwaitingLayout {
		c.state.CategorizedItems = c.index.Grouped()
		c.state.Ready = true
		c.phase = PhaseReady
	}
}

// SelectCategory switches the active category, clearing the search query and
// resetting the scroll position. It is ignored until the controller is ready.
func (c *Controller) SelectCategory(cat emoji.Category) bool {
	if c.phase != PhaseReady {
		return false
	}
	c.state.SearchQuery = ""
	c.state.ActiveCategory = cat
	c.scroll++
	return true
}

// SetSearchQuery replaces the search query.
func (c *Controller) SetSearchQuery(q string) {
	c.state.SearchQuery = q
}

// SelectItem reports the item's glyph to the host. When history is enabled
// it returns a func recording the item; otherwise nil.
func (c *Controller) SelectItem(item emoji.Item) HistoryFunc {
	c.onSelected(item.Glyph())
	if !c.historyEnabled() {
		return nil
	}
	gen, store := c.generation, c.store
	return func(ctx context.Context) HistoryResult {
		records, err := store.Record(ctx, item)
		return HistoryResult{Records: records, Err: err, Generation: gen}
	}
}

// ApplyHistory folds a finished history operation into the state. Results
// from an earlier mount, or arriving while unmounted, are dropped. It reports
// whether the state changed.
func (c *Controller) ApplyHistory(res HistoryResult) bool {
	if c.phase == PhaseUninitialized || res.Generation != c.generation {
		return false
	}
	switch {
	case res.Err == nil:
		c.lastErr = nil
		c.state.History = nonNil(res.Records)
	case errors.Is(res.Err, history.ErrWrite):
		log.Printf("picker: %v", res.Err)
		c.lastErr = res.Err
		c.state.History = nonNil(res.Records)
	case errors.Is(res.Err, history.ErrRead):
		log.Printf("picker: %v", res.Err)
		c.state.History = []history.Record{}
		if c.opts.StrictHistory {
			c.lastErr = res.Err
		}
	default:
		log.Printf("picker: history: %v", res.Err)
		c.lastErr = res.Err
		if res.Records != nil {
			c.state.History = res.Records
		}
	}
	return true
}

// DisplayList is the current list to render. It is nil until the controller
// is ready; selection.ErrNotFound signals a search that matched nothing.
func (c *Controller) DisplayList() ([]selection.Entry, error) {
	if c.phase != PhaseReady {
		return nil, nil
	}
	return c.engine.DisplayList(c.state, c.include)
}

// SectionTitle is the heading above the grid.
func (c *Controller) SectionTitle(tr i18n.Translator) string {
	if c.state.Searching() {
		return tr.T(i18n.KeySearchResults)
	}
	return tr.T(c.state.ActiveCategory.TranslationKey())
}

// Tabs returns the categories shown in the tab bar, which omits All.
func (c *Controller) Tabs() []emoji.Category {
	tabs := make([]emoji.Category, 0)
	for _, cat := range c.index.Categories() {
		if cat.Key == emoji.All.Key {
			continue
		}
		if cat.Key == emoji.History.Key && !c.opts.ShowHistory {
			continue
		}
		tabs = append(tabs, cat)
	}
	return tabs
}

// NextCategory returns the tab after (or before, when delta is negative) the
// active one, wrapping around. From All it starts at the first tab.
func (c *Controller) NextCategory(delta int) emoji.Category {
	tabs := c.Tabs()
	if len(tabs) == 0 {
		return c.state.ActiveCategory
	}
	pos := -1
	for i, t := range tabs {
		if t.Key == c.state.ActiveCategory.Key {
			pos = i
			break
		}
	}
	if pos < 0 {
		if delta < 0 {
			return tabs[len(tabs)-1]
		}
		return tabs[0]
	}
	n := len(tabs)
	return tabs[((pos+delta)%n+n)%n]
}

func nonNil(records []history.Record) []history.Record {
	if records == nil {
		return []history.Record{}
	}
	return records
}
