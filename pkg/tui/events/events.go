// Package events defines the messages the picker UI exchanges with its
// background work.
package events

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/emojisel/pkg/picker"
	"tableflip.dev/emojisel/pkg/store"
)

// HistoryMsg carries a finished history load or record.
type HistoryMsg struct {
	Result picker.HistoryResult
	// QuitAfter asks the UI to exit once the result is applied.
	QuitAfter bool
}

// StoreChangedMsg is delivered for every persistence change notification.
type StoreChangedMsg struct {
	Event store.Event
}

// WatchClosedMsg reports that the persistence watch ended.
type WatchClosedMsg struct{}

// RunHistory runs fn off the event loop. A nil fn yields a nil command.
func RunHistory(ctx context.Context, fn picker.HistoryFunc, quitAfter bool) tea.Cmd {
	if fn == nil {
		return nil
	}
	return func() tea.Msg {
		return HistoryMsg{Result: fn(ctx), QuitAfter: quitAfter}
	}
}

// Listen waits for the next event on ch. Re-issue it after every
// StoreChangedMsg to keep listening.
func Listen(ch <-chan store.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return WatchClosedMsg{}
		}
		return StoreChangedMsg{Event: ev}
	}
}
