// Package history persists the list of recently selected emoji.
package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/emojisel/pkg/emoji"
)

// Key is where the history list is stored.
const Key = "emoji-selector:HISTORY"

// Record is a catalogue item plus its usage count. It marshals flat, so a
// stored record looks like the item with an extra "count" field.
type Record struct {
	emoji.Item
	Count int `json:"count"`
}

// Items strips the counts from records, preserving order.
func Items(records []Record) []emoji.Item {
	items := make([]emoji.Item, 0, len(records))
	for _, r := range records {
		items = append(items, r.Item)
	}
	return items
}

// Store loads and updates the history list. Implementations must be safe for
// concurrent use.
type Store interface {
	// Load returns the persisted records, most recent first. An absent list
	// is not an error.
	Load(ctx context.Context) ([]Record, error)
	// Record adds item to the head of the list unless it is already present,
	// persists the list and returns it.
	Record(ctx context.Context, item emoji.Item) ([]Record, error)
}

var (
	// ErrRead matches any *ReadError.
	ErrRead = errors.New("history: read failed")
	// ErrWrite matches any *WriteError.
	ErrWrite = errors.New("history: write failed")
)

// ReadError reports that the stored list could not be read or decoded.
type ReadError struct {
	Key string
	Err error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("history: read %s: %v", e.Key, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func (e *ReadError) Is(target error) bool { return target == ErrRead }

// WriteError reports that the updated list could not be persisted. The
// records returned alongside it are still the updated list.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("history: write %s: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// Add applies the record rule to records and returns the result: a new item is
// prepended with a count of 1, an item already present (same unified code)
// leaves the list as it was.
func Add(records []Record, item emoji.Item) []Record {
	for _, r := range records {
		if r.Unified == item.Unified {
			return append([]Record(nil), records...)
		}
	}
	out := make([]Record, 0, len(records)+1)
	out = append(out, Record{Item: item, Count: 1})
	return append(out, records...)
}
