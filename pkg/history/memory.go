package history

import (
	"context"
	"sync"

	"tableflip.dev/emojisel/pkg/emoji"
)

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu      sync.Mutex
	records []Record

	// LoadErr, when set, is returned by Load.
	LoadErr error
	// WriteErr, when set, is returned alongside the updated list by Record.
	WriteErr error
	// Loads and Records count calls, for tests.
	Loads   int
	Records int
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore(records ...Record) *MemoryStore {
	return &MemoryStore{records: append([]Record(nil), records...)}
}

func (m *MemoryStore) Load(ctx context.Context) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Loads++
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]Record{}, m.records...), nil
}

func (m *MemoryStore) Record(ctx context.Context, item emoji.Item) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Records++
	updated := Add(m.records, item)
	if m.WriteErr != nil {
		return updated, &WriteError{Key: Key, Err: m.WriteErr}
	}
	m.records = updated
	return append([]Record{}, updated...), nil
}

func (m *MemoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = nil
	return nil
}
