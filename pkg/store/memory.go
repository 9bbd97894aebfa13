package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process Persistence, used by tests and by callers that do
// not want anything written to disk.
type Memory struct {
	mu       sync.Mutex
	data     map[string][]byte
	watchers []chan Event

	// FailWrite, when set, is returned by every Write.
	FailWrite error
	// FailRead, when set, is returned by every Read.
	FailRead error
}

var _ Persistence = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Read(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailRead != nil {
		return nil, m.FailRead
	}
	val, ok := m.data[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), val...), nil
}

func (m *Memory) Write(key string, val []byte) error {
	m.mu.Lock()
	if m.FailWrite != nil {
		m.mu.Unlock()
		return m.FailWrite
	}
	m.data[key] = append([]byte(nil), val...)
	m.mu.Unlock()
	m.notify(Event{Type: EventKeyChanged, Key: key})
	return nil
}

func (m *Memory) Erase(key string) error {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
	m.notify(Event{Type: EventKeyChanged, Key: key})
	return nil
}

func (m *Memory) Keys(ctx context.Context) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event, 16)
	m.mu.Lock()
	m.watchers = append(m.watchers, ch)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, w := range m.watchers {
			if w == ch {
				m.watchers = append(m.watchers[:i], m.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (m *Memory) notify(ev Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.watchers {
		select {
		case w <- ev:
		default:
		}
	}
}
