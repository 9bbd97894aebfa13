package history

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"tableflip.dev/emojisel/pkg/emoji"
	"tableflip.dev/emojisel/pkg/store"
)

// KVStore keeps the history list as a JSON array under Key.
type KVStore struct {
	mu sync.Mutex
	p  store.Persistence
}

var _ Store = (*KVStore)(nil)

func NewStore(p store.Persistence) *KVStore {
	return &KVStore{p: p}
}

func (s *KVStore) Load(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

// Record re-reads the persisted list before updating it so concurrent writers
// in other processes are not overwritten with a stale copy. Malformed content
// is replaced by a fresh list; a failed read returns the *ReadError and writes
// nothing.
func (s *KVStore) Record(ctx context.Context, item emoji.Item) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.read()
	if err != nil {
		if !malformed(err) {
			return nil, err
		}
		current = nil
	}
	updated := Add(current, item)

	data, err := json.Marshal(updated)
	if err != nil {
		return updated, &WriteError{Key: Key, Err: err}
	}
	if err := s.p.Write(Key, data); err != nil {
		return updated, &WriteError{Key: Key, Err: err}
	}
	return updated, nil
}

// Clear erases the persisted list.
func (s *KVStore) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.p.Erase(Key); err != nil {
		return &WriteError{Key: Key, Err: err}
	}
	return nil
}

func (s *KVStore) read() ([]Record, error) {
	data, err := s.p.Read(Key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []Record{}, nil
		}
		return nil, &ReadError{Key: Key, Err: err}
	}
	if len(data) == 0 {
		return []Record{}, nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &ReadError{Key: Key, Err: err}
	}
	if records == nil {
		records = []Record{}
	}
	return records, nil
}

func malformed(err error) bool {
	var syntax *json.SyntaxError
	var typ *json.UnmarshalTypeError
	return errors.As(err, &syntax) || errors.As(err, &typ)
}
