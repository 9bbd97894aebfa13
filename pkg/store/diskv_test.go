package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/peterbourgon/diskv/v3"
)

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig(base))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if _, err := p.Read("emoji-selector:HISTORY"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := p.Write("emoji-selector:HISTORY", []byte(`[1]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "emoji-selector", "HISTORY")); err != nil {
		t.Fatalf("expected namespaced file on disk: %v", err)
	}

	got, err := p.Read("emoji-selector:HISTORY")
	if err != nil || string(got) != `[1]` {
		t.Fatalf("read = %q, %v", got, err)
	}

	keys := p.Keys(context.Background())
	if len(keys) != 1 || keys[0] != "emoji-selector:HISTORY" {
		t.Fatalf("keys = %v", keys)
	}

	if err := p.Erase("emoji-selector:HISTORY"); err != nil {
		t.Fatalf("erase: %v", err)
	}
	if err := p.Erase("emoji-selector:HISTORY"); err != nil {
		t.Fatalf("erasing a missing key should be a no-op: %v", err)
	}
	if _, err := p.Read("emoji-selector:HISTORY"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after erase, got %v", err)
	}
}

func TestReadSeesExternalWrites(t *testing.T) {
	base := t.TempDir()
	p, err := Load(StaticConfig(base))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := p.Write("ns:key", []byte("one")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := p.Read("ns:key"); err != nil {
		t.Fatalf("read: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, "ns", "key"), []byte("two"), 0o644); err != nil {
		t.Fatalf("external write: %v", err)
	}
	got, err := p.Read("ns:key")
	if err != nil || string(got) != "two" {
		t.Fatalf("read after external write = %q, %v", got, err)
	}
}

func TestLoadRequiresBasePath(t *testing.T) {
	if _, err := Load(StaticConfig("")); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}

func TestKeyTransformsRoundTrip(t *testing.T) {
	for _, key := range []string{"plain", "emoji-selector:HISTORY", "a:b:c"} {
		pk := keyToPathTransform(key)
		if got := pathToKeyTransform(pk); got != key {
			t.Fatalf("round trip %q -> %+v -> %q", key, pk, got)
		}
	}
	pk := keyToPathTransform("emoji-selector:HISTORY")
	want := &diskv.PathKey{Path: []string{"emoji-selector"}, FileName: "HISTORY"}
	if len(pk.Path) != 1 || pk.Path[0] != want.Path[0] || pk.FileName != want.FileName {
		t.Fatalf("transform = %+v", pk)
	}
}

func TestMemoryPersistence(t *testing.T) {
	m := NewMemory()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ch, _ := m.Watch(ctx)

	if err := m.Write("k", []byte("v")); err != nil {
		t.Fatalf("write: %v", err)
	}
	ev := <-ch
	if ev.Key != "k" || ev.Type != EventKeyChanged {
		t.Fatalf("event = %+v", ev)
	}

	m.FailWrite = errors.New("disk full")
	if err := m.Write("k", []byte("w")); err == nil {
		t.Fatalf("expected injected failure")
	}
	got, _ := m.Read("k")
	if string(got) != "v" {
		t.Fatalf("failed write should not change value, got %q", got)
	}
}
