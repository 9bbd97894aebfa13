package theme

import "testing"

func TestNewFallsBackOnBadAccent(t *testing.T) {
	if got := New("not-a-colour").Accent; got != DefaultAccent {
		t.Fatalf("accent = %q, want %q", got, DefaultAccent)
	}
	if got := New("#FF8800").Accent; got != "#FF8800" {
		t.Fatalf("accent = %q", got)
	}
}
