package options

import (
	"strings"
	"testing"
)

func TestWrap(t *testing.T) {
	got := Wrap("one two three four", 9)
	if want := "one two\nthree\nfour"; got != want {
		t.Fatalf("Wrap = %q, want %q", got, want)
	}
	long := strings.Repeat("word ", 40)
	for _, line := range strings.Split(Wrap80(long), "\n") {
		if len(line) > 80 {
			t.Fatalf("line longer than 80: %q", line)
		}
	}
	if got := Wrap("   ", 10); got != "   " {
		t.Fatalf("blank text changed: %q", got)
	}
}
