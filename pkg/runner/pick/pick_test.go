package pick

import (
	"bytes"
	"testing"
)

func TestReportPlain(t *testing.T) {
	var out bytes.Buffer
	p := &Pick{Out: &out}
	if err := p.report("\U0001F436"); err != nil {
		t.Fatalf("report: %v", err)
	}
	if got := out.String(); got != "\U0001F436\n" {
		t.Fatalf("report wrote %q", got)
	}
}

func TestTerminal(t *testing.T) {
	if terminal(&bytes.Buffer{}) {
		t.Fatalf("a buffer is not a terminal")
	}
}
