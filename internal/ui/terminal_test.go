package ui

import (
	"bytes"
	"testing"

	"github.com/muesli/termenv"
)

func TestTerminalBackgroundWithoutTTY(t *testing.T) {
	if got := TerminalBackground(nil); got != "" {
		t.Fatalf("nil output = %q", got)
	}
	out := termenv.NewOutput(&bytes.Buffer{})
	if got := TerminalBackground(out); got != "" {
		t.Fatalf("non-tty output = %q, want empty", got)
	}
}
