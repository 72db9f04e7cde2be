package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := &TerminalRenderer{Out: &buf}
	w := mustNew(t, 2, 2, []Cell{A, D, D, A})

	r.Clear()
	r.Status(3, w)
	r.Display(w)

	out := buf.String()
	if !strings.HasPrefix(out, ansiClear) {
		t.Errorf("output does not start with clear sequence: %q", out)
	}
	if !strings.Contains(out, "Gen: 3 | Living: 2 | Density: 50.0%") {
		t.Errorf("missing status line: %q", out)
	}
	if !strings.HasSuffix(out, "# \n #\n") {
		t.Errorf("missing frame: %q", out)
	}
}
