package main

import (
	"DeskScene/internal/input"
	"bytes"
	"strings"
	"testing"
)

func TestPrintBindings(t *testing.T) {
	var buf bytes.Buffer
	if err := printBindings(&buf); err != nil {
		t.Fatalf("printBindings: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header, one line per binding, mouse and scroll
	if want := len(input.Bindings) + 3; len(lines) != want {
		t.Fatalf("expected %d lines, got %d", want, len(lines))
	}
	if !strings.HasPrefix(lines[0], "KEY") {
		t.Errorf("missing header: %q", lines[0])
	}
	out := buf.String()
	for _, want := range []string{"toggle perspective/orthographic", "press", "hold", "Page Up"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
