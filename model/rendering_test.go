package model

import (
	"bytes"
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	gen := mustGeneration(t, 3, []Coord{{0, 0}, {1, 1}, {2, 0}, {2, 2}}, Coord{})

	want := "cycle: 0\n" +
		"x  \n" +
		" x \n" +
		"x x\n"
	if got := Render(gen); got != want {
		t.Fatalf("Render = %q, expected %q", got, want)
	}
	if got := gen.String(); got != want {
		t.Fatalf("String = %q, expected %q", got, want)
	}

	next := NextGeneration(gen)
	if !strings.HasPrefix(Render(next), "cycle: 1\n") {
		t.Fatalf("Render of next generation has wrong header: %q", Render(next))
	}
}

func TestRenderLineCount(t *testing.T) {
	gen := mustGeneration(t, 7, nil, Coord{})
	lines := strings.Split(Render(gen), "\n")

	// header, 7 rows and the empty string after the final newline
	if len(lines) != 9 {
		t.Fatalf("got %d lines, expected 9", len(lines))
	}
	for i, line := range lines[1:8] {
		if line != strings.Repeat(" ", 7) {
			t.Fatalf("row %d = %q, expected 7 spaces", i, line)
		}
	}
}

func TestTerminalRendererDisplay(t *testing.T) {
	gen := mustGeneration(t, 2, []Coord{{0, 1}}, Coord{})

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.Glyph = '#'
	if err := r.Display(gen); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if got, want := buf.String(), "cycle: 0\n #\n  \n"; got != want {
		t.Fatalf("Display wrote %q, expected %q", got, want)
	}

	buf.Reset()
	r.ClearScreen = true
	if err := r.Display(gen); err != nil {
		t.Fatalf("Display: %v", err)
	}
	if !strings.HasPrefix(buf.String(), ansiClear) {
		t.Fatalf("Display with ClearScreen wrote %q, expected clear sequence first", buf.String())
	}
}

func TestTerminalRendererColor(t *testing.T) {
	gen := mustGeneration(t, 2, []Coord{{0, 0}}, Coord{})

	var buf bytes.Buffer
	r := NewTerminalRenderer(&buf)
	r.Color = true
	if err := r.Display(gen); err != nil {
		t.Fatalf("Display: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "cycle: 0\n") {
		t.Fatalf("colored output should keep a plain header, got %q", out)
	}
	if !strings.Contains(out, "\033[") || !strings.Contains(out, "x") {
		t.Fatalf("colored output %q should contain an escaped x glyph", out)
	}
}
