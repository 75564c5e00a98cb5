package model

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"
)

const (
	glyphAlive = 'x'
	glyphDead  = ' '

	// clear screen and move the cursor home
	ansiClear = "\033[H\033[2J"
)

// Render formats a generation as a "cycle: N" header followed by one line per row
func Render(g *Generation) string {
	return render(g, string(glyphAlive))
}

func render(g *Generation, alive string) string {
	grid := g.grid

	var b strings.Builder
	b.Grow(grid.size*(grid.size+1) + 16)
	fmt.Fprintf(&b, "cycle: %d\n", g.cycle)
	for row := range grid.size {
		for col := range grid.size {
			if grid.cells[grid.index(row, col)] == Alive {
				b.WriteString(alive)
			} else {
				b.WriteRune(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// TerminalRenderer writes generations to a terminal or any other writer
type TerminalRenderer struct {
	Out         io.Writer
	Glyph       rune
	Color       bool
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing plain 'x' glyphs to out
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	return &TerminalRenderer{Out: out, Glyph: glyphAlive}
}

// Display renders the generation to the output
func (r *TerminalRenderer) Display(g *Generation) error {
	if r.ClearScreen {
		if err := r.Clear(); err != nil {
			return err
		}
	}
	_, err := io.WriteString(r.Out, render(g, r.aliveGlyph()))
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.Out, ansiClear)
	return err
}

func (r *TerminalRenderer) aliveGlyph() string {
	glyph := r.Glyph
	if glyph == 0 {
		glyph = glyphAlive
	}
	if r.Color {
		return aurora.Green(string(glyph)).Bold().String()
	}
	return string(glyph)
}
