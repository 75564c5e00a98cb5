package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// Generation is an immutable snapshot of the board at a given cycle
type Generation struct {
	cycle int
	grid  *Grid
}

// NewGeneration builds the cycle 0 generation of a size x size grid.
// Every coordinate in alive is shifted by origin and must land inside the grid.
func NewGeneration(size int, alive []Coord, origin Coord) (*Generation, error) {
	grid, err := NewGrid(size)
	if err != nil {
		return nil, errors.Wrap(err, "[NewGeneration] failed to create grid")
	}

	for _, c := range alive {
		pos := c.Add(origin)
		if !grid.InBounds(pos.Row, pos.Col) {
			return nil, errors.Wrapf(ErrOutOfBounds,
				"[NewGeneration] seed %v with origin %v lands on %v, outside %dx%d grid",
				c, origin, pos, size, size)
		}
		grid.set(pos.Row, pos.Col, Alive)
	}

	return &Generation{grid: grid}, nil
}

// Cycle returns the ordinal of the generation, 0 for the initial state
func (g *Generation) Cycle() int {
	return g.cycle
}

// Grid returns the board of the generation. Callers must treat it as read-only.
func (g *Generation) Grid() *Grid {
	return g.grid
}

// Next is shorthand for NextGeneration(g)
func (g *Generation) Next() *Generation {
	return NextGeneration(g)
}

func (g *Generation) String() string {
	return Render(g)
}

// NextGeneration derives the following generation from current.
// Every cell is computed from the current grid into a freshly allocated one,
// so current is left untouched.
func NextGeneration(current *Generation) *Generation {
	var (
		src  = current.grid
		next = newGrid(src.size)
	)

	for row := range src.size {
		for col := range src.size {
			alive := src.cells[src.index(row, col)] == Alive
			if rules.ApplyConwayRules(CountNeighborsAlive(src, row, col), alive) {
				next.set(row, col, Alive)
			}
		}
	}

	return &Generation{
		cycle: current.cycle + 1,
		grid:  next,
	}
}
