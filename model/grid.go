package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidSize is returned when a grid dimension is not positive
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a seed coordinate falls outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Cell is the state of a single grid position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

func (c Cell) String() string {
	if c == Alive {
		return "alive"
	}
	return "dead"
}

// Coord addresses a cell by row and column
type Coord struct {
	Row int
	Col int
}

// Add returns the componentwise sum of c and o
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a square board of cells stored row-major.
// A Grid reachable from a Generation is never written to again.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid creates an all-dead grid of size x size cells
func NewGrid(size int) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "[NewGrid] size must be positive, got %d", size)
	}
	return newGrid(size), nil
}

func newGrid(size int) *Grid {
	return &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
}

// Size returns the dimension of the grid
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (row, col) addresses a cell of the grid
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Get returns the state of a cell, Dead for coordinates outside the grid
func (g *Grid) Get(row, col int) Cell {
	if !g.InBounds(row, col) {
		return Dead
	}
	return g.cells[g.index(row, col)]
}

// IsAlive reports whether the cell at (row, col) is alive
func (g *Grid) IsAlive(row, col int) bool {
	return g.Get(row, col) == Alive
}

func (g *Grid) index(row, col int) int {
	return row*g.size + col
}

// set is only used while a grid is still being built
func (g *Grid) set(row, col int, c Cell) {
	g.cells[g.index(row, col)] = c
}

// LiveCells returns the coordinates of all living cells in row-major order
func (g *Grid) LiveCells() []Coord {
	var live []Coord
	for row := range g.size {
		for col := range g.size {
			if g.cells[g.index(row, col)] == Alive {
				live = append(live, Coord{Row: row, Col: col})
			}
		}
	}
	return live
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, c := range g.cells {
		if c == Alive {
			count++
		}
	}
	return
}

// Equal reports whether both grids have the same size and cell states
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Hash returns an MD5 fingerprint of the grid state
func (g *Grid) Hash() string {
	h := md5.New()
	buf := make([]byte, len(g.cells))
	for i, c := range g.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}
