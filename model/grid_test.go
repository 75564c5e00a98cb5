package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(3)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	if g.Size() != 3 || g.CountLivingCells() != 0 {
		t.Fatalf("grid size %d with %d living cells, expected empty 3x3", g.Size(), g.CountLivingCells())
	}

	if _, err = NewGrid(0); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("NewGrid(0) error %v, expected ErrInvalidSize", err)
	}
}

func TestGridGetOutOfRange(t *testing.T) {
	gen := mustGeneration(t, 2, []Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, Coord{})
	g := gen.Grid()

	for _, c := range []Coord{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if g.Get(c.Row, c.Col) != Dead {
			t.Fatalf("Get%v outside the grid should be dead", c)
		}
	}
	if !g.IsAlive(1, 1) {
		t.Fatal("IsAlive(1, 1) should be true")
	}
}

func TestGridHashAndEqual(t *testing.T) {
	a := mustGeneration(t, 4, []Coord{{1, 1}}, Coord{}).Grid()
	b := mustGeneration(t, 4, []Coord{{1, 1}}, Coord{}).Grid()
	c := mustGeneration(t, 4, []Coord{{1, 2}}, Coord{}).Grid()
	d := mustGeneration(t, 5, []Coord{{1, 1}}, Coord{}).Grid()

	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatal("identical grids should be equal and share a hash")
	}
	if a.Equal(c) || a.Hash() == c.Hash() {
		t.Fatal("different grids should differ")
	}
	if a.Equal(d) || a.Equal(nil) {
		t.Fatal("grids of different size should not be equal")
	}
}
