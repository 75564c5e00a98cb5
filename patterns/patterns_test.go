package patterns

import (
	"slices"
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) != len(catalog) {
		t.Fatalf("Names returned %d entries, catalog has %d", len(names), len(catalog))
	}
	if !slices.IsSorted(names) {
		t.Fatalf("Names %v not sorted", names)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", name, err)
		}
		if p.Name != name || len(p.Cells) == 0 {
			t.Fatalf("Lookup(%q) returned %+v", name, p)
		}
	}

	if _, err := Lookup("spaceship-9000"); !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("Lookup of unknown name error %v, expected ErrUnknownPattern", err)
	}
}

func TestBounds(t *testing.T) {
	cases := map[string][2]int{
		"glider":  {6, 7},
		"blinker": {3, 1},
		"block":   {2, 2},
		"beacon":  {4, 4},
	}
	for name, want := range cases {
		p, _ := Lookup(name)
		if h, w := p.Bounds(); h != want[0] || w != want[1] {
			t.Fatalf("%s bounds %dx%d, expected %dx%d", name, h, w, want[0], want[1])
		}
	}
}

func TestPatternsSeedTheirBoundingBox(t *testing.T) {
	for _, name := range Names() {
		p, _ := Lookup(name)
		h, w := p.Bounds()
		if _, err := model.NewGeneration(max(h, w), p.Cells, model.Coord{}); err != nil {
			t.Fatalf("%s does not fit its own bounding box: %v", name, err)
		}
	}
}

func TestOscillatorsHavePeriodTwo(t *testing.T) {
	for _, name := range []string{"blinker", "toad", "beacon"} {
		p, _ := Lookup(name)
		initial, err := model.NewGeneration(8, p.Cells, model.Coord{Row: 2, Col: 2})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}

		first := initial.Next()
		second := first.Next()
		if first.Grid().Equal(initial.Grid()) {
			t.Fatalf("%s did not change after one step", name)
		}
		if !second.Grid().Equal(initial.Grid()) {
			t.Fatalf("%s did not return to its initial phase after two steps", name)
		}
	}
}
