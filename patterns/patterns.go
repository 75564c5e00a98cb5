package patterns

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// ErrUnknownPattern is returned by Lookup for names missing from the catalog
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a named set of seed coordinates relative to its own top-left corner
type Pattern struct {
	Name        string
	Description string
	Cells       []model.Coord
}

// Bounds returns the height and width of the pattern's bounding box
func (p Pattern) Bounds() (height, width int) {
	for _, c := range p.Cells {
		height = max(height, c.Row+1)
		width = max(width, c.Col+1)
	}
	return
}

var catalog = map[string]Pattern{
	"glider": {
		Name:        "glider",
		Description: "spaceship travelling down and to the right",
		Cells:       []model.Coord{{3, 5}, {4, 6}, {5, 6}, {5, 5}, {5, 4}},
	},
	"blinker": {
		Name:        "blinker",
		Description: "period 2 oscillator, vertical phase first",
		Cells:       []model.Coord{{0, 0}, {1, 0}, {2, 0}},
	},
	"block": {
		Name:        "block",
		Description: "2x2 still life",
		Cells:       []model.Coord{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
	},
	"toad": {
		Name:        "toad",
		Description: "period 2 oscillator",
		Cells:       []model.Coord{{0, 1}, {0, 2}, {0, 3}, {1, 0}, {1, 1}, {1, 2}},
	},
	"beacon": {
		Name:        "beacon",
		Description: "period 2 oscillator made of two diagonal blocks",
		Cells:       []model.Coord{{0, 0}, {0, 1}, {1, 0}, {2, 3}, {3, 2}, {3, 3}},
	},
	"rpentomino": {
		Name:        "rpentomino",
		Description: "methuselah that settles after 1103 generations on an unbounded plane",
		Cells:       []model.Coord{{0, 1}, {0, 2}, {1, 0}, {1, 1}, {2, 1}},
	},
}

// Lookup returns the pattern registered under name
func Lookup(name string) (Pattern, error) {
	p, ok := catalog[name]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "[Lookup] no pattern named %q", name)
	}
	return p, nil
}

// Names returns the catalog entries in alphabetical order
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
