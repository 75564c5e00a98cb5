package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultConfigFile = "config.json"

	// unset marks integer flags that were not given on the command line
	unset = math.MinInt32
)

// cliOptions holds the raw command line values before they are merged into the config
type cliOptions struct {
	configFile       string
	size             int
	pattern          string
	originRow        int
	originCol        int
	interval         time.Duration
	maxGenerations   int
	glyph            string
	color            bool
	clearScreen      bool
	stopWhenStagnant bool
	list             bool
}

func main() {
	opts := parseFlags()

	if opts.list {
		listPatterns(os.Stdout)
		return
	}

	config, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err = run(context.Background(), config, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseFlags() cliOptions {
	opts := cliOptions{
		size:           unset,
		originRow:      unset,
		originCol:      unset,
		interval:       -1,
		maxGenerations: unset,
	}

	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a bounded square grid, rendered as text")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.String(&opts.configFile, "c", "config", "JSON config file (default "+defaultConfigFile+" if present)")
	flaggy.Int(&opts.size, "s", "size", "Grid dimension, the board is size x size")
	flaggy.String(&opts.pattern, "p", "pattern", "Seed pattern ["+strings.Join(patterns.Names(), "|")+"]")
	flaggy.Int(&opts.originRow, "", "originRow", "Row offset added to every seed cell")
	flaggy.Int(&opts.originCol, "", "originCol", "Column offset added to every seed cell")
	flaggy.Duration(&opts.interval, "i", "interval", "Pause between frames, for example 150ms")
	flaggy.Int(&opts.maxGenerations, "m", "maxGenerations", "Stop after this cycle, 0 runs until interrupted")
	flaggy.String(&opts.glyph, "g", "glyph", "Character drawn for living cells")
	flaggy.Bool(&opts.color, "", "color", "Colorize living cells")
	flaggy.Bool(&opts.clearScreen, "", "clear", "Clear the terminal before every frame")
	flaggy.Bool(&opts.stopWhenStagnant, "", "stopWhenStagnant", "Stop once the board is static or cycling")
	flaggy.Bool(&opts.list, "l", "list", "List the available patterns and exit")

	flaggy.Parse()
	return opts
}

// loadConfig reads the config file, if any, and applies command line overrides on top
func loadConfig(opts cliOptions) (utils.Config, error) {
	config := utils.DefaultConfig()

	switch {
	case opts.configFile != "":
		loaded, err := utils.LoadConfig(opts.configFile)
		if err != nil {
			return config, err
		}
		config = loaded
	default:
		// fallback to defaults if the file doesn't exist
		if _, err := os.Stat(defaultConfigFile); err == nil {
			loaded, err := utils.LoadConfig(defaultConfigFile)
			if err != nil {
				return config, err
			}
			config = loaded
		}
	}

	applyOverrides(&config, opts)

	if err := config.Validate(); err != nil {
		return config, errors.Wrap(err, "[loadConfig] invalid configuration")
	}
	return config, nil
}

func applyOverrides(config *utils.Config, opts cliOptions) {
	if opts.size != unset {
		config.Size = opts.size
	}
	if opts.pattern != "" {
		config.Pattern = opts.pattern
	}
	if opts.originRow != unset {
		config.OriginRow = opts.originRow
	}
	if opts.originCol != unset {
		config.OriginCol = opts.originCol
	}
	if opts.interval >= 0 {
		config.FrameRate = opts.interval
	}
	if opts.maxGenerations != unset {
		config.MaxGenerations = opts.maxGenerations
	}
	if opts.glyph != "" {
		config.Glyph = opts.glyph
	}
	config.Color = config.Color || opts.color
	config.ClearScreen = config.ClearScreen || opts.clearScreen
	config.StopWhenStagnant = config.StopWhenStagnant || opts.stopWhenStagnant
}

func listPatterns(out io.Writer) {
	for _, name := range patterns.Names() {
		p, _ := patterns.Lookup(name)
		h, w := p.Bounds()
		fmt.Fprintf(out, "%-12s %dx%d  %s\n", p.Name, h, w, p.Description)
	}
}
