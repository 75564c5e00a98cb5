package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/patterns"
	"github.com/sheikhrachel/go-life/utils"
)

// initializeGame builds the cycle 0 generation and the renderer from the config
func initializeGame(config utils.Config, out io.Writer) (*model.Generation, *model.TerminalRenderer, error) {
	if err := config.Validate(); err != nil {
		return nil, nil, err
	}

	pattern, err := patterns.Lookup(config.Pattern)
	if err != nil {
		return nil, nil, err
	}

	origin := model.Coord{Row: config.OriginRow, Col: config.OriginCol}
	initial, err := model.NewGeneration(config.Size, pattern.Cells, origin)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "[initializeGame] failed to seed pattern %q", pattern.Name)
	}

	renderer := model.NewTerminalRenderer(out)
	renderer.Glyph = config.GlyphRune()
	renderer.Color = config.Color
	renderer.ClearScreen = config.ClearScreen

	return initial, renderer, nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(status io.Writer, config utils.Config, initial *model.Generation) {
	fmt.Fprintf(status, "Grid: %dx%d | Pattern: %s at (%d,%d) | Initial living cells: %d\n",
		config.Size, config.Size, config.Pattern, config.OriginRow, config.OriginCol,
		initial.Grid().CountLivingCells())
	fmt.Fprintf(status, "Frame interval: %v | Max generations: %d | Stop when stagnant: %v\n",
		config.FrameRate, config.MaxGenerations, config.StopWhenStagnant)
	fmt.Fprintln(status, "Press Ctrl+C to exit")
}

// displayFinalStats shows the summary printed when the loop ends
func displayFinalStats(status io.Writer, reason string, stats *utils.Stats) {
	fmt.Fprintf(status, "Stopped: %s\n", reason)
	fmt.Fprintf(status, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
	fmt.Fprintf(status, "Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// run drives the simulation until the context is cancelled, a signal arrives
// or a configured stop condition is reached
func run(ctx context.Context, config utils.Config, out, status io.Writer) error {
	initial, renderer, err := initializeGame(config, out)
	if err != nil {
		return err
	}
	displayGameInfo(status, config, initial)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		select {
		case sig := <-sigChan:
			fmt.Fprintf(status, "\nShutting down on %v...\n", sig)
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		return runFrames(ctx, config, initial, renderer, status)
	})

	return eg.Wait()
}

// runFrames renders initial, then keeps pulling and rendering generations
func runFrames(
	ctx context.Context,
	config utils.Config,
	initial *model.Generation,
	renderer *model.TerminalRenderer,
	status io.Writer,
) error {
	var (
		stats         = utils.NewStats()
		history       utils.History
		sequence      = model.NewSequence(initial)
		generation    = initial
		lastFrameTime = time.Now()
	)

	for {
		if err := renderer.Display(generation); err != nil {
			return errors.Wrapf(err, "[runFrames] failed to render cycle %d", generation.Cycle())
		}

		frameStart := time.Now()
		stats.Update(generation.Cycle(), generation.Grid().CountLivingCells(), frameStart.Sub(lastFrameTime))
		lastFrameTime = frameStart

		if config.MaxGenerations > 0 && generation.Cycle() >= config.MaxGenerations {
			displayFinalStats(status, fmt.Sprintf("reached maximum generations limit (%d)", config.MaxGenerations), stats)
			return nil
		}

		if config.StopWhenStagnant && history.Stagnant(generation.Grid().Hash()) {
			displayFinalStats(status, fmt.Sprintf("stagnation detected at cycle %d", generation.Cycle()), stats)
			return nil
		}

		if !sleep(ctx, config.FrameRate) {
			displayFinalStats(status, "interrupted", stats)
			return nil
		}

		generation = sequence.Next()
	}
}

// sleep waits for d and reports false if the context ended first
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
