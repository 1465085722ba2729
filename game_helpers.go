package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/simulation"
	"github.com/sheikhrachel/go-life/utils"
)

// runPlain skips editing and prints every generation as X/O text.
// It stops on ctx or after config.MaxGenerations generations.
func runPlain(ctx context.Context, config utils.Config, out io.Writer) error {
	sim, err := simulation.NewFromConfig(config)
	if err != nil {
		return err
	}

	var (
		renderer = &model.TerminalRenderer{Out: out}
		stats    = utils.NewStats()
		frames   = make(chan string, 1)
	)
	eg, ctx := errgroup.WithContext(ctx)

	// the generation loop is the only goroutine touching sim; the writer gets text snapshots
	eg.Go(func() error {
		defer close(frames)
		ticker := time.NewTicker(config.GenerationInterval)
		defer ticker.Stop()

		lastFrameTime := time.Now()
		for {
			select {
			case <-ctx.Done():
				return nil
			case frames <- formatGeneration(sim, stats, config):
			}
			if config.MaxGenerations > 0 && sim.Generation() >= config.MaxGenerations {
				return nil
			}

			select {
			case <-ctx.Done():
				return nil
			case frameStart := <-ticker.C:
				sim.Evolve()
				stats.Update(sim.Generation(), sim.LiveCellCount(), frameStart.Sub(lastFrameTime))
				lastFrameTime = frameStart
			}
		}
	})

	eg.Go(func() error {
		for frame := range frames {
			if err := renderer.Clear(); err != nil {
				return errors.Wrap(err, "[runPlain]")
			}
			if _, err := io.WriteString(out, frame); err != nil {
				return errors.Wrap(err, "[runPlain]")
			}
		}
		return nil
	})

	if err = eg.Wait(); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds | Avg Pop: %.1f\n",
		sim.Generation(), stats.Runtime().Seconds(), stats.AveragePopulation)
	return errors.Wrap(err, "[runPlain]")
}

// formatGeneration renders the status lines followed by the grid
func formatGeneration(sim *simulation.Simulation, stats *utils.Stats, config utils.Config) string {
	var boundingInfo string
	if config.UseBoundedGrid {
		boundingInfo = fmt.Sprintf(" | Bounding box: %d cells", sim.BoundingBoxSize())
	}
	return fmt.Sprintf("Gen: %d | Living: %d | Density: %.1f%% | Status: %s%s\n"+
		"Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n%s\n",
		sim.Generation(), sim.LiveCellCount(), sim.Density(), sim.Status(), boundingInfo,
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds(),
		sim)
}
