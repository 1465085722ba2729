package simulation

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// NewFromConfig sequences the independent setup steps front-ends use:
// construct, randomize with the configured ratio, then stamp the configured pattern.
func NewFromConfig(cfg utils.Config) (*Simulation, error) {
	pattern, err := model.PatternByName(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	opts := []Option{
		WithSeed(cfg.Seed),
		WithHistory(cfg.History),
		WithBounded(cfg.UseBoundedGrid),
	}
	if cfg.UseMemoryPool {
		opts = append(opts, WithPool(model.NewGridPool()))
	}

	sim, err := New(cfg.Width, cfg.Height, opts...)
	if err != nil {
		return nil, err
	}
	if err = sim.Randomize(cfg.RandomRatio); err != nil {
		return nil, errors.Wrap(err, "[NewFromConfig]")
	}
	if err = sim.Stamp(pattern); err != nil {
		return nil, errors.Wrap(err, "[NewFromConfig]")
	}
	return sim, nil
}
