package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/CTAG07/charkov/pkg/markov"
	"github.com/urfave/cli/v3"
)

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "corpus",
			Aliases: []string{"t"},
			Usage:   "name of a stored text to train on (repeatable)",
		},
		&cli.IntFlag{
			Name:    "order",
			Aliases: []string{"k"},
			Usage:   "k-gram length of the model",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "seed for the random generator",
		},
	}
}

// buildModel creates a model from the order and seed flags (falling back to the
// config file) and trains it on every --corpus text in order.
func (a *app) buildModel(ctx context.Context, cmd *cli.Command) (*markov.Model, []string, error) {
	names := cmd.StringSlice("corpus")
	if len(names) == 0 {
		return nil, nil, errors.New("at least one --corpus text is required")
	}

	order, seed := a.config.Order, a.config.Seed
	if cmd.IsSet("order") {
		order = cmd.Int("order")
	}
	if cmd.IsSet("seed") {
		seed = cmd.Int64("seed")
	}

	m, err := markov.New(order, seed)
	if err != nil {
		return nil, nil, err
	}
	m.SetLogger(a.logger)

	store, err := a.openStore(ctx)
	if err != nil {
		return nil, nil, err
	}
	if err = store.TrainModel(ctx, m, names...); err != nil {
		return nil, nil, fmt.Errorf("failed to build model: %w", err)
	}

	a.logger.DebugContext(ctx, "Model built",
		slog.Int("order", order),
		slog.Int64("seed", seed),
		slog.Any("corpus", names),
	)
	return m, names, nil
}
