package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func (a *app) statsCmd() *cli.Command {
	return &cli.Command{
		Name:   "stats",
		Usage:  "Print frequency table statistics for a model and the corpus library",
		Flags:  modelFlags(),
		Action: a.stats,
	}
}

func (a *app) stats(ctx context.Context, cmd *cli.Command) error {
	m, names, err := a.buildModel(ctx, cmd)
	if err != nil {
		return err
	}
	count, size, err := a.store.Summary(ctx)
	if err != nil {
		return err
	}

	s := m.Stats()
	fmt.Printf("corpus:          %d text(s), %s stored\n", count, humanize.Bytes(uint64(size)))
	fmt.Printf("trained on:      %v\n", names)
	fmt.Printf("order:           %d\n", s.Order)
	fmt.Printf("k-grams:         %s\n", humanize.Comma(int64(s.KGrams)))
	fmt.Printf("transitions:     %s\n", humanize.Comma(int64(s.Transitions)))
	fmt.Printf("total frequency: %s\n", humanize.Comma(int64(s.TotalFrequency)))
	fmt.Printf("text endings:    %s\n", humanize.Comma(int64(s.Terminals)))
	return nil
}
