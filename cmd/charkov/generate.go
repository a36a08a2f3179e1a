package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/CTAG07/charkov/pkg/markov"
	"github.com/natefinch/atomic"
	"github.com/urfave/cli/v3"
)

func (a *app) generateCmd() *cli.Command {
	flags := append(modelFlags(),
		&cli.StringFlag{
			Name:  "start",
			Usage: "text to continue from (default: the beginning of the first corpus text)",
		},
		&cli.IntFlag{
			Name:    "length",
			Aliases: []string{"n"},
			Usage:   "maximum number of characters to sample",
		},
		&cli.BoolFlag{
			Name:  "no-early-stop",
			Usage: "restart from the start text instead of stopping at an end-of-text follower",
		},
		&cli.BoolFlag{
			Name:  "stream",
			Usage: "print characters as they are sampled",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "write the generated text to this file instead of stdout",
		},
	)

	return &cli.Command{
		Name:   "generate",
		Usage:  "Generate text from a model trained on stored texts",
		Flags:  flags,
		Action: a.generate,
	}
}

func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	m, names, err := a.buildModel(ctx, cmd)
	if err != nil {
		return err
	}

	start := cmd.String("start")
	if start == "" {
		if start, err = a.defaultStart(ctx, names[0], m.Order()); err != nil {
			return err
		}
	}

	maxLength, canEndEarly := a.config.MaxLength, a.config.EarlyTermination
	if cmd.IsSet("length") {
		maxLength = cmd.Int("length")
	}
	if cmd.IsSet("no-early-stop") {
		canEndEarly = !cmd.Bool("no-early-stop")
	}
	opts := []markov.GenerateOption{
		markov.WithMaxLength(maxLength),
		markov.WithEarlyTermination(canEndEarly),
	}

	out := cmd.String("out")
	if cmd.Bool("stream") && out == "" {
		return a.generateStream(ctx, m, start, opts)
	}

	text, err := m.Generate(ctx, start, opts...)
	if err != nil {
		return err
	}

	if out != "" {
		if err = atomic.WriteFile(out, strings.NewReader(text)); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		a.logger.InfoContext(ctx, "Generated text written",
			slog.String("path", out),
			slog.Int("bytes", len(text)),
		)
		return nil
	}

	fmt.Println(text)
	return nil
}

func (a *app) generateStream(ctx context.Context, m *markov.Model, start string, opts []markov.GenerateOption) error {
	stream, err := m.GenerateStream(ctx, start, opts...)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(os.Stdout)
	_, _ = w.WriteString(start)
	for c := range stream {
		_ = w.WriteByte(c)
		if c == '\n' {
			_ = w.Flush()
		}
	}
	_ = w.WriteByte('\n')
	if err = w.Flush(); err != nil {
		return err
	}
	return ctx.Err()
}

// defaultStart returns the first order characters of the named text, skipping
// NUL bytes the same way training does.
func (a *app) defaultStart(ctx context.Context, name string, order int) (string, error) {
	store, err := a.openStore(ctx)
	if err != nil {
		return "", err
	}
	body, err := store.Get(ctx, name)
	if err != nil {
		return "", err
	}

	start := make([]byte, 0, order)
	for _, b := range body {
		if b == markov.NoCharacter {
			continue
		}
		start = append(start, b)
		if len(start) == order {
			return string(start), nil
		}
	}
	return "", fmt.Errorf("text '%s' is shorter than the model order %d", name, order)
}
