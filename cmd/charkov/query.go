package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/CTAG07/charkov/pkg/markov"
	"github.com/urfave/cli/v3"
)

func (a *app) queryCmd() *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "Show how often a k-gram occurred and what followed it",
		ArgsUsage: "KGRAM [CHAR|NUL]",
		Flags:     modelFlags(),
		Action:    a.query,
	}
}

func (a *app) query(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() < 1 || cmd.Args().Len() > 2 {
		return errors.New("usage: charkov query KGRAM [CHAR|NUL]")
	}
	kgram := cmd.Args().First()

	m, _, err := a.buildModel(ctx, cmd)
	if err != nil {
		return err
	}
	if len(kgram) != m.Order() {
		a.logger.Warn("k-gram length does not match the model order",
			"kgram", kgram, "length", len(kgram), "order", m.Order())
	}

	fmt.Printf("frequency(%q) = %d\n", kgram, m.FrequencyOf(kgram))

	if cmd.Args().Len() == 2 {
		c, err := parseChar(cmd.Args().Get(1))
		if err != nil {
			return err
		}
		fmt.Printf("frequency(%q, %s) = %d\n", kgram, charLabel(c), m.FrequencyOfChar(kgram, c))
		return nil
	}

	followers, total := m.Followers(kgram)
	for _, f := range followers {
		fmt.Printf("  %-8s %8d  %6.2f%%\n", charLabel(f.Char), f.Freq, 100*float64(f.Freq)/float64(total))
	}
	return nil
}

// parseChar accepts a single byte or the word NUL for the end-of-text sentinel.
func parseChar(arg string) (byte, error) {
	if arg == "NUL" {
		return markov.NoCharacter, nil
	}
	if len(arg) != 1 {
		return 0, fmt.Errorf("character must be a single byte or NUL, got %q", arg)
	}
	return arg[0], nil
}

func charLabel(c byte) string {
	if c == markov.NoCharacter {
		return "NUL"
	}
	return strconv.QuoteRune(rune(c))
}
