package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"
)

func (a *app) corpusCmd() *cli.Command {
	return &cli.Command{
		Name:  "corpus",
		Usage: "Manage the library of training texts",
		Commands: []*cli.Command{
			{
				Name:      "add",
				Usage:     "Store a text file under a name, replacing any existing text",
				ArgsUsage: "NAME FILE|-",
				Action:    a.corpusAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List stored texts",
				Action:  a.corpusList,
			},
			{
				Name:      "remove",
				Aliases:   []string{"rm"},
				Usage:     "Delete a stored text",
				ArgsUsage: "NAME",
				Action:    a.corpusRemove,
			},
		},
	}
}

func (a *app) corpusAdd(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return errors.New("usage: charkov corpus add NAME FILE|-")
	}
	name, path := cmd.Args().Get(0), cmd.Args().Get(1)

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open '%s': %w", path, err)
		}
		defer func(f *os.File) {
			_ = f.Close()
		}(f)
		r = f
	}

	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	info, err := store.Put(ctx, name, r)
	if err != nil {
		return err
	}
	fmt.Printf("stored %s (%s)\n", info.Name, humanize.Bytes(uint64(info.Size)))
	return nil
}

func (a *app) corpusList(ctx context.Context, _ *cli.Command) error {
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	texts, err := store.List(ctx)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		a.logger.Info("no texts stored", "database", a.config.DatabasePath)
		return nil
	}
	for _, t := range texts {
		fmt.Printf("  %-30s %10s  added %s\n", t.Name, humanize.Bytes(uint64(t.Size)), humanize.Time(t.AddedAt))
	}
	fmt.Printf("\n%d text(s)\n", len(texts))
	return nil
}

func (a *app) corpusRemove(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("usage: charkov corpus remove NAME")
	}
	store, err := a.openStore(ctx)
	if err != nil {
		return err
	}
	return store.Remove(ctx, cmd.Args().First())
}
