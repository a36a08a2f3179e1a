package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/CTAG07/charkov/pkg/corpus"
	"github.com/urfave/cli/v3"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// app holds the state shared by every subcommand. The database is only
// opened by commands that need the corpus store.
type app struct {
	configPath string
	logLevel   string
	config     *Config
	logger     *slog.Logger
	db         *sql.DB
	store      *corpus.Store
}

func main() {
	a := &app{}

	root := &cli.Command{
		Name:    "charkov",
		Usage:   "Character-level Markov text models built from a corpus library",
		Version: fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to the JSON or YAML config file",
				Value:       "./charkov.json",
				Destination: &a.configPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Destination: &a.logLevel,
			},
		},
		Before: a.setup,
		After:  a.teardown,
		Commands: []*cli.Command{
			a.corpusCmd(),
			a.generateCmd(),
			a.queryCmd(),
			a.statsCmd(),
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := root.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup loads the config file and builds the logger.
func (a *app) setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	// Log to stderr before the configured level is known.
	bootLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{}))

	config, err := LoadConfig(a.configPath, bootLogger)
	if err != nil {
		return ctx, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cmd.IsSet("log-level") {
		config.LogLevel = a.logLevel
	}
	a.config = config
	a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(config.LogLevel)}))
	return ctx, nil
}

// openStore opens the corpus database, creating its directory and schema if needed.
func (a *app) openStore(ctx context.Context) (*corpus.Store, error) {
	if a.store != nil {
		return a.store, nil
	}
	if dir := filepath.Dir(a.config.DatabasePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := openDB(a.config.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if err = corpus.SetupSchema(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to setup corpus schema: %w", err)
	}
	store, err := corpus.NewStore(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to prepare corpus store: %w", err)
	}
	store.SetLogger(a.logger)

	a.logger.DebugContext(ctx, "Corpus database opened",
		slog.String("path", a.config.DatabasePath),
		slog.String("driver", sqliteDriver),
	)
	a.db, a.store = db, store
	return store, nil
}

func (a *app) teardown(_ context.Context, _ *cli.Command) error {
	if a.store != nil {
		a.store.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("Failed to close database", "error", err)
		}
	}
	return nil
}
