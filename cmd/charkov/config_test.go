package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/CTAG07/charkov/pkg/markov"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestLoadConfigCreatesDefault(t *testing.T) {
	for _, name := range []string{"charkov.json", "charkov.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)

			cfg, err := LoadConfig(path, discardLogger)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if !reflect.DeepEqual(cfg, DefaultConfig()) {
				t.Errorf("expected defaults, got %+v", cfg)
			}
			if _, err = os.Stat(path); err != nil {
				t.Fatalf("expected default config file to be written: %v", err)
			}

			// Reading the written file back yields the same config.
			again, err := LoadConfig(path, discardLogger)
			if err != nil {
				t.Fatalf("second LoadConfig() error = %v", err)
			}
			if !reflect.DeepEqual(again, cfg) {
				t.Errorf("round trip mismatch: %+v vs %+v", again, cfg)
			}
		})
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{name: "JSON", file: "c.json", content: `{"order": 5, "seed": 7, "log_level": "debug"}`},
		{name: "YAML", file: "c.yml", content: "order: 5\nseed: 7\nlog_level: debug\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tc.file)
			if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
				t.Fatal(err)
			}

			cfg, err := LoadConfig(path, discardLogger)
			if err != nil {
				t.Fatalf("LoadConfig() error = %v", err)
			}
			if cfg.Order != 5 || cfg.Seed != 7 || cfg.LogLevel != "debug" {
				t.Errorf("overrides not applied: %+v", cfg)
			}
			// Unset keys keep their defaults.
			if cfg.MaxLength != DefaultConfig().MaxLength || !cfg.EarlyTermination {
				t.Errorf("defaults lost: %+v", cfg)
			}
		})
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path, discardLogger); err == nil {
		t.Error("expected a parse error")
	}
}

func TestParseLogLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
		"Warn":    slog.LevelWarn,
		"ERROR":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for in, want := range testCases {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseChar(t *testing.T) {
	if c, err := parseChar("NUL"); err != nil || c != markov.NoCharacter {
		t.Errorf("parseChar(\"NUL\") = %d, %v", c, err)
	}
	if c, err := parseChar("a"); err != nil || c != 'a' {
		t.Errorf("parseChar(\"a\") = %d, %v", c, err)
	}
	if _, err := parseChar("ab"); err == nil {
		t.Error("expected an error for a multi-byte argument")
	}
	if got := charLabel(markov.NoCharacter); got != "NUL" {
		t.Errorf("charLabel(NoCharacter) = %q", got)
	}
	if got := charLabel('x'); got != "'x'" {
		t.Errorf("charLabel('x') = %q", got)
	}
}
