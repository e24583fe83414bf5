// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/scrub/lib/config"
)

// commonOptions are the flags every subcommand accepts.
type commonOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func (o *commonOptions) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&o.configPath, "config", "", "path to scrub.yaml (default: $SCRUB_CONFIG, else built-in defaults)")
	flagSet.StringVar(&o.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	flagSet.StringVar(&o.logFormat, "log-format", "", "override log.format (auto, text, json)")
}

// loadConfig resolves the config file: --config, then SCRUB_CONFIG, then
// defaults. Flag overrides are applied before validation.
func (o *commonOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	switch {
	case o.configPath != "":
		cfg, err = config.LoadFile(o.configPath)
	case os.Getenv(config.EnvironmentVariable) != "":
		cfg, err = config.Load()
	default:
		cfg = config.Default()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setup loads configuration and builds the logger. The returned close
// function releases the log file, if one was opened.
func (o *commonOptions) setup(stderr io.Writer) (*config.Config, *slog.Logger, func() error, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	output := stderr
	closeOutput := func() error { return nil }
	if cfg.Log.Output != "" {
		file, err := os.OpenFile(cfg.Log.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening log output: %w", err)
		}
		output = file
		closeOutput = file.Close
	}

	logger, err := newLogger(cfg.Log, output)
	if err != nil {
		closeOutput()
		return nil, nil, nil, err
	}
	return cfg, logger, closeOutput, nil
}

// newLogger creates a structured logger for command operations. In auto
// format, a terminal gets slog.TextHandler for human-readable output and
// anything else (pipes, files, CI) gets slog.JSONHandler.
func newLogger(logConfig config.LogConfig, output io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(logConfig.Level)); err != nil {
		return nil, fmt.Errorf("parsing log level %q: %w", logConfig.Level, err)
	}
	options := &slog.HandlerOptions{Level: level}

	useText := false
	switch logConfig.Format {
	case "text":
		useText = true
	case "json":
	default:
		useText = isTerminal(output)
	}

	var handler slog.Handler
	if useText {
		handler = slog.NewTextHandler(output, options)
	} else {
		handler = slog.NewJSONHandler(output, options)
	}
	return slog.New(handler).With("command", "scrub"), nil
}

func isTerminal(w any) bool {
	file, ok := w.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// parseFlags parses args, turning --help into a printed usage and a nil
// error. The returned bool is false when the caller should stop.
func parseFlags(flagSet *pflag.FlagSet, args []string, stdout io.Writer) (bool, error) {
	flagSet.SetOutput(stdout)
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return false, nil
		}
		return false, err
	}
	if flagSet.NArg() > 0 {
		return false, fmt.Errorf("unexpected arguments: %v", flagSet.Args())
	}
	return true, nil
}
