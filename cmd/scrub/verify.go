// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/scrub/lib/secret"
)

// runVerify compares a stored secret with a candidate. Both buffers are
// erased before the result is reported; if either erase fails the
// command fails instead of reporting a match.
func runVerify(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var common commonOptions
	var secretFile string
	var candidateFile string

	flagSet := pflag.NewFlagSet("scrub verify", pflag.ContinueOnError)
	common.addFlags(flagSet)
	flagSet.StringVar(&secretFile, "secret-file", "", "file holding the trusted secret (required)")
	flagSet.StringVar(&candidateFile, "candidate-file", "", "file holding the candidate, or - for stdin (default: prompt on a terminal, else read stdin)")

	proceed, err := parseFlags(flagSet, args, stdout)
	if !proceed {
		return err
	}
	if secretFile == "" {
		return fmt.Errorf("--secret-file is required")
	}
	candidateFromStdin := candidateFile == "" || candidateFile == "-"
	if secretFile == "-" && candidateFromStdin {
		return fmt.Errorf("--secret-file - needs a --candidate-file other than -: stdin cannot supply both")
	}

	cfg, logger, closeLog, err := common.setup(stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("subcommand", "verify")

	trusted, err := secret.ReadFromPath(secretFile)
	if err != nil {
		return fmt.Errorf("reading trusted secret: %w", err)
	}
	defer trusted.Close()

	var candidate *secret.Buffer
	if candidateFromStdin {
		candidate, err = readSecretInput(stdin, stderr, "Secret: ", cfg.Secret.MaxSize)
	} else {
		candidate, err = secret.ReadFromPath(candidateFile)
	}
	if err != nil {
		return fmt.Errorf("reading candidate: %w", err)
	}
	defer candidate.Close()

	match := trusted.Equal(candidate.Bytes())

	if err := eraseAll(logger, map[string]*secret.Buffer{"trusted": trusted, "candidate": candidate}); err != nil {
		return err
	}

	if !match {
		logger.Warn("candidate rejected")
		return mismatchError{}
	}
	logger.Info("candidate accepted")
	fmt.Fprintln(stdout, "match")
	return nil
}

// eraseAll erases every buffer, even after a failure, and returns all
// failures joined.
func eraseAll(logger *slog.Logger, buffers map[string]*secret.Buffer) error {
	var errs []error
	for name, buffer := range buffers {
		capacity := buffer.Cap()
		if err := buffer.Erase(); err != nil {
			logger.Error("erase failed", "buffer", name, "error", err)
			errs = append(errs, fmt.Errorf("erasing %s secret: %w", name, err))
			continue
		}
		logger.Debug("buffer erased", "buffer", name, "capacity", capacity)
	}
	return errors.Join(errs...)
}
