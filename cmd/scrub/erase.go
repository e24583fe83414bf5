// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/scrub/lib/secret"
)

// runErase loads a secret into locked memory and erases it. It exercises
// the whole buffer lifecycle on this host: mmap, mlock within
// RLIMIT_MEMLOCK, overwrite passes, zero pass, unmap.
func runErase(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var common commonOptions
	var secretFile string

	flagSet := pflag.NewFlagSet("scrub erase", pflag.ContinueOnError)
	common.addFlags(flagSet)
	flagSet.StringVar(&secretFile, "secret-file", "", "file holding the secret (default: prompt on a terminal, else read stdin)")

	proceed, err := parseFlags(flagSet, args, stdout)
	if !proceed {
		return err
	}

	cfg, logger, closeLog, err := common.setup(stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	logger = logger.With("subcommand", "erase")

	var buffer *secret.Buffer
	if secretFile != "" && secretFile != "-" {
		buffer, err = secret.ReadFromPath(secretFile)
	} else {
		buffer, err = readSecretInput(stdin, stderr, "Secret: ", cfg.Secret.MaxSize)
	}
	if err != nil {
		return fmt.Errorf("reading secret: %w", err)
	}

	length, capacity := buffer.Len(), buffer.Cap()
	if err := buffer.Erase(); err != nil {
		buffer.Close()
		return fmt.Errorf("erasing secret: %w", err)
	}
	if err := buffer.Close(); err != nil {
		return fmt.Errorf("releasing secret: %w", err)
	}

	logger.Info("secret erased", "length", length, "capacity", capacity)
	fmt.Fprintf(stdout, "erased %d slots\n", capacity)
	return nil
}
