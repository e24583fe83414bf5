// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/scrub/lib/random"
)

func runRand(args []string, stdout, stderr io.Writer) error {
	var common commonOptions
	var low, high, count int
	var useSession bool

	flagSet := pflag.NewFlagSet("scrub rand", pflag.ContinueOnError)
	common.addFlags(flagSet)
	flagSet.IntVar(&low, "min", 0, "smallest value (inclusive)")
	flagSet.IntVar(&high, "max", 100, "largest value (inclusive)")
	flagSet.IntVarP(&count, "count", "n", 1, "number of values")
	flagSet.BoolVar(&useSession, "session", false, "draw all values from one seeded session instead of reseeding per value")

	proceed, err := parseFlags(flagSet, args, stdout)
	if !proceed {
		return err
	}
	if count < 0 {
		return fmt.Errorf("--count must not be negative, got %d", count)
	}

	_, logger, closeLog, err := common.setup(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	draw := random.Generate
	if useSession {
		session, err := random.NewSession()
		if err != nil {
			return err
		}
		draw = session.Int
	}

	for index := 0; index < count; index++ {
		value, err := draw(low, high)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, value)
	}
	logger.Debug("random values drawn", "count", count, "min", low, "max", high, "session", useSession)
	return nil
}
