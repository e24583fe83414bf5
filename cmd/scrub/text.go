// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/bureau-foundation/scrub/lib/random"
)

func runText(args []string, stdout, stderr io.Writer) error {
	var common commonOptions
	var length, count int
	var alphabet string

	flagSet := pflag.NewFlagSet("scrub text", pflag.ContinueOnError)
	common.addFlags(flagSet)
	flagSet.IntVarP(&length, "length", "l", -1, "characters per line (default: text.length from config)")
	flagSet.StringVar(&alphabet, "alphabet", "", "characters to draw from (default: text.alphabet from config)")
	flagSet.IntVarP(&count, "count", "n", 1, "number of lines")

	proceed, err := parseFlags(flagSet, args, stdout)
	if !proceed {
		return err
	}

	cfg, logger, closeLog, err := common.setup(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if length < 0 {
		length = cfg.Text.Length
	}
	if alphabet == "" {
		alphabet = cfg.Text.Alphabet
	}

	generator, err := random.NewTextGenerator(alphabet)
	if err != nil {
		return err
	}
	for index := 0; index < count; index++ {
		text, err := generator.Generate(length)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, text)
	}
	logger.Debug("filler text generated", "count", count, "length", length)
	return nil
}
