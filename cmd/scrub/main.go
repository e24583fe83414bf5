// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bureau-foundation/scrub/lib/version"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return fmt.Errorf("subcommand required")
	}

	subcommand := args[0]
	switch subcommand {
	case "verify":
		return runVerify(args[1:], stdin, stdout, stderr)
	case "erase":
		return runErase(args[1:], stdin, stdout, stderr)
	case "rand":
		return runRand(args[1:], stdout, stderr)
	case "text":
		return runText(args[1:], stdout, stderr)
	case "version", "--version":
		version.Print(stdout, "scrub")
		return nil
	case "-h", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return fmt.Errorf("unknown subcommand: %q", subcommand)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage: scrub <subcommand> [flags]

Subcommands:
  verify    Compare a stored secret with a candidate, then erase both
  erase     Load a secret into locked memory and erase it
  rand      Print random integers from a high-entropy seeded generator
  text      Print printable filler text
  version   Print version information

Run 'scrub <subcommand> --help' for subcommand flags.
`)
}

// mismatchError reports a verify that ran to completion without a match.
type mismatchError struct{}

func (mismatchError) Error() string { return "secrets do not match" }

// ExitCode distinguishes a clean mismatch from an operational failure.
func (mismatchError) ExitCode() int { return 1 }
