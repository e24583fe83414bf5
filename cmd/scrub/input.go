// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/bureau-foundation/scrub/lib/secret"
)

// readSecretInput reads a secret of at most maxSize bytes. A terminal
// gets a no-echo prompt. Anything else is read straight into locked
// memory. Either way surrounding whitespace is trimmed, the same rule
// secret.ReadFromPath applies to files.
func readSecretInput(stdin io.Reader, stderr io.Writer, prompt string, maxSize int) (*secret.Buffer, error) {
	var buffer *secret.Buffer
	var err error
	if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		buffer, err = promptSecret(file, stderr, prompt, maxSize)
	} else {
		buffer, err = secret.NewFromReader(stdin, maxSize)
	}
	if err != nil {
		return nil, fmt.Errorf("reading secret: %w", err)
	}

	if err := buffer.TrimSpace(); err != nil {
		return nil, errors.Join(err, buffer.Close())
	}
	return buffer, nil
}

func promptSecret(file *os.File, stderr io.Writer, prompt string, maxSize int) (*secret.Buffer, error) {
	fmt.Fprint(stderr, prompt)
	input, err := term.ReadPassword(int(file.Fd()))
	fmt.Fprintln(stderr)
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	if len(input) > maxSize {
		secret.Zero(input)
		return nil, fmt.Errorf("input exceeds %d bytes: %w", maxSize, secret.ErrCapacity)
	}

	buffer, err := secret.NewFromBytes(input, len(input)+1)
	if err != nil {
		secret.Zero(input)
		return nil, err
	}
	return buffer, nil
}
