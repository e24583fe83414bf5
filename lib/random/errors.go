// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package random

import "errors"

var (
	// ErrRange means an empty or inverted range was requested.
	ErrRange = errors.New("invalid range")

	// ErrEntropy means the entropy source could not supply a seed.
	ErrEntropy = errors.New("entropy source failed")
)
