// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import "errors"

// Sentinel errors returned (wrapped) by this package. Callers match them
// with errors.Is. None of them is transient: retrying the same call with
// the same arguments fails the same way.
var (
	// ErrAllocation means the requested capacity could not be satisfied:
	// zero capacity, or the kernel refused the mapping or the lock.
	ErrAllocation = errors.New("allocation failed")

	// ErrCapacity means content does not fit the declared capacity with
	// one slot left over for the terminator.
	ErrCapacity = errors.New("content does not fit capacity")

	// ErrRange means a logical length outside [0, capacity] was requested.
	ErrRange = errors.New("length out of range")

	// ErrCapacityExceeded means an erase was requested over more slots
	// than the target owns. Nothing was written.
	ErrCapacityExceeded = errors.New("erase length exceeds capacity")

	// ErrClosed means the buffer's memory has already been released.
	ErrClosed = errors.New("buffer is closed")
)
