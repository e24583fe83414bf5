// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"fmt"
	"runtime"

	"github.com/bureau-foundation/scrub/lib/random"
)

// overwritePasses is the number of random-value passes written before
// the final zero pass.
const overwritePasses = 3

// Erase scrubs every slot of buffer. See [Buffer.Erase].
func Erase(buffer *Buffer) error {
	return buffer.Erase()
}

// Erase overwrites all Cap() slots three times with random values, then
// with zero, and sets Len() to 0. An empty buffer is still scrubbed, since
// slots past a truncated length may hold earlier content.
//
// Either every pass runs or nothing is written: all validation and all
// random draws happen before the first write.
func (b *Buffer) Erase() error {
	return b.EraseN(b.capacity)
}

// EraseN scrubs the first n slots and sets Len() to 0. n must cover
// every slot written since the last erase, including slots left past a
// length that SetLength has since shrunk: a smaller n fails with
// ErrRange. n above Cap() fails with ErrCapacityExceeded. In both cases
// nothing is written.
func (b *Buffer) EraseN(n int) error {
	if b.closed {
		return fmt.Errorf("secret: erase: %w", ErrClosed)
	}
	if n > b.capacity || len(b.data) != b.capacity {
		return fmt.Errorf("secret: erase %d slots of a buffer with capacity %d: %w", n, b.capacity, ErrCapacityExceeded)
	}
	if n < b.extent {
		return fmt.Errorf("secret: erase %d slots would leave %d of %d written slots: %w", n, b.extent-n, b.extent, ErrRange)
	}

	patterns, err := overwritePatterns(b.kind)
	if err != nil {
		return err
	}
	scrub(b.data[:n], patterns)
	b.length = 0
	b.extent = 0
	return nil
}

// EraseRegion scrubs region[:length] in place with the same passes as
// Buffer.Erase, using binary overwrite values. A length outside
// [0, len(region)] fails with ErrCapacityExceeded and nothing is
// written. Zero length succeeds without writing.
func EraseRegion(region []byte, length int) error {
	if length < 0 || length > len(region) {
		return fmt.Errorf("secret: erase %d bytes of a %d-byte region: %w", length, len(region), ErrCapacityExceeded)
	}
	if length == 0 {
		return nil
	}

	patterns, err := overwritePatterns(Binary)
	if err != nil {
		return err
	}
	scrub(region[:length], patterns)
	return nil
}

// overwritePatterns draws one value per pass from a freshly seeded session.
func overwritePatterns(kind Kind) ([overwritePasses]byte, error) {
	var patterns [overwritePasses]byte
	session, err := random.NewSession()
	if err != nil {
		return patterns, fmt.Errorf("secret: drawing overwrite values: %w", err)
	}
	for pass := range patterns {
		if kind == Text {
			patterns[pass] = session.Letter()
		} else {
			patterns[pass] = session.Byte()
		}
	}
	return patterns, nil
}

// scrub writes each pattern over every byte of region in order, then
// zeroes it. The zero pass is the last write.
//
//go:noinline
func scrub(region []byte, patterns [overwritePasses]byte) {
	for _, pattern := range patterns {
		for index := range region {
			region[index] = pattern
		}
		runtime.KeepAlive(region)
	}
	Zero(region)
}
