// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package random

import (
	"crypto/rand"
	"fmt"
	"io"
	"math"
	mathrand "math/rand/v2"
)

// Entropy is the source every session seed is read from. Tests replace
// it to exercise seed failures; production code must leave it alone.
//
//nolint:gochecknoglobals // swappable for tests
var Entropy io.Reader = rand.Reader

// seedSize is the ChaCha8 seed length.
const seedSize = 32

// Session is a seeded generator for a batch of values. A Session is not
// safe for concurrent use.
type Session struct {
	generator *mathrand.Rand
}

// NewSession seeds a new generator from Entropy.
func NewSession() (*Session, error) {
	var seed [seedSize]byte
	if _, err := io.ReadFull(Entropy, seed[:]); err != nil {
		return nil, fmt.Errorf("random: reading %d-byte seed: %w: %w", seedSize, ErrEntropy, err)
	}
	session := &Session{generator: mathrand.New(mathrand.NewChaCha8(seed))}
	clear(seed[:])
	return session, nil
}

// Int returns a value in [low, high], inclusive at both ends. Any pair
// with low <= high is accepted, including the full int range.
func (s *Session) Int(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("random: low %d is greater than high %d: %w", low, high, ErrRange)
	}

	// Unsigned subtraction gives the exact distance even when high-low
	// overflows int.
	span := uint64(high) - uint64(low)
	if span == math.MaxUint64 {
		return int(s.generator.Uint64()), nil
	}
	return low + int(s.generator.Uint64N(span+1)), nil
}

// Byte returns a value in [0, 255].
func (s *Session) Byte() byte {
	return byte(s.generator.Uint32())
}

// Letter returns an upper-case ASCII letter in ['A', 'Z'].
func (s *Session) Letter() byte {
	return 'A' + byte(s.generator.IntN(26))
}

// index returns a value in [0, n). n must be positive.
func (s *Session) index(n int) int {
	return s.generator.IntN(n)
}

// Generate seeds a new session and draws one value in [low, high].
func Generate(low, high int) (int, error) {
	if low > high {
		return 0, fmt.Errorf("random: low %d is greater than high %d: %w", low, high, ErrRange)
	}
	session, err := NewSession()
	if err != nil {
		return 0, err
	}
	return session.Int(low, high)
}
