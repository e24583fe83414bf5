// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package random supplies uniformly distributed integers and printable
// filler text for the secret package and its callers.
//
// Every [Session] is a ChaCha8 generator seeded with 32 bytes read from
// [Entropy] (crypto/rand by default). Nothing is ever seeded from the
// wall clock: two generators seeded from the clock in the same tick
// produce the same sequence, and a stream of overwrite patterns that
// repeats across erasures is exactly what the secret package must not
// have.
//
// [Generate] is the single-shot form: it seeds a fresh session for each
// call and draws one value. It is the default for callers that need a
// handful of values. Callers drawing many values in a loop should hold
// one [Session] instead of paying for a reseed per value.
//
// [TextGenerator] produces printable strings over an alphabet. The output
// is filler for fixtures and placeholder values. It is not a password
// generator.
//
// This package has no Bureau-internal dependencies.
package random
