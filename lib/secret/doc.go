// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret holds sensitive data such as passwords, access tokens,
// and encryption keys in explicitly owned buffers, and erases it in
// place before the memory is released.
//
// A [Buffer] is a fixed number of slots (its capacity) plus a logical
// length. The slots are allocated outside the Go heap via
// mmap(MAP_ANONYMOUS), locked into physical RAM via mlock and excluded
// from core dumps via madvise(MADV_DONTDUMP). Because the garbage
// collector never sees the memory, it cannot copy or move the secret,
// so the Buffer really is the only holder of its bytes.
//
// Constructors:
//
//   - [New], [NewBinary] -- zero-filled buffer of a given capacity
//   - [NewFromBytes] -- copies content in, zeros the caller's slice
//   - [NewFromString] -- copies content in from a string
//   - [NewFromReader] -- reads from an io.Reader with a size limit
//   - [ReadFromPath] -- reads a file or stdin, whitespace trimmed
//
// Text buffers keep a zero terminator right after the content and
// always need one spare slot: content of length n needs capacity n+1.
//
// [Buffer.Erase] writes three passes of random values (drawn from a
// freshly seeded lib/random session) over every slot, then a zero pass,
// then sets the length to zero. [EraseRegion] does the same for a plain
// byte slice. Requests larger than the target fail with
// [ErrCapacityExceeded] before any write. [Buffer.Close] erases and then
// unmaps.
//
// [Buffer.Equal] compares the full content and requires the candidate to
// end exactly where the content ends.
//
// Buffers do no locking. Share one across goroutines only behind the
// caller's own mutex.
//
// Erasure is guaranteed only for memory owned by the Buffer during its
// lifetime. Copies made before the secret reached the Buffer (string
// conversions, pages swapped out earlier) are out of reach.
package secret
