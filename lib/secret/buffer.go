// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Kind selects how a Buffer's slots are interpreted.
type Kind uint8

const (
	// Text buffers keep a zero terminator at index Len() whenever
	// Len() < Cap(), and are overwritten with 'A'..'Z' during erasure.
	Text Kind = iota

	// Binary buffers hold arbitrary bytes and are overwritten with
	// values in 0..255 during erasure.
	Binary
)

// String returns the kind's name.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Binary:
		return "binary"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Buffer holds sensitive data in a fixed number of slots allocated via
// mmap outside the Go heap, locked against swapping and excluded from
// core dumps. Cap is fixed at construction; Len is the number of
// meaningful slots and never exceeds Cap.
//
// A Buffer must not be copied after creation and is not safe for
// concurrent use: callers that share one across goroutines serialize
// access themselves. Call Erase to scrub the content in place, and
// Close to scrub and release the memory. After Close, reading the
// buffer panics.
type Buffer struct {
	data     []byte
	capacity int
	length   int
	kind     Kind
	closed   bool

	// extent is the number of leading slots that may hold content
	// written since the last erase. It only grows until an erase, so
	// shrinking the length never hides earlier content from EraseN.
	extent int
}

// New allocates an empty Text buffer with capacity slots, all zero.
// A zero capacity, or a mapping the kernel refuses, fails with
// ErrAllocation. A negative capacity fails with ErrCapacity.
func New(capacity int) (*Buffer, error) {
	return allocate(capacity, Text)
}

// NewBinary is New for a Binary buffer.
func NewBinary(capacity int) (*Buffer, error) {
	return allocate(capacity, Binary)
}

// NewFromBytes creates a Text buffer of the given capacity holding a copy
// of source, then zeroes source in place so the buffer is the only holder
// of the secret. Capacity must exceed len(source) by at least one slot
// for the terminator; otherwise the call fails with ErrCapacity and
// source is left untouched.
func NewFromBytes(source []byte, capacity int) (*Buffer, error) {
	if len(source) >= capacity {
		return nil, fmt.Errorf("secret: %d bytes of content need capacity of at least %d, got %d: %w",
			len(source), len(source)+1, capacity, ErrCapacity)
	}

	buffer, err := allocate(capacity, Text)
	if err != nil {
		return nil, err
	}
	copy(buffer.data, source)
	buffer.length = len(source)
	buffer.extend(buffer.length)

	Zero(source)
	return buffer, nil
}

// NewFromString is NewFromBytes for content the caller cannot zero, such
// as a literal or a value handed over by an API that returns strings.
func NewFromString(content string, capacity int) (*Buffer, error) {
	if len(content) >= capacity {
		return nil, fmt.Errorf("secret: %d bytes of content need capacity of at least %d, got %d: %w",
			len(content), len(content)+1, capacity, ErrCapacity)
	}

	buffer, err := allocate(capacity, Text)
	if err != nil {
		return nil, err
	}
	copy(buffer.data, content)
	buffer.length = len(content)
	buffer.extend(buffer.length)
	return buffer, nil
}

func allocate(capacity int, kind Kind) (*Buffer, error) {
	if capacity < 0 {
		return nil, fmt.Errorf("secret: negative capacity %d: %w", capacity, ErrCapacity)
	}
	if capacity == 0 {
		return nil, fmt.Errorf("secret: capacity must be positive: %w", ErrAllocation)
	}

	// Anonymous mappings are zero-filled, so every slot starts at zero
	// and the terminator invariant holds without a write.
	data, err := unix.Mmap(-1, 0, capacity, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, fmt.Errorf("secret: mmap %d bytes: %w: %w", capacity, ErrAllocation, err)
	}

	if err := unix.Mlock(data); err != nil {
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: mlock %d bytes: %w: %w", capacity, ErrAllocation, err)
	}

	if err := unix.Madvise(data, unix.MADV_DONTDUMP); err != nil {
		unix.Munlock(data)
		unix.Munmap(data)
		return nil, fmt.Errorf("secret: madvise(MADV_DONTDUMP): %w: %w", ErrAllocation, err)
	}

	return &Buffer{
		data:     data,
		capacity: capacity,
		kind:     kind,
	}, nil
}

// Len returns the number of meaningful slots.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of allocated slots.
func (b *Buffer) Cap() int {
	return b.capacity
}

// Kind returns whether the buffer holds text or binary data.
func (b *Buffer) Kind() Kind {
	return b.kind
}

// Closed reports whether Close has released the buffer's memory.
func (b *Buffer) Closed() bool {
	return b.closed
}

// Bytes returns the meaningful slots. The slice points into the mmap
// region and its capacity is clipped to Len, so appending to it
// reallocates on the Go heap instead of overwriting the terminator.
// Do not keep the slice beyond the life of the Buffer. Panics if the
// buffer has been closed.
func (b *Buffer) Bytes() []byte {
	b.mustBeOpen("read from")
	return b.data[:b.length:b.length]
}

// String returns a heap copy of the meaningful slots. Go strings are
// immutable, so the copy cannot be erased: use it only at API boundaries
// that require a string. Panics if the buffer has been closed.
func (b *Buffer) String() string {
	b.mustBeOpen("read from")
	return string(b.data[:b.length])
}

// SetLength sets the logical length, truncating or extending over
// whatever the slots already hold. A length outside [0, Cap()] fails
// with ErrRange. For Text buffers a terminator is written at the new
// length when it is below Cap().
func (b *Buffer) SetLength(length int) error {
	if b.closed {
		return fmt.Errorf("secret: set length: %w", ErrClosed)
	}
	if length < 0 || length > b.capacity {
		return fmt.Errorf("secret: length %d outside [0, %d]: %w", length, b.capacity, ErrRange)
	}
	b.length = length
	b.extend(length)
	b.terminate()
	return nil
}

// Append copies p after the current content. If p does not fit (for
// Text buffers, with a slot left for the terminator) it fails with
// ErrCapacity and writes nothing. p is not modified.
func (b *Buffer) Append(p []byte) error {
	if b.closed {
		return fmt.Errorf("secret: append: %w", ErrClosed)
	}
	limit := b.capacity
	if b.kind == Text {
		limit--
	}
	if b.length+len(p) > limit {
		return fmt.Errorf("secret: appending %d bytes to %d of %d slots: %w", len(p), b.length, b.capacity, ErrCapacity)
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	b.extend(b.length)
	b.terminate()
	return nil
}

// TrimSpace removes leading and trailing whitespace from the content in
// place, using the same rule as bytes.TrimSpace. Slots vacated by the
// trim are zeroed.
func (b *Buffer) TrimSpace() error {
	if b.closed {
		return fmt.Errorf("secret: trim: %w", ErrClosed)
	}
	content := b.data[:b.length]
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) > 0 {
		// trimmed shares content's backing array, so the capacity
		// difference is the number of leading bytes dropped.
		copy(b.data, content[cap(content)-cap(trimmed):][:len(trimmed)])
	}
	previous := b.length
	b.length = len(trimmed)
	Zero(b.data[b.length:previous])
	b.terminate()
	return nil
}

// Close erases the buffer, then unlocks and unmaps its memory. It is
// idempotent. If the overwrite passes cannot run, the memory is still
// zeroed and released and the erase error is returned.
func (b *Buffer) Close() error {
	if b.closed {
		return nil
	}

	var errs []error
	if err := b.Erase(); err != nil {
		Zero(b.data)
		b.length = 0
		b.extent = 0
		errs = append(errs, err)
	}
	b.closed = true

	// The memory is released at process exit regardless, so unmap
	// failures are reported rather than retried.
	if err := unix.Munlock(b.data); err != nil {
		errs = append(errs, fmt.Errorf("secret: munlock: %w", err))
	}
	if err := unix.Munmap(b.data); err != nil {
		errs = append(errs, fmt.Errorf("secret: munmap: %w", err))
	}

	b.data = nil
	return errors.Join(errs...)
}

// extend records that slots [0, n) may hold content.
func (b *Buffer) extend(n int) {
	if n > b.extent {
		b.extent = n
	}
}

func (b *Buffer) terminate() {
	if b.kind == Text && b.length < b.capacity {
		b.data[b.length] = 0
	}
}

func (b *Buffer) mustBeOpen(operation string) {
	if b.closed {
		panic("secret: " + operation + " closed buffer")
	}
}
