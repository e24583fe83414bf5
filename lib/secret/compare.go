// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

// Equal reports whether other holds exactly the buffer's content. Every
// one of the Len() slots is compared, with no early exit, and other must
// end at Len(): either len(other) == Len() or other[Len()] is a zero
// terminator. A closed buffer equals nothing.
func (b *Buffer) Equal(other []byte) bool {
	if b.closed {
		return false
	}
	return equalTerminated(b.data[:b.length], other)
}

// EqualString is Equal for a string candidate, without converting it to
// a byte slice on the heap.
func (b *Buffer) EqualString(other string) bool {
	if b.closed {
		return false
	}
	return equalTerminated(b.data[:b.length], other)
}

func equalTerminated[T []byte | string](content []byte, other T) bool {
	length := len(content)
	if len(other) < length {
		return false
	}
	if len(other) > length && other[length] != 0 {
		return false
	}

	var difference byte
	for index := 0; index < length; index++ {
		difference |= content[index] ^ other[index]
	}
	return difference == 0
}
