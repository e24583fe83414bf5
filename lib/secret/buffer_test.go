// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"testing"

	"github.com/bureau-foundation/scrub/lib/testutil"
)

// requireInvariants checks the length/capacity and terminator invariants.
func requireInvariants(t *testing.T, buffer *Buffer) {
	t.Helper()
	if buffer.Len() < 0 || buffer.Len() > buffer.Cap() {
		t.Fatalf("length %d outside [0, %d]", buffer.Len(), buffer.Cap())
	}
	if buffer.Kind() == Text && buffer.Len() < buffer.Cap() && buffer.data[buffer.Len()] != 0 {
		t.Fatalf("missing terminator at %d: got 0x%02x", buffer.Len(), buffer.data[buffer.Len()])
	}
}

func TestNew_ValidCapacity(t *testing.T) {
	buffer, err := New(64)
	if err != nil {
		t.Fatalf("New(64) failed: %v", err)
	}
	defer buffer.Close()

	if buffer.Len() != 0 {
		t.Errorf("expected length 0, got %d", buffer.Len())
	}
	if buffer.Cap() != 64 {
		t.Errorf("expected capacity 64, got %d", buffer.Cap())
	}
	if buffer.Kind() != Text {
		t.Errorf("expected text kind, got %v", buffer.Kind())
	}

	// Memory should be zero-initialized by mmap.
	testutil.RequireAllZero(t, buffer.data, "fresh buffer")
	requireInvariants(t, buffer)
}

func TestNew_ZeroCapacity(t *testing.T) {
	_, err := New(0)
	testutil.RequireErrorIs(t, err, ErrAllocation, "New(0)")
}

func TestNew_NegativeCapacity(t *testing.T) {
	_, err := New(-1)
	testutil.RequireErrorIs(t, err, ErrCapacity, "New(-1)")
}

func TestNewBinary(t *testing.T) {
	buffer, err := NewBinary(8)
	if err != nil {
		t.Fatalf("NewBinary failed: %v", err)
	}
	defer buffer.Close()

	if buffer.Kind() != Binary {
		t.Errorf("expected binary kind, got %v", buffer.Kind())
	}
}

func TestNewFromString_Capacity(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		capacity int
		wantErr  bool
	}{
		{name: "capacity below length", content: "secret", capacity: 5, wantErr: true},
		{name: "capacity equal to length", content: "secret", capacity: 6, wantErr: true},
		{name: "exactly one spare slot", content: "secret", capacity: 7},
		{name: "room to spare", content: "secret", capacity: 32},
		{name: "empty content", content: "", capacity: 1},
		{name: "empty content zero capacity", content: "", capacity: 0, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buffer, err := NewFromString(test.content, test.capacity)
			if test.wantErr {
				testutil.RequireErrorIs(t, err, ErrCapacity)
				return
			}
			if err != nil {
				t.Fatalf("NewFromString(%q, %d) failed: %v", test.content, test.capacity, err)
			}
			defer buffer.Close()

			if buffer.Len() != len(test.content) {
				t.Errorf("expected length %d, got %d", len(test.content), buffer.Len())
			}
			if buffer.String() != test.content {
				t.Errorf("expected %q, got %q", test.content, buffer.String())
			}
			requireInvariants(t, buffer)
		})
	}
}

func TestNewFromBytes_ZerosSource(t *testing.T) {
	source := []byte("super-secret-password")
	originalContent := string(source)

	buffer, err := NewFromBytes(source, len(source)+1)
	if err != nil {
		t.Fatalf("NewFromBytes failed: %v", err)
	}
	defer buffer.Close()

	if got := buffer.String(); got != originalContent {
		t.Errorf("expected %q, got %q", originalContent, got)
	}

	testutil.RequireAllZero(t, source, "caller's source after NewFromBytes")
}

func TestNewFromBytes_TooLongLeavesSource(t *testing.T) {
	source := []byte("secret")

	_, err := NewFromBytes(source, 5)
	testutil.RequireErrorIs(t, err, ErrCapacity)
	testutil.RequireUnchanged(t, source, []byte("secret"), "source after rejected NewFromBytes")
}

func TestBuffer_BytesIsClippedView(t *testing.T) {
	buffer, err := NewFromString("abc", 8)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	defer buffer.Close()

	view := buffer.Bytes()
	if cap(view) != 3 {
		t.Fatalf("expected view capacity 3, got %d", cap(view))
	}

	// In-place writes reach the buffer.
	view[0] = 'x'
	if buffer.String() != "xbc" {
		t.Errorf("expected in-place write to be visible, got %q", buffer.String())
	}

	// Appending to the view must not overwrite the terminator.
	_ = append(view, 'z')
	requireInvariants(t, buffer)
}

func TestBuffer_SetLength(t *testing.T) {
	buffer, err := NewFromString("password", 16)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	defer buffer.Close()

	if err := buffer.SetLength(4); err != nil {
		t.Fatalf("SetLength(4) failed: %v", err)
	}
	if buffer.String() != "pass" {
		t.Errorf("expected %q, got %q", "pass", buffer.String())
	}
	requireInvariants(t, buffer)

	// Extending re-exposes the slots after the terminator.
	if err := buffer.SetLength(8); err != nil {
		t.Fatalf("SetLength(8) failed: %v", err)
	}
	if buffer.String() != "pass\x00ord" {
		t.Errorf("expected %q, got %q", "pass\x00ord", buffer.String())
	}

	if err := buffer.SetLength(16); err != nil {
		t.Fatalf("SetLength(capacity) failed: %v", err)
	}
	requireInvariants(t, buffer)

	for _, length := range []int{-1, 17} {
		err := buffer.SetLength(length)
		testutil.RequireErrorIs(t, err, ErrRange, "SetLength(%d)", length)
		if buffer.Len() != 16 {
			t.Errorf("rejected SetLength(%d) changed length to %d", length, buffer.Len())
		}
	}
}

func TestBuffer_Append(t *testing.T) {
	buffer, err := New(6)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer buffer.Close()

	if err := buffer.Append([]byte("ab")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := buffer.Append([]byte("cde")); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if buffer.String() != "abcde" {
		t.Errorf("expected %q, got %q", "abcde", buffer.String())
	}
	requireInvariants(t, buffer)

	// The last slot is reserved for the terminator.
	err = buffer.Append([]byte("f"))
	testutil.RequireErrorIs(t, err, ErrCapacity, "Append into terminator slot")
	if buffer.String() != "abcde" {
		t.Errorf("rejected Append changed content to %q", buffer.String())
	}
}

func TestBuffer_AppendBinaryUsesEverySlot(t *testing.T) {
	buffer, err := NewBinary(4)
	if err != nil {
		t.Fatalf("NewBinary failed: %v", err)
	}
	defer buffer.Close()

	if err := buffer.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("Append of full capacity failed: %v", err)
	}
	if buffer.Len() != 4 {
		t.Errorf("expected length 4, got %d", buffer.Len())
	}
	testutil.RequireErrorIs(t, buffer.Append([]byte{5}), ErrCapacity)
}

func TestBuffer_TrimSpace(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "leading and trailing", content: " \tpw\r\n", want: "pw"},
		{name: "inner whitespace kept", content: "  p w  ", want: "p w"},
		{name: "nothing to trim", content: "pw", want: "pw"},
		{name: "only whitespace", content: " \n ", want: ""},
		{name: "empty", content: "", want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			buffer, err := NewFromString(test.content, 16)
			if err != nil {
				t.Fatalf("NewFromString failed: %v", err)
			}
			defer buffer.Close()

			if err := buffer.TrimSpace(); err != nil {
				t.Fatalf("TrimSpace failed: %v", err)
			}
			if buffer.String() != test.want {
				t.Errorf("expected %q, got %q", test.want, buffer.String())
			}
			requireInvariants(t, buffer)
			testutil.RequireAllZero(t, buffer.data[buffer.Len():], "slots past the trimmed content")
		})
	}
}

func TestBuffer_Close_ReleasesMemory(t *testing.T) {
	buffer, err := NewFromString("this should be erased", 32)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}

	if err := buffer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if buffer.data != nil {
		t.Error("expected data to be nil after Close")
	}
	if !buffer.Closed() {
		t.Error("expected Closed() after Close")
	}
	if buffer.Len() != 0 {
		t.Errorf("expected length 0 after Close, got %d", buffer.Len())
	}
}

func TestBuffer_Close_Idempotent(t *testing.T) {
	buffer, err := New(16)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if err := buffer.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := buffer.Close(); err != nil {
		t.Fatalf("second Close failed: %v", err)
	}
}

func TestBuffer_AccessAfterClose(t *testing.T) {
	buffer, err := NewFromString("gone", 8)
	if err != nil {
		t.Fatalf("NewFromString failed: %v", err)
	}
	buffer.Close()

	testutil.RequirePanics(t, func() { buffer.Bytes() }, "Bytes after Close")
	testutil.RequirePanics(t, func() { _ = buffer.String() }, "String after Close")
	testutil.RequireErrorIs(t, buffer.SetLength(0), ErrClosed, "SetLength after Close")
	testutil.RequireErrorIs(t, buffer.Append([]byte("x")), ErrClosed, "Append after Close")
	testutil.RequireErrorIs(t, buffer.Erase(), ErrClosed, "Erase after Close")
	testutil.RequireErrorIs(t, buffer.TrimSpace(), ErrClosed, "TrimSpace after Close")
}

func TestKind_String(t *testing.T) {
	if Text.String() != "text" || Binary.String() != "binary" {
		t.Errorf("unexpected kind names %q, %q", Text, Binary)
	}
	if Kind(9).String() != "kind(9)" {
		t.Errorf("unexpected name for unknown kind: %q", Kind(9))
	}
}
