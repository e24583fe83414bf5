// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"bytes"
	"errors"
	"fmt"
)

// T is the subset of testing.TB the helpers need.
type T interface {
	Helper()
	Fatalf(format string, args ...any)
}

// RequireErrorIs fails the test unless errors.Is(err, target).
//
//	testutil.RequireErrorIs(t, err, secret.ErrCapacity, "fromInitial with short capacity")
func RequireErrorIs(t T, err, target error, msgAndArgs ...any) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected error matching %v, got %v: %s", target, err, formatMessage(msgAndArgs))
	}
}

// RequirePanics fails the test unless function panics.
//
//	testutil.RequirePanics(t, func() { buffer.Bytes() }, "Bytes after Close")
func RequirePanics(t T, function func(), msgAndArgs ...any) {
	t.Helper()
	panicked := func() (recovered bool) {
		defer func() {
			if recover() != nil {
				recovered = true
			}
		}()
		function()
		return false
	}()
	if !panicked {
		t.Fatalf("expected panic: %s", formatMessage(msgAndArgs))
	}
}

// RequireAllZero fails the test if any byte of data is non-zero.
func RequireAllZero(t T, data []byte, msgAndArgs ...any) {
	t.Helper()
	for index, value := range data {
		if value != 0 {
			t.Fatalf("byte %d of %d is 0x%02x, want 0: %s", index, len(data), value, formatMessage(msgAndArgs))
		}
	}
}

// RequireUnchanged fails the test unless data still equals want.
func RequireUnchanged(t T, data, want []byte, msgAndArgs ...any) {
	t.Helper()
	if !bytes.Equal(data, want) {
		t.Fatalf("memory changed: got %q, want %q: %s", data, want, formatMessage(msgAndArgs))
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
