// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for scrub packages.
//
// [RequireErrorIs] checks an error chain against a sentinel.
// [RequirePanics] runs a function and fails unless it panics.
// [RequireAllZero] and [RequireUnchanged] inspect raw memory after an
// erase or a rejected erase.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since a broken precondition makes the rest of the test meaningless.
//
// This package has no scrub-internal dependencies.
package testutil
