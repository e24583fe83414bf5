// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Scrub is the command-line front end to lib/secret and lib/random.
// verify compares a stored secret with a candidate read from a file,
// a pipe, or a no-echo terminal prompt, and erases both before exiting.
// erase loads a secret and scrubs it (a lifecycle check for a host's
// mlock limits). rand draws integers from the high-entropy source and
// text produces printable filler.
//
// A failed erase is an error, never a warning: verify reports it instead
// of a match result.
package main
