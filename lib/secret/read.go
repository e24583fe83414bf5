// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadFromPath reads a secret from a file path, or one line from stdin if
// path is "-". Leading and trailing whitespace is trimmed and the result
// is moved into a Text buffer with exactly one spare slot for the
// terminator. The heap copy read from the source is zeroed. Returns an
// error if nothing is left after trimming.
func ReadFromPath(path string) (*Buffer, error) {
	var data []byte

	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = scanner.Bytes()
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret is empty")
	}

	buffer, err := NewFromBytes(trimmed, len(trimmed)+1)
	// NewFromBytes zeroed trimmed; this covers the whitespace around it.
	Zero(data)
	if err != nil {
		return nil, err
	}
	return buffer, nil
}

// NewFromReader reads at most limit bytes from reader directly into a
// Text buffer, without a heap intermediary. If reader holds more than
// limit bytes, the partial content is erased and the call fails with
// ErrCapacity.
func NewFromReader(reader io.Reader, limit int) (*Buffer, error) {
	if limit < 0 {
		return nil, fmt.Errorf("secret: negative read limit %d: %w", limit, ErrCapacity)
	}

	// One slot beyond the limit both detects oversize input and, when
	// the input fits, holds the terminator.
	buffer, err := New(limit + 1)
	if err != nil {
		return nil, err
	}

	total := 0
	for total < len(buffer.data) {
		count, err := reader.Read(buffer.data[total:])
		total += count
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			buffer.length = total
			buffer.extend(total)
			return nil, errors.Join(fmt.Errorf("secret: reading: %w", err), buffer.Close())
		}
	}

	if total > limit {
		buffer.length = limit
		buffer.extend(total)
		return nil, errors.Join(
			fmt.Errorf("secret: input exceeds %d bytes: %w", limit, ErrCapacity),
			buffer.Close(),
		)
	}

	buffer.length = total
	buffer.extend(total)
	buffer.terminate()
	return buffer, nil
}
