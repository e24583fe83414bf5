// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"runtime"

	"github.com/awnumar/memguard"
)

// Zero overwrites data with zeros in a single pass. Use it for transient
// heap copies of secret material (read buffers, terminal input) once
// their content has been moved into a Buffer.
func Zero(data []byte) {
	memguard.WipeBytes(data)
	runtime.KeepAlive(data)
}
