// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package linewrap

import (
	"io"

	"github.com/emersion/go-textwrapper"
)

// NewWriter returns a writer that writes lines of lineLength symbols separated
// by ending to dst. If ending is nil, [PlatformEnding] is used.
//
// The writer keeps only the position in the current line. Symbols are written
// through right away, so there is nothing to flush at the end of a stream.
//
// If lineLength is not positive, wrapping is disabled and dst is returned as
// is.
func NewWriter(dst io.Writer, lineLength int, ending []byte) io.Writer {
	if lineLength <= 0 {
		return dst
	}

	if ending == nil {
		ending = PlatformEnding
	}

	return textwrapper.New(dst, string(ending), lineLength)
}
