// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package endpoint

import (
	"golang.org/x/term"
)

// fder is implemented by [os.File].
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether v is backed by a terminal.
func IsTerminal(v any) bool {
	file, ok := v.(fder)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}
