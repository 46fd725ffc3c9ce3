// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !windows

package linewrap

// PlatformEnding is the line ending used if none is given explicitly.
var PlatformEnding = []byte{'\n'} //nolint:gochecknoglobals
