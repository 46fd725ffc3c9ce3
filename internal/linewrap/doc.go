// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package linewrap breaks encoded output into lines of a fixed number of
// symbols.
//
// Line endings separate lines, they do not terminate them: the last line of
// an output never has a line ending, even if it is complete. A line ending is
// only written once at least one more symbol follows.
package linewrap
