// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package reassemble prepares Base64 text for block wise decoding. It strips
// whitespace and keeps symbols that do not complete a group for the next
// chunk of text.
package reassemble
