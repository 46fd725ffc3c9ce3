// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package codec provides the block level Base64 transform used by the
// streaming pipelines. It maps aligned groups of 3 raw bytes to 4 symbols and
// back, using the RFC 4648 standard or URL-safe alphabet.
//
// The functions do not keep any state. Callers are responsible to only pass
// aligned input, except for the very last block of a stream.
package codec
