// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package reassemble

import (
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/aibor/b64stream/internal/codec"
)

// IsWhitespace reports whether the byte is ignored in encoded text. Only
// space, carriage return and line feed are ignored.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n'
}

// Strip appends text without whitespace to dst and returns the extended
// buffer.
func Strip(dst, text []byte) []byte {
	for _, b := range text {
		if !IsWhitespace(b) {
			dst = append(dst, b)
		}
	}

	return dst
}

// Reassemble strips whitespace from text and appends the result to the
// symbols left over by the previous call.
//
// It returns the longest prefix with a length that is a multiple of
// [codec.EncodedBlockSize] and the 0 to 3 trailing symbols to pass to the next
// call.
func Reassemble(remainder, text []byte) ([]byte, []byte) {
	symbols := make([]byte, 0, len(remainder)+len(text))
	symbols = append(symbols, remainder...)
	symbols = Strip(symbols, text)

	cut := len(symbols) - len(symbols)%codec.EncodedBlockSize

	return symbols[:cut], slices.Clone(symbols[cut:])
}

// Finish checks the remainder once the text ends. Any remainder is an
// incomplete group that can not be validly padded anymore.
func Finish(remainder []byte) error {
	if len(remainder) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %d dangling symbols", codec.ErrTruncatedInput, len(remainder))
}

// ValidateText checks that the chunk can be part of a Base64 text. The offset
// is the position of the chunk in the input stream and is used for error
// reporting only.
//
// Only 7-bit ASCII is accepted. Every byte of a multibyte UTF-8 sequence is
// outside of that range, so a chunk boundary splitting such a sequence does
// not matter.
func ValidateText(chunk []byte, offset int64) error {
	for idx, b := range chunk {
		if b >= utf8.RuneSelf {
			return fmt.Errorf(
				"%w: byte 0x%02x at offset %d",
				codec.ErrInvalidText,
				b,
				offset+int64(idx),
			)
		}
	}

	return nil
}
