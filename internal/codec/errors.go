// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is returned if reading from the input or writing to the output
	// fails.
	ErrIO = errors.New("i/o failure")

	// ErrEncoding is the parent of all errors caused by malformed input of
	// the decode direction.
	ErrEncoding = errors.New("invalid encoding")

	// ErrInvalidText is returned if the input of the decode direction
	// contains bytes that can not be part of a Base64 text.
	ErrInvalidText = fmt.Errorf("%w: input is not text", ErrEncoding)

	// ErrInvalidSymbol is returned if a symbol outside of the active alphabet
	// is found.
	ErrInvalidSymbol = fmt.Errorf("%w: symbol outside of alphabet", ErrEncoding)

	// ErrTruncatedInput is returned if the encoded input ends with a group
	// that is neither complete nor validly padded.
	ErrTruncatedInput = errors.New("truncated input")

	// ErrVariantInvalid is returned for unknown alphabet variants.
	ErrVariantInvalid = errors.New("unknown alphabet variant")
)

// SymbolError describes an invalid symbol found while decoding.
type SymbolError struct {
	// Offset of the symbol in the whitespace stripped symbol stream.
	Offset int64
	Symbol byte
}

// Error implements the [error] interface.
func (e *SymbolError) Error() string {
	return fmt.Sprintf("%v: %q at offset %d", ErrInvalidSymbol, e.Symbol, e.Offset)
}

// Is implements the [errors.Is] interface.
func (*SymbolError) Is(other error) bool {
	_, ok := other.(*SymbolError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (*SymbolError) Unwrap() error {
	return ErrInvalidSymbol
}
