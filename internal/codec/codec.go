// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

const (
	// RawBlockSize is the number of raw bytes of a complete block.
	RawBlockSize = 3
	// EncodedBlockSize is the number of symbols of a complete block.
	EncodedBlockSize = 4
)

// EncodeBlock appends the encoded form of src to dst and returns the extended
// buffer.
//
// The length of src must be a multiple of [RawBlockSize], unless it is the
// last block of a stream. A short last block is padded with "=".
func EncodeBlock(variant Variant, dst, src []byte) []byte {
	return variant.encoding().AppendEncode(dst, src)
}

// DecodeBlock appends the decoded form of src to dst and returns the extended
// buffer.
//
// The length of src must be a multiple of [EncodedBlockSize], otherwise
// [ErrTruncatedInput] is returned. The offset is the position of src in the
// symbol stream and is used for error reporting only. An invalid symbol is
// reported as [SymbolError]. On error, dst is returned unchanged.
func DecodeBlock(variant Variant, dst, src []byte, offset int64) ([]byte, error) {
	if rest := len(src) % EncodedBlockSize; rest != 0 {
		return dst, fmt.Errorf("%w: %d dangling symbols", ErrTruncatedInput, rest)
	}

	decoded, err := variant.encoding().AppendDecode(dst, src)
	if err != nil {
		return dst, symbolError(err, src, offset)
	}

	return decoded, nil
}

// CheckSymbols returns a [SymbolError] for the first byte of src that is
// neither a symbol of the variant's alphabet nor the padding character. It
// does not check the length or the position of padding. The offset is the
// position of src in the symbol stream.
func CheckSymbols(variant Variant, src []byte, offset int64) error {
	alphabet := variant.alphabet()

	for idx, b := range src {
		if rune(b) == base64.StdPadding || strings.IndexByte(alphabet, b) >= 0 {
			continue
		}

		return &SymbolError{
			Offset: offset + int64(idx),
			Symbol: b,
		}
	}

	return nil
}

func symbolError(err error, src []byte, offset int64) error {
	var corruptErr base64.CorruptInputError
	if !errors.As(err, &corruptErr) {
		return fmt.Errorf("%w: %w", ErrInvalidSymbol, err)
	}

	idx := int64(corruptErr)

	// The decoder reports the end of the input if padding is incomplete.
	if idx >= int64(len(src)) {
		return fmt.Errorf("%w: incomplete padding", ErrTruncatedInput)
	}

	return &SymbolError{
		Offset: offset + idx,
		Symbol: src[idx],
	}
}
