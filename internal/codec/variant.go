// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package codec

import (
	"encoding/base64"
	"slices"
)

const (
	// VariantStandard is the standard alphabet using "+" and "/" for the
	// symbols 62 and 63.
	VariantStandard Variant = "standard"
	// VariantURL is the URL and file name safe alphabet using "-" and "_" for
	// the symbols 62 and 63.
	VariantURL Variant = "url"
)

// Variant selects the alphabet. Both variants use "=" for padding.
//
// The zero value behaves like [VariantStandard].
type Variant string

func (v *Variant) isKnown() bool {
	knownVariants := []Variant{
		VariantStandard,
		VariantURL,
	}

	return slices.Contains(knownVariants, *v)
}

// Validate returns [ErrVariantInvalid] if the variant is not known. The zero
// value is valid.
func (v Variant) Validate() error {
	if v == "" || v.isKnown() {
		return nil
	}

	return ErrVariantInvalid
}

// String implements [fmt.Stringer].
func (v *Variant) String() string {
	if *v == "" {
		return string(VariantStandard)
	}

	if !v.isKnown() {
		return ""
	}

	return string(*v)
}

// MarshalText implements [encoding.TextMarshaler].
func (v Variant) MarshalText() ([]byte, error) {
	s := v.String()
	if s == "" {
		return nil, ErrVariantInvalid
	}

	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (v *Variant) UnmarshalText(text []byte) error {
	variant := Variant(text)

	if !variant.isKnown() {
		return ErrVariantInvalid
	}

	*v = variant

	return nil
}

// encoding returns the strict, padded encoding for the variant.
//
// Strict mode rejects non-zero trailing bits in the final group, so only
// canonical encodings are accepted.
func (v Variant) encoding() *base64.Encoding {
	if v == VariantURL {
		return urlEncoding
	}

	return stdEncoding
}

// alphabet returns the 64 symbols of the variant, without the padding
// character.
func (v Variant) alphabet() string {
	if v == VariantURL {
		return urlAlphabet
	}

	return stdAlphabet
}

const (
	stdAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	urlAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"
)

var (
	stdEncoding = base64.NewEncoding(stdAlphabet).Strict() //nolint:gochecknoglobals
	urlEncoding = base64.NewEncoding(urlAlphabet).Strict() //nolint:gochecknoglobals
)
