// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"io"
	"slices"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/linewrap"
	"go.uber.org/zap"
)

// Encode reads raw data from src and writes its Base64 encoding to dst.
//
// The output is wrapped into lines if [Config.LineLength] is set. The last
// line is not followed by a line ending. Nothing is written after a failure,
// but output written before is not taken back.
func Encode(ctx context.Context, dst io.Writer, src io.Reader, cfg Config) (Stats, error) {
	err := cfg.Validate()
	if err != nil {
		return Stats{}, err
	}

	cfg = cfg.withDefaults()

	Logger().Debug("Start encoding",
		zap.Stringer("variant", &cfg.Variant),
		zap.Int("line_length", cfg.LineLength),
		zap.Int("chunk_size", cfg.ChunkSize),
		zap.Int("queue_size", cfg.QueueSize),
	)

	out := &countingWriter{dst: dst}
	enc := &encoder{
		variant: cfg.Variant,
		wrapper: linewrap.NewWriter(out, cfg.LineLength, cfg.LineEnding),
	}

	stats, err := run(ctx, cfg, src, out, nil, enc)
	if err != nil {
		Logger().Debug("Encoding failed", statsField(stats), zap.Error(err))
		return stats, err
	}

	Logger().Debug("Encoding finished", statsField(stats))

	return stats, nil
}

// encoder is the transcoder of the encode direction.
type encoder struct {
	variant codec.Variant
	wrapper io.Writer

	// carry holds the 0 to 2 bytes that did not complete a block yet.
	carry []byte
	// symbols is reused for the encoded output of each chunk.
	symbols []byte
}

func (e *encoder) transcode(chunk []byte) error {
	data := chunk
	if len(e.carry) > 0 {
		data = append(e.carry, chunk...)
	}

	aligned := len(data) - len(data)%codec.RawBlockSize

	e.symbols = codec.EncodeBlock(e.variant, e.symbols[:0], data[:aligned])
	e.carry = slices.Clone(data[aligned:])

	_, err := e.wrapper.Write(e.symbols)
	if err != nil {
		return writeErr(err)
	}

	return nil
}

func (e *encoder) finish() error {
	if len(e.carry) == 0 {
		return nil
	}

	e.symbols = codec.EncodeBlock(e.variant, e.symbols[:0], e.carry)
	e.carry = nil

	_, err := e.wrapper.Write(e.symbols)
	if err != nil {
		return writeErr(err)
	}

	return nil
}
