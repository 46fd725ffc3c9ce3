// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"io"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/reassemble"
	"go.uber.org/zap"
)

// Decode reads Base64 text from src and writes the decoded data to dst.
//
// Space, carriage return and line feed are ignored anywhere in the input. Any
// other byte outside of the alphabet fails the run, as does input that ends
// with an incomplete group. Data decoded before a failure has already been
// written to dst.
func Decode(ctx context.Context, dst io.Writer, src io.Reader, cfg Config) (Stats, error) {
	err := cfg.Validate()
	if err != nil {
		return Stats{}, err
	}

	cfg = cfg.withDefaults()

	Logger().Debug("Start decoding",
		zap.Stringer("variant", &cfg.Variant),
		zap.Int("chunk_size", cfg.ChunkSize),
		zap.Int("queue_size", cfg.QueueSize),
	)

	out := &countingWriter{dst: dst}
	dec := &decoder{
		variant: cfg.Variant,
		dst:     out,
	}

	stats, err := run(ctx, cfg, src, out, reassemble.ValidateText, dec)
	if err != nil {
		Logger().Debug("Decoding failed", statsField(stats), zap.Error(err))
		return stats, err
	}

	Logger().Debug("Decoding finished", statsField(stats))

	return stats, nil
}

// decoder is the transcoder of the decode direction.
type decoder struct {
	variant codec.Variant
	dst     io.Writer

	// remainder holds the 0 to 3 symbols that did not complete a group yet.
	remainder []byte
	// consumed is the number of symbols decoded so far.
	consumed int64
	// decoded is reused for the decoded output of each chunk.
	decoded []byte
	// padded is set once a padded group has been decoded. No symbols may
	// follow it.
	padded bool
}

func (d *decoder) transcode(chunk []byte) error {
	var (
		aligned []byte
		err     error
	)

	aligned, d.remainder = reassemble.Reassemble(d.remainder, chunk)
	if len(aligned) == 0 {
		return nil
	}

	if d.padded {
		return &codec.SymbolError{Offset: d.consumed, Symbol: aligned[0]}
	}

	d.decoded, err = codec.DecodeBlock(d.variant, d.decoded[:0], aligned, d.consumed)
	if err != nil {
		return err //nolint:wrapcheck
	}

	d.consumed += int64(len(aligned))
	d.padded = aligned[len(aligned)-1] == '='

	_, err = d.dst.Write(d.decoded)
	if err != nil {
		return writeErr(err)
	}

	return nil
}

func (d *decoder) finish() error {
	// Invalid symbols take precedence over the truncation.
	err := codec.CheckSymbols(d.variant, d.remainder, d.consumed)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return reassemble.Finish(d.remainder) //nolint:wrapcheck
}
