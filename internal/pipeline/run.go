// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/aibor/b64stream/internal/codec"
	"golang.org/x/sync/errgroup"
)

// transcoder is the transcoder stage of a pipeline. It consumes chunks until
// the channel is closed and writes its output to dst.
type transcoder interface {
	// transcode processes a single chunk.
	transcode(chunk []byte) error
	// finish processes the carried over data once the input is exhausted.
	finish() error
}

// receive feeds the chunks to the transcoder. It returns once the channel is
// closed or the context is cancelled.
func receive(ctx context.Context, chunks <-chan []byte, t transcoder) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err() //nolint:wrapcheck
		case chunk, ok := <-chunks:
			if !ok {
				return t.finish()
			}

			err := t.transcode(chunk)
			if err != nil {
				return err
			}
		}
	}
}

// run runs the reader and the transcoder stage concurrently and waits for
// both to finish.
//
// The first error of any stage cancels the other stage and is returned. A
// reader blocked in [io.Reader.Read] can not be interrupted, so run returns
// only once the pending read returned.
func run(
	ctx context.Context,
	cfg Config,
	src io.Reader,
	dst *countingWriter,
	validate chunkValidator,
	trans transcoder,
) (Stats, error) {
	reader := &chunkReader{
		src:       src,
		chunkSize: cfg.ChunkSize,
		validate:  validate,
	}

	chunks := make(chan []byte, cfg.QueueSize)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		err := reader.run(groupCtx, chunks)
		return wrapStageError(StageReader, err)
	})

	group.Go(func() error {
		err := receive(groupCtx, chunks, trans)
		return wrapStageError(StageTranscoder, err)
	})

	err := group.Wait()

	stats := Stats{
		Chunks:       reader.chunks,
		BytesRead:    reader.bytesRead,
		BytesWritten: dst.written,
	}

	return stats, err //nolint:wrapcheck
}

func writeErr(err error) error {
	return fmt.Errorf("%w: write: %w", codec.ErrIO, err)
}
