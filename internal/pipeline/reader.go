// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aibor/b64stream/internal/codec"
)

// maxEmptyReads is the number of consecutive reads returning neither data nor
// an error after which the source is considered broken.
const maxEmptyReads = 100

// chunkValidator checks a chunk before it is passed to the transcoder. The
// offset is the position of the chunk in the input stream.
type chunkValidator func(chunk []byte, offset int64) error

// chunkReader is the reader stage of a pipeline.
type chunkReader struct {
	src       io.Reader
	chunkSize int
	validate  chunkValidator

	chunks    int
	bytesRead int64
}

// run reads chunks from the source and sends them to out until the source is
// exhausted.
//
// Each chunk is a newly allocated slice. Ownership passes to the receiver
// with the send. The channel is closed only if the whole input has been read,
// so the receiver can tell a complete stream from an aborted one.
func (r *chunkReader) run(ctx context.Context, out chan<- []byte) error {
	emptyReads := 0

	for {
		err := ctx.Err()
		if err != nil {
			return err //nolint:wrapcheck
		}

		buf := make([]byte, r.chunkSize)

		n, readErr := r.src.Read(buf)
		if n > 0 {
			emptyReads = 0

			err := r.send(ctx, out, buf[:n:n])
			if err != nil {
				return err
			}
		} else if readErr == nil {
			emptyReads++
			if emptyReads >= maxEmptyReads {
				return fmt.Errorf("%w: read: %w", codec.ErrIO, io.ErrNoProgress)
			}
		}

		if errors.Is(readErr, io.EOF) {
			close(out)
			return nil
		}

		if readErr != nil {
			return fmt.Errorf("%w: read: %w", codec.ErrIO, readErr)
		}
	}
}

func (r *chunkReader) send(ctx context.Context, out chan<- []byte, chunk []byte) error {
	if r.validate != nil {
		err := r.validate(chunk, r.bytesRead)
		if err != nil {
			return err
		}
	}

	select {
	case out <- chunk:
	case <-ctx.Done():
		return ctx.Err() //nolint:wrapcheck
	}

	r.chunks++
	r.bytesRead += int64(len(chunk))

	return nil
}
