// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Stats are the counters of a pipeline run. They are also returned if the run
// failed and then cover what was processed until the failure.
type Stats struct {
	// Chunks is the number of chunks passed from reader to transcoder.
	Chunks int
	// BytesRead is the number of bytes read from the input.
	BytesRead int64
	// BytesWritten is the number of bytes written to the output.
	BytesWritten int64
}

// MarshalLogObject implements [zapcore.ObjectMarshaler].
func (s Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("chunks", s.Chunks)
	enc.AddInt64("bytes_read", s.BytesRead)
	enc.AddInt64("bytes_written", s.BytesWritten)

	return nil
}

var _ zapcore.ObjectMarshaler = Stats{}

// statsField returns the stats as a single log field.
func statsField(stats Stats) zap.Field {
	return zap.Object("stats", stats)
}

// countingWriter counts the bytes written to the underlying writer.
type countingWriter struct {
	dst     io.Writer
	written int64
}

func (w *countingWriter) Write(p []byte) (int, error) {
	n, err := w.dst.Write(p)
	w.written += int64(n)

	return n, err //nolint:wrapcheck
}
