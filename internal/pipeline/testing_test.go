// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline_test

import (
	"io"
	"sync/atomic"

	"github.com/stretchr/testify/assert"
)

type errWriter struct{}

func (errWriter) Write(_ []byte) (int, error) {
	return 0, assert.AnError
}

// repeatReader endlessly returns the pattern and counts the reads.
type repeatReader struct {
	pattern []byte
	reads   atomic.Int64
}

func (r *repeatReader) Read(p []byte) (int, error) {
	r.reads.Add(1)

	n := 0
	for n < len(p) {
		n += copy(p[n:], r.pattern)
	}

	return n, nil
}

// blockingWriter blocks all writes until release is closed.
type blockingWriter struct {
	release chan struct{}
}

func (w *blockingWriter) Write(p []byte) (int, error) {
	<-w.release
	return len(p), nil
}

// testData returns size bytes covering all byte values.
func testData(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i*31 + i/256)
	}

	return data
}

// emptyReader returns neither data nor an error and counts the reads.
type emptyReader struct {
	reads int
}

func (r *emptyReader) Read(_ []byte) (int, error) {
	r.reads++
	return 0, nil
}

// stutterReader returns an empty read before every read of the underlying
// reader.
type stutterReader struct {
	src   io.Reader
	empty bool
}

func (r *stutterReader) Read(p []byte) (int, error) {
	r.empty = !r.empty
	if r.empty {
		return 0, nil
	}

	return r.src.Read(p)
}
