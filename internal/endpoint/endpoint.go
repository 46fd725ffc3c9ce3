// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package endpoint

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/aibor/b64stream/internal/codec"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Stdio is the path that selects the standard streams.
const Stdio = "-"

// OpenInput opens the input at path. If path is [Stdio] or empty, stdin is
// returned. Closing the returned reader never closes stdin.
func OpenInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if isStdio(path) {
		Logger().Debug("Reading from stdin")

		return io.NopCloser(stdin), nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open input: %w", codec.ErrIO, err)
	}

	Logger().Debug("Reading from file", zap.String("path", path))

	adviseSequential(file)

	return file, nil
}

// OpenOutput opens the output at path. If path is [Stdio] or empty, stdout is
// used. An existing file is truncated.
//
// The returned writer is buffered. Close flushes the buffer and closes the
// file. Stdout is never closed.
func OpenOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if isStdio(path) {
		Logger().Debug("Writing to stdout")

		return &output{Writer: bufio.NewWriter(stdout)}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open output: %w", codec.ErrIO, err)
	}

	Logger().Debug("Writing to file", zap.String("path", path))

	return &output{Writer: bufio.NewWriter(file), file: file}, nil
}

func isStdio(path string) bool {
	return path == "" || path == Stdio
}

type output struct {
	*bufio.Writer
	file *os.File
}

// Close flushes the buffer and closes the underlying file, if any.
func (o *output) Close() error {
	err := o.Flush()
	if err != nil {
		err = fmt.Errorf("%w: flush: %w", codec.ErrIO, err)
	}

	if o.file != nil {
		closeErr := o.file.Close()
		if closeErr != nil {
			closeErr = fmt.Errorf("%w: close output: %w", codec.ErrIO, closeErr)
		}

		err = multierr.Append(err, closeErr)
	}

	return err
}

var _ io.WriteCloser = &output{}
