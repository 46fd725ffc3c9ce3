// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"errors"
	"fmt"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/linewrap"
)

const (
	// DefaultChunkSize is the chunk size used if none is configured.
	DefaultChunkSize = 4096

	// MaxQueueSize is the upper limit of the queue size. The queue's buffer
	// is allocated up front, so a queue size derived from a large chunk size
	// is clamped to it.
	MaxQueueSize = 1 << 20
)

// ErrValueOutOfRange is returned if a configuration value is outside of its
// valid range.
var ErrValueOutOfRange = errors.New("value is outside of range")

// Config is the configuration of a single pipeline run.
type Config struct {
	// Variant is the alphabet to use. The zero value is the standard
	// alphabet.
	Variant codec.Variant
	// LineLength is the number of symbols per output line of the encode
	// direction. Zero disables wrapping. Ignored by the decode direction.
	LineLength int
	// ChunkSize is the maximum number of bytes read at once. Zero means
	// [DefaultChunkSize].
	ChunkSize int
	// QueueSize is the number of chunks that can be queued between the
	// stages. Zero means the same as ChunkSize, but at most [MaxQueueSize].
	QueueSize int
	// LineEnding separates lines of wrapped output. Nil means
	// [linewrap.PlatformEnding].
	LineEnding []byte
}

// Validate checks the configuration for invalid values.
func (c Config) Validate() error {
	err := c.Variant.Validate()
	if err != nil {
		return fmt.Errorf("variant %q: %w", c.Variant, err)
	}

	if c.LineLength < 0 {
		return fmt.Errorf("line length %d: %w", c.LineLength, ErrValueOutOfRange)
	}

	if c.ChunkSize < 0 {
		return fmt.Errorf("chunk size %d: %w", c.ChunkSize, ErrValueOutOfRange)
	}

	if c.QueueSize < 0 || c.QueueSize > MaxQueueSize {
		return fmt.Errorf("queue size %d: %w", c.QueueSize, ErrValueOutOfRange)
	}

	return nil
}

func (c Config) withDefaults() Config {
	if c.ChunkSize == 0 {
		c.ChunkSize = DefaultChunkSize
	}

	if c.QueueSize == 0 {
		c.QueueSize = min(c.ChunkSize, MaxQueueSize)
	}

	if c.LineEnding == nil {
		c.LineEnding = linewrap.PlatformEnding
	}

	return c
}
