// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"testing"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/linewrap"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		expectedErr error
	}{
		{
			name: "zero value",
		},
		{
			name: "complete",
			cfg: Config{
				Variant:    codec.VariantURL,
				LineLength: 76,
				ChunkSize:  1,
				QueueSize:  1,
				LineEnding: []byte("\r\n"),
			},
		},
		{
			name:        "unknown variant",
			cfg:         Config{Variant: "base32"},
			expectedErr: codec.ErrVariantInvalid,
		},
		{
			name:        "negative line length",
			cfg:         Config{LineLength: -1},
			expectedErr: ErrValueOutOfRange,
		},
		{
			name:        "negative chunk size",
			cfg:         Config{ChunkSize: -4},
			expectedErr: ErrValueOutOfRange,
		},
		{
			name:        "queue size too large",
			cfg:         Config{QueueSize: MaxQueueSize + 1},
			expectedErr: ErrValueOutOfRange,
		},
		{
			name:        "negative queue size",
			cfg:         Config{QueueSize: -1},
			expectedErr: ErrValueOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestConfigWithDefaults(t *testing.T) {
	t.Run("zero value", func(t *testing.T) {
		cfg := Config{}.withDefaults()

		assert.Equal(t, DefaultChunkSize, cfg.ChunkSize)
		assert.Equal(t, DefaultChunkSize, cfg.QueueSize)
		assert.Equal(t, linewrap.PlatformEnding, cfg.LineEnding)
	})

	t.Run("queue follows chunk size", func(t *testing.T) {
		cfg := Config{ChunkSize: 64}.withDefaults()

		assert.Equal(t, 64, cfg.ChunkSize)
		assert.Equal(t, 64, cfg.QueueSize)
	})

	t.Run("queue from large chunk size is clamped", func(t *testing.T) {
		cfg := Config{ChunkSize: 1 << 26}.withDefaults()

		assert.Equal(t, 1<<26, cfg.ChunkSize)
		assert.Equal(t, MaxQueueSize, cfg.QueueSize)
	})

	t.Run("explicit values", func(t *testing.T) {
		cfg := Config{
			ChunkSize:  3,
			QueueSize:  7,
			LineEnding: []byte("\n"),
		}.withDefaults()

		assert.Equal(t, 3, cfg.ChunkSize)
		assert.Equal(t, 7, cfg.QueueSize)
		assert.Equal(t, []byte("\n"), cfg.LineEnding)
	})
}
