// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"testing"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected pipeline.Config
		decode   bool
		input    string
		output   string
	}{
		{
			name: "defaults",
			expected: pipeline.Config{
				Variant:   codec.VariantStandard,
				ChunkSize: pipeline.DefaultChunkSize,
			},
			input:  "-",
			output: "-",
		},
		{
			name: "short flags",
			args: []string{"-d", "-l", "76", "-b", "16", "-q", "2", "-i", "in", "-o", "out"},
			expected: pipeline.Config{
				Variant:    codec.VariantStandard,
				LineLength: 76,
				ChunkSize:  16,
				QueueSize:  2,
			},
			decode: true,
			input:  "in",
			output: "out",
		},
		{
			name: "long flags",
			args: []string{
				"--decode",
				"--variant=url",
				"--line-length=65535",
				"--buffer-length=0",
				"--queue-length=0",
				"--input=in",
				"--output=out",
			},
			expected: pipeline.Config{
				Variant:    codec.VariantURL,
				LineLength: 65535,
			},
			decode: true,
			input:  "in",
			output: "out",
		},
		{
			name: "url shorthand",
			args: []string{"--url"},
			expected: pipeline.Config{
				Variant:   codec.VariantURL,
				ChunkSize: pipeline.DefaultChunkSize,
			},
			input:  "-",
			output: "-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			flags, err := parseArgs(tt.args, &stdout, &stderr)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, flags.pipelineConfig())
			assert.Equal(t, tt.decode, flags.Decode)
			assert.Equal(t, tt.input, flags.Input)
			assert.Equal(t, tt.output, flags.Output)
			assert.Empty(t, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	for _, arg := range []string{"--help", "-h", "--version"} {
		t.Run(arg, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			_, err := parseArgs([]string{arg}, &stdout, &stderr)
			require.ErrorIs(t, err, ErrHelp)

			assert.NotEmpty(t, stdout.String())
			assert.Empty(t, stderr.String())
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expectedOutput string
	}{
		{
			name:           "unknown flag",
			args:           []string{"--unknown"},
			expectedOutput: "--unknown",
		},
		{
			name:           "positional argument",
			args:           []string{"file"},
			expectedOutput: "file",
		},
		{
			name:           "line length too large",
			args:           []string{"-l", "65536"},
			expectedOutput: "65536",
		},
		{
			name:           "negative buffer length",
			args:           []string{"--buffer-length=-1"},
			expectedOutput: pipeline.ErrValueOutOfRange.Error(),
		},
		{
			name:           "queue length too large",
			args:           []string{"-q", "1048577"},
			expectedOutput: pipeline.ErrValueOutOfRange.Error(),
		},
		{
			name:           "unknown variant",
			args:           []string{"--variant", "base32"},
			expectedOutput: codec.ErrVariantInvalid.Error(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			_, err := parseArgs(tt.args, &stdout, &stderr)
			require.ErrorIs(t, err, &ParseArgsError{})
			require.NotErrorIs(t, err, ErrHelp)

			assert.Contains(t, stderr.String(), "b64stream: error:")
			assert.Contains(t, stderr.String(), tt.expectedOutput)
		})
	}
}

func TestFlagsValidate(t *testing.T) {
	f := flags{BufferLength: maxBufferLength, QueueLength: pipeline.MaxQueueSize}
	require.NoError(t, f.Validate())

	f.BufferLength++
	require.ErrorIs(t, f.Validate(), pipeline.ErrValueOutOfRange)

	f.BufferLength = maxBufferLength
	f.QueueLength++
	require.ErrorIs(t, f.Validate(), pipeline.ErrValueOutOfRange)
}
