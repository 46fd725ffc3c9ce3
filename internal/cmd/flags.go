// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"fmt"
	"io"
	"runtime/debug"

	"github.com/aibor/b64stream/internal/codec"
	"github.com/aibor/b64stream/internal/endpoint"
	"github.com/aibor/b64stream/internal/pipeline"
	"github.com/alecthomas/kong"
)

const (
	name = "b64stream"

	description = `Encode or decode Base64 as a stream.

Data is read from the input in chunks and transcoded concurrently, so inputs
of any size can be processed with bounded memory. Decoding ignores spaces and
line breaks anywhere in the input.

All flags can also be provided via environment variable ` + EnvVar + `:
	` + EnvVar + `="--url -l 76" b64stream -i data.bin

Exit codes are 0 on success, 1 on failure and 2 on invalid usage.`

	maxBufferLength = 1 << 26
)

type flags struct {
	Decode       bool          `short:"d" help:"Decode Base64 input instead of encoding."`
	URL          bool          `name:"url" help:"Use the URL-safe alphabet. Same as --variant=url."`
	Variant      codec.Variant `default:"standard" help:"Alphabet to use: standard, url."`
	LineLength   uint16        `short:"l" help:"Wrap encoded output after this many symbols. 0 disables wrapping."`
	BufferLength int           `short:"b" default:"${buffer_length}" help:"Maximum number of bytes read at once. 0 means ${buffer_length}."`
	QueueLength  int           `short:"q" help:"Number of chunks queued between reading and transcoding. 0 means the buffer length, at most 1048576."`
	Input        string        `short:"i" default:"-" placeholder:"PATH" help:"Input file. \"-\" reads from stdin."`
	Output       string        `short:"o" default:"-" placeholder:"PATH" help:"Output file. \"-\" writes to stdout."`

	Debug   bool             `help:"Enable debug output."`
	Version kong.VersionFlag `help:"Show version and exit."`
}

// Validate is called by kong once all flags are parsed.
func (f *flags) Validate() error {
	err := f.Variant.Validate()
	if err != nil {
		return fmt.Errorf("variant: %w", err)
	}

	err = checkRange("buffer length", f.BufferLength, maxBufferLength)
	if err != nil {
		return err
	}

	return checkRange("queue length", f.QueueLength, pipeline.MaxQueueSize)
}

func checkRange(what string, value, upper int) error {
	if value < 0 {
		return fmt.Errorf("%s: %d < 0: %w", what, value, pipeline.ErrValueOutOfRange)
	}

	if value > upper {
		return fmt.Errorf("%s: %d > %d: %w", what, value, upper, pipeline.ErrValueOutOfRange)
	}

	return nil
}

func (f *flags) variant() codec.Variant {
	if f.URL {
		return codec.VariantURL
	}

	return f.Variant
}

func (f *flags) direction() string {
	if f.Decode {
		return "decode"
	}

	return "encode"
}

func (f *flags) readsStdin() bool {
	return f.Input == "" || f.Input == endpoint.Stdio
}

func (f *flags) pipelineConfig() pipeline.Config {
	return pipeline.Config{
		Variant:    f.variant(),
		LineLength: int(f.LineLength),
		ChunkSize:  f.BufferLength,
		QueueSize:  f.QueueLength,
	}
}

// parseArgs parses the given arguments. Usage and errors are printed to the
// given writers. If help or version information was requested, [ErrHelp] is
// returned.
func parseArgs(args []string, stdout, stderr io.Writer) (*flags, error) {
	var (
		flags  flags
		exited bool
	)

	parser, err := kong.New(&flags,
		kong.Name(name),
		kong.Description(description),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) { exited = true }),
		kong.Vars{
			"version":       name + " " + version(),
			"buffer_length": fmt.Sprint(pipeline.DefaultChunkSize),
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create parser: %w", err)
	}

	_, err = parser.Parse(args)

	// Help and version hooks print their output and call the exit function.
	if exited {
		return nil, ErrHelp
	}

	if err != nil {
		parser.Errorf("%v", err)
		return nil, &ParseArgsError{msg: "flag parse", err: err}
	}

	return &flags, nil
}

func version() string {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok || buildInfo.Main.Version == "" {
		return "dev"
	}

	return buildInfo.Main.Version
}
