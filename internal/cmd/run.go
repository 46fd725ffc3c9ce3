// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aibor/b64stream/internal/endpoint"
	"github.com/aibor/b64stream/internal/pipeline"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	exitCodeOK    = 0
	exitCodeError = 1
	exitCodeUsage = 2
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

type transcodeFunc func(context.Context, io.Writer, io.Reader, pipeline.Config) (pipeline.Stats, error)

func run(ctx context.Context, flags *flags, cfg IO, logger *zap.Logger) (err error) {
	input, err := endpoint.OpenInput(flags.Input, cfg.Stdin)
	if err != nil {
		return err //nolint:wrapcheck
	}

	defer func() { _ = input.Close() }()

	if flags.readsStdin() && endpoint.IsTerminal(cfg.Stdin) {
		logger.Info("Reading from terminal, end input with Ctrl-D")
	}

	output, err := endpoint.OpenOutput(flags.Output, cfg.Stdout)
	if err != nil {
		return err //nolint:wrapcheck
	}

	// Data transcoded before a failure is still written.
	defer func() {
		err = multierr.Append(err, output.Close())
	}()

	var transcode transcodeFunc = pipeline.Encode
	if flags.Decode {
		transcode = pipeline.Decode
	}

	stats, err := transcode(ctx, output, input, flags.pipelineConfig())
	if err != nil {
		return fmt.Errorf("%s: %w", flags.direction(), err)
	}

	logger.Debug("Done",
		zap.String("direction", flags.direction()),
		zap.Object("stats", stats),
	)

	return nil
}

func handleParseArgsError(err error, stderr io.Writer) int {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return exitCodeOK
	}

	// Parse errors are already printed by the parser.
	if !errors.Is(err, &ParseArgsError{}) {
		fmt.Fprintf(stderr, "%s: error: %v\n", name, err)
	}

	return exitCodeUsage
}

func handleRunError(err error, logger *zap.Logger) int {
	if errors.Is(err, context.Canceled) {
		logger.Warn("Interrupted")
		return exitCodeError
	}

	var stageErr *pipeline.StageError
	if errors.As(err, &stageErr) {
		logger.Error(err.Error(), zap.String("stage", stageErr.Stage))
		return exitCodeError
	}

	logger.Error(err.Error())

	return exitCodeError
}

// Run is the main entry point for the CLI command.
func Run(ctx context.Context, args []string, cfg IO) int {
	flags, err := parseArgs(args, cfg.Stdout, cfg.Stderr)
	if err != nil {
		return handleParseArgsError(err, cfg.Stderr)
	}

	logger := setupLogging(cfg.Stderr, flags.Debug)
	defer func() { _ = logger.Sync() }()

	err = run(ctx, flags, cfg, logger)
	if err != nil {
		return handleRunError(err, logger)
	}

	return exitCodeOK
}
