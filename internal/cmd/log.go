// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"io"

	"github.com/aibor/b64stream/internal/endpoint"
	"github.com/aibor/b64stream/internal/pipeline"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func setupLogging(writer io.Writer, debug bool) *zap.Logger {
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(writer),
		level,
	)).Named(name)

	pipeline.SetLogger(logger.Named("pipeline"))
	endpoint.SetLogger(logger.Named("endpoint"))

	return logger
}
