// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package endpoint

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger //nolint:gochecknoglobals
	loggerOnce sync.Once   //nolint:gochecknoglobals
)

// Logger returns the endpoint package's logger instance.
// It uses a no-op logger by default.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})

	return logger
}

// SetLogger configures the endpoint package's logger.
// This must be called before any endpoint is opened.
func SetLogger(l *zap.Logger) {
	logger = l
}
