// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package endpoint

import (
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// adviseSequential announces sequential access of regular files to the
// kernel, so it reads ahead more aggressively. Failure is not fatal.
func adviseSequential(file *os.File) {
	stat, err := file.Stat()
	if err != nil || !stat.Mode().IsRegular() {
		return
	}

	err = unix.Fadvise(int(file.Fd()), 0, 0, unix.FADV_SEQUENTIAL)
	if err != nil {
		Logger().Debug("Fadvise failed",
			zap.String("path", file.Name()),
			zap.Error(err),
		)
	}
}
