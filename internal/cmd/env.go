// SPDX-FileCopyrightText: 2024 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

// EnvVar is the name of the environment variable that can hold arguments.
const EnvVar = "B64STREAM_ARGS"

// EnvArgs returns b64stream arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(EnvVar))
}

// MergedArgs returns the arguments from the environment followed by the given
// ones, so the latter take precedence.
func MergedArgs(args []string) []string {
	return append(EnvArgs(), args...)
}
