// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package pipeline

import (
	"fmt"
)

// Names of the pipeline stages as used in [StageError].
const (
	// StageReader reads chunks from the input.
	StageReader = "reader"
	// StageTranscoder encodes or decodes the chunks and writes the output.
	StageTranscoder = "transcoder"
)

// StageError wraps any error occurring in one of the pipeline stages.
type StageError struct {
	Stage string
	Err   error
}

// Error implements the [error] interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

// Is implements the [errors.Is] interface.
func (*StageError) Is(other error) bool {
	_, ok := other.(*StageError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *StageError) Unwrap() error {
	return e.Err
}

func wrapStageError(stage string, err error) error {
	if err == nil {
		return nil
	}

	return &StageError{Stage: stage, Err: err}
}
