// SPDX-License-Identifier: MIT
// Package timer: sentinel error set.

package timer

import "errors"

var (
	// ErrNegativeDuration indicates a negative sleep duration.
	ErrNegativeDuration = errors.New("timer: duration must be >= 0")

	// ErrUnknownLanguage indicates a Language value with no report template.
	ErrUnknownLanguage = errors.New("timer: unknown language")
)
