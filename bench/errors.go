// SPDX-License-Identifier: MIT
// Package bench: sentinel error set.

package bench

import (
	"errors"
	"fmt"
)

// ErrMismatch indicates a strategy produced a different matrix than the
// sequential reference on the same input (only checked under WithVerify).
var ErrMismatch = errors.New("bench: result differs from sequential reference")

// benchErrorf wraps an underlying error with the strategy label.
func benchErrorf(label string, err error) error {
	return fmt.Errorf("bench %q: %w", label, err)
}
