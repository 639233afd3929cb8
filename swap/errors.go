// SPDX-License-Identifier: MIT
// Package swap: sentinel error set.

package swap

import (
	"errors"
	"fmt"
)

// ErrNilMatrix indicates that a nil matrix was passed to a swapper.
var ErrNilMatrix = errors.New("swap: nil matrix")

// swapErrorf wraps an underlying error with swapper context.
func swapErrorf(method string, err error) error {
	return fmt.Errorf("swap.%s: %w", method, err)
}
