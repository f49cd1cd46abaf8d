// SPDX-License-Identifier: MIT
// Package: jagged
//
// errors.go: sentinel errors for the jagged package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Validation failures are wrapped with the operation tag via %w,
//     e.g. "Reshape2D: cols=0: jagged: invalid argument".
//   - Errors produced by caller callbacks are NEVER wrapped: they are
//     returned exactly as the callback produced them.
//   - Absent (nil) inputs are not an error anywhere in this package.

package jagged

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a non-positive rows/cols/block size (or a
// negative total) passed to the shape arithmetic or reshape functions.
// It is always reported before any allocation takes place.
var ErrInvalidArgument = errors.New("jagged: invalid argument")

// Operation tags used for error wrapping (no magic strings at call sites).
const (
	opBlockCount = "BlockCount"
	opReshape2D  = "Reshape2D"
	opReshape3D  = "Reshape3D"
)

// jaggedErrorf tags err with the operation name and a short detail,
// keeping err reachable for errors.Is.
func jaggedErrorf(tag, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", tag, err)
	}

	return fmt.Errorf("%s: %s: %w", tag, detail, err)
}
