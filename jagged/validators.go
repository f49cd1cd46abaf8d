// SPDX-License-Identifier: MIT
// Package: jagged
//
// Purpose:
//   - Single source of truth for the argument checks used by shape
//     arithmetic and reshape.
//   - Return plain, tagged sentinels so call sites wrap uniformly.
//
// Note:
//   - All checks are O(1) and allocate nothing beyond the error value.

package jagged

import (
	"math"
	"strconv"
)

// validatePositive ensures n > 0; name is the argument name used in the message.
func validatePositive(name string, n int) error {
	if n <= 0 {
		return jaggedErrorf("validatePositive", name+"="+strconv.Itoa(n), ErrInvalidArgument)
	}

	return nil
}

// validateNonNegative ensures n >= 0.
func validateNonNegative(name string, n int) error {
	if n < 0 {
		return jaggedErrorf("validateNonNegative", name+"="+strconv.Itoa(n), ErrInvalidArgument)
	}

	return nil
}

// validateBlockArea ensures rows and cols are positive and rows*cols fits in an int.
// Composite: Positive(rows) → Positive(cols) → no overflow.
func validateBlockArea(rows, cols int) error {
	if err := validatePositive("rows", rows); err != nil {
		return err
	}
	if err := validatePositive("cols", cols); err != nil {
		return err
	}
	if rows > math.MaxInt/cols {
		return jaggedErrorf("validateBlockArea", "rows*cols overflows int", ErrInvalidArgument)
	}

	return nil
}
