// SPDX-License-Identifier: MIT
// Package: jagged
//
// shape.go: block-partition arithmetic shared by reshape (2-D and 3-D)
// and by the per-block row sizing inside Reshape3D.

package jagged

// BlockCount returns ceil(total / blockSize): the number of blocks of
// blockSize elements needed to hold total elements, the last one possibly
// shorter.
//
// Errors:
//   - ErrInvalidArgument if blockSize <= 0 or total < 0.
//
// Complexity: O(1).
func BlockCount(total, blockSize int) (int, error) {
	if err := validatePositive("blockSize", blockSize); err != nil {
		return 0, jaggedErrorf(opBlockCount, "", err)
	}
	if err := validateNonNegative("total", total); err != nil {
		return 0, jaggedErrorf(opBlockCount, "", err)
	}

	return ceilDiv(total, blockSize), nil
}

// ceilDiv is BlockCount without validation; callers guarantee
// total >= 0 and blockSize > 0. Written without total+blockSize-1 so it
// cannot overflow near math.MaxInt.
func ceilDiv(total, blockSize int) int {
	q := total / blockSize
	if total%blockSize != 0 {
		q++
	}

	return q
}
