// SPDX-License-Identifier: MIT
// Package: jagged
//
// Purpose:
//   - Partition a flat slice into cols-wide rows (Reshape2D) or into
//     rows×cols blocks (Reshape3D), the trailing row/block holding the
//     remainder.
//
// Design:
//   - Arguments are validated before any allocation.
//   - The input is copied once into a fresh backing array; rows are
//     capacity-capped sub-slices of it (s[lo:hi:hi]) so an append on one row
//     reallocates instead of overwriting the next row.
//   - A running cursor walks the backing array left to right.
//
// Complexity:
//   - Time O(n), Space O(n) for the copy plus O(rows) headers.

package jagged

// Reshape2D cuts s into rows of cols elements. The last row holds the
// remainder len(s) - cols*(n-1) when len(s) is not a multiple of cols.
// The result has BlockCount(len(s), cols) rows.
//
// A nil or empty s yields an empty (non-nil) result, but cols is still
// validated first.
//
// Errors:
//   - ErrInvalidArgument if cols <= 0.
//
// Example:
//
//	rows, _ := Reshape2D([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
func Reshape2D[T any](s []T, cols int) ([][]T, error) {
	if err := validatePositive("cols", cols); err != nil {
		return nil, jaggedErrorf(opReshape2D, "", err)
	}

	n := len(s)
	out := make([][]T, ceilDiv(n, cols))
	if n == 0 {
		return out, nil
	}

	buf := make([]T, n)
	copy(buf, s)

	cursor := 0
	for i := range out {
		hi := min(cursor+cols, n)
		out[i] = buf[cursor:hi:hi]
		cursor = hi
	}

	return out, nil
}

// Reshape3D cuts s into blocks of up to rows rows, each row up to cols
// elements. The number of blocks is BlockCount(len(s), rows*cols); the
// number of rows in each block is min(rows, BlockCount(remaining, cols)),
// where remaining counts the elements not yet consumed by earlier blocks.
//
// A nil or empty s yields zero blocks, after rows and cols were validated.
//
// Errors:
//   - ErrInvalidArgument if rows <= 0, cols <= 0 or rows*cols overflows.
//
// Example:
//
//	blocks, _ := Reshape3D([]int{1, 2, 3, 4, 5, 6, 7}, 2, 2)
//	// [[[1 2] [3 4]] [[5 6] [7]]]
func Reshape3D[T any](s []T, rows, cols int) ([][][]T, error) {
	if err := validateBlockArea(rows, cols); err != nil {
		return nil, jaggedErrorf(opReshape3D, "", err)
	}

	n := len(s)
	out := make([][][]T, ceilDiv(n, rows*cols))
	if n == 0 {
		return out, nil
	}

	buf := make([]T, n)
	copy(buf, s)

	cursor := 0
	for b := range out {
		// rows needed for what is left, capped by the block height
		blockRows := min(rows, ceilDiv(n-cursor, cols))
		block := make([][]T, blockRows)
		for r := range block {
			hi := min(cursor+cols, n)
			block[r] = buf[cursor:hi:hi]
			cursor = hi
		}
		out[b] = block
	}

	return out, nil
}
