// SPDX-License-Identifier: MIT
// Package: jagged
//
// Purpose:
//   - Combine two jagged arrays position-by-position through a Combine2,
//     at depth 1, 2 and 3, under two length policies:
//     truncate (Zip*) stops at the shorter source,
//     pad (ZipPad*) runs to the longer source, substituting the
//     caller's fill value for the source that ran out.
//
// Design:
//   - Depth 1 holds the only element loops; depth 2 zips the outer rows with
//     the same policy and recurses into the depth-1 rule per row pair, and
//     depth 3 recurses into depth 2.
//   - In the pad policy an outer row beyond one source's length is read as
//     an absent (nil) row, so it is zipped against all-fill values for the
//     full length of the other source's row.
//   - A failing Combine2 aborts with (nil, err): no partial result, err
//     returned unchanged.
//
// Complexity:
//   - Time O(number of produced elements), Space the same.

package jagged

// at returns s[i] when i is within s, fill otherwise.
func at[T any](s []T, i int, fill T) T {
	if i < len(s) {
		return s[i]
	}

	return fill
}

// rowAt returns s[i] when i is within s and nil (absent) otherwise.
func rowAt[T any](s []T, i int) T {
	var zero T
	return at(s, i, zero)
}

// Zip returns f(a[i], b[i]) for i in [0, min(len(a), len(b))).
// An absent source has length 0, so the result is empty when either is nil.
//
// Example:
//
//	add := Lift2(func(x, y int) int { return x + y })
//	out, _ := Zip([]int{1, 2, 3, 4}, []int{5, 6, 7}, add) // [6 8 10]
func Zip[A, B, R any](a []A, b []B, f Combine2[A, B, R]) ([]R, error) {
	out := make([]R, min(len(a), len(b)))
	for i := range out {
		r, err := f(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// ZipPad returns max(len(a), len(b)) results. Below the shorter length both
// real values are combined; beyond it the shorter source contributes its
// fill value (fillA for a, fillB for b).
//
// Example:
//
//	add := Lift2(func(x, y int) int { return x + y })
//	out, _ := ZipPad([]int{1, 2, 3, 4}, []int{5, 6}, 0, 10, add) // [6 8 13 14]
func ZipPad[A, B, R any](a []A, b []B, fillA A, fillB B, f Combine2[A, B, R]) ([]R, error) {
	out := make([]R, max(len(a), len(b)))
	for i := range out {
		r, err := f(at(a, i, fillA), at(b, i, fillB))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// Zip2D zips the outer rows with the truncate policy and every row pair
// with Zip. The result has min(len(a), len(b)) rows.
func Zip2D[A, B, R any](a [][]A, b [][]B, f Combine2[A, B, R]) ([][]R, error) {
	out := make([][]R, min(len(a), len(b)))
	for i := range out {
		row, err := Zip(a[i], b[i], f)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

// ZipPad2D zips the outer rows with the pad policy and every row pair with
// ZipPad. A row missing from the shorter source is treated as absent, so
// the output row has the other source's row length, all paired with fills.
func ZipPad2D[A, B, R any](a [][]A, b [][]B, fillA A, fillB B, f Combine2[A, B, R]) ([][]R, error) {
	out := make([][]R, max(len(a), len(b)))
	for i := range out {
		row, err := ZipPad(rowAt(a, i), rowAt(b, i), fillA, fillB, f)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

// Zip3D is the depth-3 truncate zip: outer blocks truncated, each block
// pair zipped with Zip2D.
func Zip3D[A, B, R any](a [][][]A, b [][][]B, f Combine2[A, B, R]) ([][][]R, error) {
	out := make([][][]R, min(len(a), len(b)))
	for i := range out {
		block, err := Zip2D(a[i], b[i], f)
		if err != nil {
			return nil, err
		}
		out[i] = block
	}

	return out, nil
}

// ZipPad3D is the depth-3 pad zip: outer blocks padded with absent blocks,
// each block pair zipped with ZipPad2D.
func ZipPad3D[A, B, R any](a [][][]A, b [][][]B, fillA A, fillB B, f Combine2[A, B, R]) ([][][]R, error) {
	out := make([][][]R, max(len(a), len(b)))
	for i := range out {
		block, err := ZipPad2D(rowAt(a, i), rowAt(b, i), fillA, fillB, f)
		if err != nil {
			return nil, err
		}
		out[i] = block
	}

	return out, nil
}
