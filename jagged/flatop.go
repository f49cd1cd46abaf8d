// SPDX-License-Identifier: MIT
// Package: jagged
//
// Purpose:
//   - Flat-transform round trip: flatten a nested structure into a fresh
//     scratch slice, let the caller transform it (sort, shuffle, overwrite),
//     then scatter the scratch back into the original layout.
//
// Design:
//   - The structure is borrowed mutably; the scratch slice is owned by the
//     call and never aliases any row of the structure.
//   - Gather and scatter walk the rows in the same order and skip
//     absent/empty rows identically, so leaf slot k always receives
//     scratch[k].
//   - The op cannot change the scratch length: it receives the slice header
//     by value, and scatter always reads exactly Count*(s) elements.
//   - Nothing is written back when op fails.
//
// Complexity:
//   - Time O(n) + cost(op), Space O(n) for the scratch slice.

package jagged

// FlatOp2D flattens s, applies op to the flat copy and writes the result
// back into the rows of s in flatten order. The shape of s is unchanged.
//
// For a length-preserving op such as slices.Sort,
// Flatten2D(s) after the call equals op(Flatten2D(s before the call)).
//
// Errors:
//   - Any error from op, unchanged. s is left untouched in that case.
func FlatOp2D[T any](s [][]T, op Op[T]) error {
	scratch := Flatten2D(s)
	if err := op(scratch); err != nil {
		return err
	}
	scatter2D(s, scratch)

	return nil
}

// FlatOp3D is the depth-3 analogue of FlatOp2D.
func FlatOp3D[T any](s [][][]T, op Op[T]) error {
	scratch := Flatten3D(s)
	if err := op(scratch); err != nil {
		return err
	}
	cursor := 0
	for _, block := range s {
		cursor += scatter2D(block, scratch[cursor:])
	}

	return nil
}

// Update2D replaces every leaf element v of s by f(v), in place.
// The transform runs on a scratch copy first, so an error from f leaves s
// exactly as it was.
func Update2D[T any](s [][]T, f Mapper[T, T]) error {
	return FlatOp2D(s, updateOp(f))
}

// Update3D is the depth-3 analogue of Update2D.
func Update3D[T any](s [][][]T, f Mapper[T, T]) error {
	return FlatOp3D(s, updateOp(f))
}

// updateOp lifts an element transform into an Op over the scratch slice.
func updateOp[T any](f Mapper[T, T]) Op[T] {
	return func(flat []T) error {
		for i, v := range flat {
			nv, err := f(v)
			if err != nil {
				return err
			}
			flat[i] = nv
		}

		return nil
	}
}

// scatter2D copies src into the rows of dst in order and reports how many
// elements it consumed. Absent/empty rows are skipped (copy is a no-op).
func scatter2D[T any](dst [][]T, src []T) int {
	cursor := 0
	for _, row := range dst {
		cursor += copy(row, src[cursor:])
	}

	return cursor
}
