// SPDX-License-Identifier: MIT

// Package jagged reshapes, flattens, zips and measures jagged (ragged)
// arrays of depth 1, 2 and 3, generically over the element type.
//
// 🚀 What is a jagged array?
//
//	A nested sequence whose inner sequences may differ in length or be
//	missing entirely. In Go terms:
//	  • depth 1: []T
//	  • depth 2: [][]T   (rows may have any length, or be nil)
//	  • depth 3: [][][]T (blocks of rows, any level may be nil)
//
// ✨ Key features:
//   - Reshape: cut a flat slice into cols-wide rows (2-D) or rows×cols
//     blocks (3-D); the trailing row/block keeps the remainder.
//   - Flatten: concatenate present rows in order with a single allocation.
//   - Aggregates: Count2D/Count3D, MinRowLen, MaxRowLen, RowLens, CountFunc*.
//   - FlatOp: flatten → transform (e.g. sort) → scatter back into the
//     original layout, preserving the nested shape.
//   - Zip: combine 2 or 3 arrays position-by-position at depth 1, 2 or 3,
//     truncating to the shortest input or padding to the longest one.
//   - Map: per-element transform that preserves the exact nesting.
//
// Absent rows:
//
//	A nil row is an absent row and is equivalent to an empty row for every
//	operation in this package. Results are never nil at the top level:
//	an empty input yields an empty (non-nil) result.
//
// Errors:
//   - ErrInvalidArgument for non-positive rows/cols/block sizes, reported
//     before anything is allocated and wrapped with the operation name.
//   - Errors returned by caller-supplied callbacks (Combine2, Combine3,
//     Mapper, Op, Predicate) abort the call with no partial result and are
//     returned unchanged.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/ragged/jagged"
//
//	rows, _ := jagged.Reshape2D([]int{1, 2, 3, 4, 5}, 2) // [[1 2] [3 4] [5]]
//	flat := jagged.Flatten2D(rows)                       // [1 2 3 4 5]
//
//	sum := jagged.Lift2(func(x, y int) int { return x + y })
//	out, _ := jagged.ZipPad([]int{1, 2, 3, 4}, []int{5, 6}, 0, 10, sum)
//	// out == [6 8 13 14]
//
// Concurrency:
//
//	Every function is synchronous and keeps no state between calls. FlatOp*
//	and Update* write into the caller's structure; do not read or mutate that
//	structure from another goroutine while the call runs. Calls on disjoint
//	structures are safe to run concurrently.
package jagged
