// SPDX-License-Identifier: MIT

package jagged

// Flatten2D concatenates the rows of s in order into one new slice.
// Absent and empty rows contribute nothing. The output is allocated once,
// sized by Count2D, and never aliases s.
//
// Complexity: O(n) time and space, n = Count2D(s).
func Flatten2D[T any](s [][]T) []T {
	out := make([]T, 0, Count2D(s))
	for _, row := range s {
		out = append(out, row...) // no-op for nil/empty rows
	}

	return out
}

// Flatten3D concatenates every leaf row of s in order into one new slice,
// skipping absent/empty outer rows and absent/empty inner rows alike.
//
// Complexity: O(n) time and space, n = Count3D(s).
func Flatten3D[T any](s [][][]T) []T {
	out := make([]T, 0, Count3D(s))
	for _, block := range s {
		for _, row := range block {
			out = append(out, row...)
		}
	}

	return out
}
