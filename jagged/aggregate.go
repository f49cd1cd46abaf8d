// SPDX-License-Identifier: MIT
// Package: jagged
//
// aggregate.go: structural statistics over jagged arrays.
//
// Every query treats an absent row as a row of length 0 and returns 0 for an
// empty or absent top-level input. None of them allocate except RowLens.

package jagged

// Count2D returns the number of leaf elements in s.
func Count2D[T any](s [][]T) int {
	total := 0
	for _, row := range s {
		total += len(row)
	}

	return total
}

// Count3D returns the number of leaf elements in s.
func Count3D[T any](s [][][]T) int {
	total := 0
	for _, block := range s {
		total += Count2D(block)
	}

	return total
}

// MinRowLen returns the shortest row length in s; an absent row counts as 0.
// An empty s yields 0.
func MinRowLen[T any](s [][]T) int {
	if len(s) == 0 {
		return 0
	}
	m := len(s[0])
	for _, row := range s[1:] {
		m = min(m, len(row))
	}

	return m
}

// MaxRowLen returns the longest row length in s; an empty s yields 0.
func MaxRowLen[T any](s [][]T) int {
	m := 0
	for _, row := range s {
		m = max(m, len(row))
	}

	return m
}

// RowLens returns the length of every row of s, absent rows reported as 0.
// The result is never nil.
func RowLens[T any](s [][]T) []int {
	out := make([]int, len(s))
	for i, row := range s {
		out[i] = len(row)
	}

	return out
}

// CountFunc returns how many elements of s satisfy pred.
// The first predicate error aborts the count and is returned unchanged.
func CountFunc[T any](s []T, pred Predicate[T]) (int, error) {
	total := 0
	for _, v := range s {
		ok, err := pred(v)
		if err != nil {
			return 0, err
		}
		if ok {
			total++
		}
	}

	return total, nil
}

// CountFunc2D is CountFunc over every leaf element of s.
func CountFunc2D[T any](s [][]T, pred Predicate[T]) (int, error) {
	total := 0
	for _, row := range s {
		n, err := CountFunc(row, pred)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}

// CountFunc3D is CountFunc over every leaf element of s.
func CountFunc3D[T any](s [][][]T, pred Predicate[T]) (int, error) {
	total := 0
	for _, block := range s {
		n, err := CountFunc2D(block, pred)
		if err != nil {
			return 0, err
		}
		total += n
	}

	return total, nil
}
