// SPDX-License-Identifier: MIT

package jagged

// Map returns f applied to every element of s. A nil s yields an empty,
// non-nil result. The first error from f aborts the call with no partial
// result and is returned unchanged.
func Map[T, U any](s []T, f Mapper[T, U]) ([]U, error) {
	out := make([]U, len(s))
	for i, v := range s {
		u, err := f(v)
		if err != nil {
			return nil, err
		}
		out[i] = u
	}

	return out, nil
}

// Map2D applies f to every leaf element of s, preserving the nesting:
// absent rows stay nil and empty rows stay empty.
func Map2D[T, U any](s [][]T, f Mapper[T, U]) ([][]U, error) {
	out := make([][]U, len(s))
	for i, row := range s {
		if row == nil {
			continue
		}
		mapped, err := Map(row, f)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}

	return out, nil
}

// Map3D applies f to every leaf element of s, preserving the nesting at
// both inner levels.
func Map3D[T, U any](s [][][]T, f Mapper[T, U]) ([][][]U, error) {
	out := make([][][]U, len(s))
	for i, block := range s {
		if block == nil {
			continue
		}
		mapped, err := Map2D(block, f)
		if err != nil {
			return nil, err
		}
		out[i] = mapped
	}

	return out, nil
}
