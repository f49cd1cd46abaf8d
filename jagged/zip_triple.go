// SPDX-License-Identifier: MIT
// Package: jagged
//
// zip_triple.go: three-source variants of the zip engine.
//
// Policies mirror zip.go: truncate uses the minimum of the three lengths,
// pad uses the maximum and substitutes each source's own fill value for any
// index beyond that source's own length (evaluated per source, never
// relative to the other two).

package jagged

// ZipTriple returns f(a[i], b[i], c[i]) for i below min(len(a), len(b), len(c)).
func ZipTriple[A, B, C, R any](a []A, b []B, c []C, f Combine3[A, B, C, R]) ([]R, error) {
	out := make([]R, min(len(a), len(b), len(c)))
	for i := range out {
		r, err := f(a[i], b[i], c[i])
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// ZipTriplePad returns max(len(a), len(b), len(c)) results; each source
// contributes its fill value once its own elements run out.
func ZipTriplePad[A, B, C, R any](a []A, b []B, c []C, fillA A, fillB B, fillC C, f Combine3[A, B, C, R]) ([]R, error) {
	out := make([]R, max(len(a), len(b), len(c)))
	for i := range out {
		r, err := f(at(a, i, fillA), at(b, i, fillB), at(c, i, fillC))
		if err != nil {
			return nil, err
		}
		out[i] = r
	}

	return out, nil
}

// ZipTriple2D truncates the outer rows and zips each row triple with ZipTriple.
func ZipTriple2D[A, B, C, R any](a [][]A, b [][]B, c [][]C, f Combine3[A, B, C, R]) ([][]R, error) {
	out := make([][]R, min(len(a), len(b), len(c)))
	for i := range out {
		row, err := ZipTriple(a[i], b[i], c[i], f)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

// ZipTriplePad2D pads the outer rows with absent rows and zips each row
// triple with ZipTriplePad.
func ZipTriplePad2D[A, B, C, R any](a [][]A, b [][]B, c [][]C, fillA A, fillB B, fillC C, f Combine3[A, B, C, R]) ([][]R, error) {
	out := make([][]R, max(len(a), len(b), len(c)))
	for i := range out {
		row, err := ZipTriplePad(rowAt(a, i), rowAt(b, i), rowAt(c, i), fillA, fillB, fillC, f)
		if err != nil {
			return nil, err
		}
		out[i] = row
	}

	return out, nil
}

// ZipTriple3D truncates the outer blocks and zips each block triple with ZipTriple2D.
func ZipTriple3D[A, B, C, R any](a [][][]A, b [][][]B, c [][][]C, f Combine3[A, B, C, R]) ([][][]R, error) {
	out := make([][][]R, min(len(a), len(b), len(c)))
	for i := range out {
		block, err := ZipTriple2D(a[i], b[i], c[i], f)
		if err != nil {
			return nil, err
		}
		out[i] = block
	}

	return out, nil
}

// ZipTriplePad3D pads the outer blocks with absent blocks and zips each
// block triple with ZipTriplePad2D.
func ZipTriplePad3D[A, B, C, R any](a [][][]A, b [][][]B, c [][][]C, fillA A, fillB B, fillC C, f Combine3[A, B, C, R]) ([][][]R, error) {
	out := make([][][]R, max(len(a), len(b), len(c)))
	for i := range out {
		block, err := ZipTriplePad2D(rowAt(a, i), rowAt(b, i), rowAt(c, i), fillA, fillB, fillC, f)
		if err != nil {
			return nil, err
		}
		out[i] = block
	}

	return out, nil
}
