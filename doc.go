// Package ragged is a toolkit for jagged (ragged) arrays in Go: slices of
// slices whose rows may differ in length, or be absent altogether.
//
// What is in the box?
//
//	A generic, allocation-aware engine plus thin layers around it:
//		• Shape arithmetic: BlockCount, Count2D/3D, Min/MaxRowLen, RowLens
//		• Reshape: cut a flat slice into rows (2-D) or blocks of rows (3-D)
//		• Flatten: concatenate rows back into one flat slice
//		• Flat ops: run a whole-array transform (sort, normalize, scale…)
//		  over the flattened values and scatter the result back in shape
//		• Zip: combine 2 or 3 arrays element-wise, truncating or padding
//		• Map and CountFunc over nested slices
//
// Conventions shared by every package:
//
//   - A nil row is "absent" and behaves exactly like an empty row.
//   - Returned top-level slices are never nil, even when empty.
//   - Callbacks may fail; the first error aborts the call and is returned
//     unchanged, with no partial result.
//   - Invalid arguments (non-positive widths, overflowing block areas)
//     wrap jagged.ErrInvalidArgument.
//
// Packages:
//
//	jagged/         the engine: shape, reshape, flatten, flat ops, map, zip
//	convert/        numeric and boolean conversions over nested slices
//	format/         bracketed text rendering with a configurable null marker
//	internal/cli/   the jagged command (reshape, flatten, stats, sort, zip, convert)
//	cmd/jagged/     the command's entry point
//
// Quick example:
//
//	rows, _ := jagged.Reshape2D([]int{1, 2, 3, 4, 5}, 2)
//	fmt.Println(format.Format2D(rows)) // [[1, 2], [3, 4], [5]]
//
//	go get github.com/katalvlaran/ragged/jagged
package ragged
