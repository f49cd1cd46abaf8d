// SPDX-License-Identifier: MIT

// Package convert narrows and widens numeric jagged arrays of depth 1, 2
// and 3 while keeping their exact shape.
//
// Every function is a thin forward to jagged.Map / Map2D / Map3D with a
// fixed element rule, so absent rows stay absent and empty rows stay empty.
//
// Conversion rule:
//   - Go's numeric conversion T(v): floats truncate toward zero when
//     converted to an integer type; integers wrap when narrowed.
//   - ToBool maps a non-zero value to true.
//
// Usage:
//
//	ints := convert.ToInt2D([][]float64{{1.9, -2.7}, nil}) // [[1 -2] []]
package convert
