// SPDX-License-Identifier: MIT

// Package format renders jagged arrays of depth 1, 2 and 3 as text.
//
// The renderer only reads its input. Absent (nil) rows are printed with a
// configurable null marker so they stay distinguishable from empty rows:
//
//	format.Format2D([][]int{{1, 2}, nil, {}})  // [[1, 2], null, []]
//
// Options follow the functional pattern used across the module:
//
//	format.Format2D(rows, format.WithVerb("%.2f"), format.WithMultiline())
//	// [
//	//   [1.00, 2.00],
//	//   [3.00]
//	// ]
package format
