package jagged_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/ragged/jagged"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Reshape2D / Flatten2D
////////////////////////////////////////////////////////////////////////////////

// ExampleReshape2D cuts five readings into rows of two; the last row keeps
// the remainder, and Flatten2D restores the original order.
func ExampleReshape2D() {
	rows, err := jagged.Reshape2D([]int{1, 2, 3, 4, 5}, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(rows)
	fmt.Println(jagged.Flatten2D(rows))
	// Output:
	// [[1 2] [3 4] [5]]
	// [1 2 3 4 5]
}

// ExampleReshape3D groups seven items into 2×2 blocks.
func ExampleReshape3D() {
	blocks, _ := jagged.Reshape3D([]string{"a", "b", "c", "d", "e", "f", "g"}, 2, 2)
	fmt.Println(blocks)
	// Output:
	// [[[a b] [c d]] [[e f] [g]]]
}

// ExampleFlatten2D shows that absent rows contribute nothing.
func ExampleFlatten2D() {
	fmt.Println(jagged.Flatten2D([][]int{{1, 2}, nil, {3}}))
	// Output:
	// [1 2 3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: aggregates
////////////////////////////////////////////////////////////////////////////////

// ExampleMinRowLen treats the absent row as length zero.
func ExampleMinRowLen() {
	s := [][]int{{1, 2, 3}, {4, 5}, nil, {6}}
	fmt.Println(jagged.MinRowLen(s), jagged.MaxRowLen(s), jagged.Count2D(s))
	// Output:
	// 0 3 6
}

////////////////////////////////////////////////////////////////////////////////
// Example: FlatOp2D
////////////////////////////////////////////////////////////////////////////////

// ExampleFlatOp2D sorts every value of a ragged table while keeping each
// row's length (and the absent row) exactly where it was.
func ExampleFlatOp2D() {
	s := [][]int{{9, 3}, nil, {7, 1, 5}}
	if err := jagged.FlatOp2D(s, jagged.LiftOp(slices.Sort[[]int])); err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(s)
	// Output:
	// [[1 3] [] [5 7 9]]
}

////////////////////////////////////////////////////////////////////////////////
// Example: Zip / ZipPad
////////////////////////////////////////////////////////////////////////////////

// ExampleZip stops at the shorter input.
func ExampleZip() {
	add := jagged.Lift2(func(x, y int) int { return x + y })
	out, _ := jagged.Zip([]int{1, 2, 3, 4}, []int{5, 6, 7}, add)
	fmt.Println(out)
	// Output:
	// [6 8 10]
}

// ExampleZipPad runs to the longer input, pairing a[2:] with fillB=10.
func ExampleZipPad() {
	add := jagged.Lift2(func(x, y int) int { return x + y })
	out, _ := jagged.ZipPad([]int{1, 2, 3, 4}, []int{5, 6}, 0, 10, add)
	fmt.Println(out)
	// Output:
	// [6 8 13 14]
}

// ExampleZipPad2D pads a missing row of b with fill values.
func ExampleZipPad2D() {
	label := jagged.Lift2(func(name string, score int) string { return fmt.Sprintf("%s=%d", name, score) })
	names := [][]string{{"ann", "bob"}, {"cy"}}
	scores := [][]int{{7}}
	out, _ := jagged.ZipPad2D(names, scores, "?", 0, label)
	fmt.Println(out)
	// Output:
	// [[ann=7 bob=0] [cy=0]]
}
