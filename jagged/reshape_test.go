package jagged_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ragged/jagged"
)

//----------------------------------------------------------------------------//
// Reshape2D
//----------------------------------------------------------------------------//

// TestReshape2D_Remainder covers the canonical [1..5] by 2 scenario.
func TestReshape2D_Remainder(t *testing.T) {
	got, err := jagged.Reshape2D([]int{1, 2, 3, 4, 5}, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, got)
}

// TestReshape2D_Shapes verifies the row-count law for several lengths and widths.
func TestReshape2D_Shapes(t *testing.T) {
	for n := 0; n <= 13; n++ {
		src := make([]int, n)
		for i := range src {
			src[i] = i
		}
		for k := 1; k <= 6; k++ {
			rows, err := jagged.Reshape2D(src, k)
			require.NoError(t, err)

			wantRows, _ := jagged.BlockCount(n, k)
			require.Len(t, rows, wantRows, "n=%d k=%d", n, k)
			for i, row := range rows {
				if i < len(rows)-1 {
					assert.Len(t, row, k, "n=%d k=%d row=%d", n, k, i)
				} else {
					assert.Equal(t, n-k*(len(rows)-1), len(row), "last row holds the remainder")
				}
			}
		}
	}
}

// TestReshape2D_Empty ensures empty and nil inputs yield zero (non-nil) rows.
func TestReshape2D_Empty(t *testing.T) {
	got, err := jagged.Reshape2D([]string(nil), 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got, err = jagged.Reshape2D([]string{}, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestReshape2D_InvalidCols ensures cols is validated even for empty input.
func TestReshape2D_InvalidCols(t *testing.T) {
	for _, cols := range []int{0, -3} {
		_, err := jagged.Reshape2D([]int{1, 2}, cols)
		assert.ErrorIs(t, err, jagged.ErrInvalidArgument)

		_, err = jagged.Reshape2D([]int(nil), cols)
		assert.ErrorIs(t, err, jagged.ErrInvalidArgument, "empty input still validates cols")
	}
}

// TestReshape2D_Isolation ensures the result neither aliases the input nor
// lets an append on one row overwrite the next.
func TestReshape2D_Isolation(t *testing.T) {
	src := []int{1, 2, 3, 4}
	rows, err := jagged.Reshape2D(src, 2)
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, 1, rows[0][0], "result must not alias input")

	rows[0] = append(rows[0], 99)
	assert.Equal(t, []int{3, 4}, rows[1], "append on row 0 must not clobber row 1")
}

//----------------------------------------------------------------------------//
// Reshape3D
//----------------------------------------------------------------------------//

// TestReshape3D_Blocks walks through exact and remainder partitions.
func TestReshape3D_Blocks(t *testing.T) {
	cases := []struct {
		name       string
		n          int
		rows, cols int
		want       [][][]int
	}{
		{"Exact", 8, 2, 2, [][][]int{{{0, 1}, {2, 3}}, {{4, 5}, {6, 7}}}},
		{"ShortLastRow", 7, 2, 2, [][][]int{{{0, 1}, {2, 3}}, {{4, 5}, {6}}}},
		{"ShortLastBlock", 5, 2, 2, [][][]int{{{0, 1}, {2, 3}}, {{4}}}},
		{"SingleBlock", 5, 3, 2, [][][]int{{{0, 1}, {2, 3}, {4}}}},
		{"WideCols", 4, 3, 10, [][][]int{{{0, 1, 2, 3}}}},
		{"UnitBlocks", 3, 1, 1, [][][]int{{{0}}, {{1}}, {{2}}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := make([]int, tc.n)
			for i := range src {
				src[i] = i
			}
			got, err := jagged.Reshape3D(src, tc.rows, tc.cols)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReshape3D_Empty ensures zero blocks for empty input after validation.
func TestReshape3D_Empty(t *testing.T) {
	got, err := jagged.Reshape3D([]float64(nil), 2, 3)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = jagged.Reshape3D([]float64(nil), 0, 3)
	assert.ErrorIs(t, err, jagged.ErrInvalidArgument)
}

// TestReshape3D_Invalid covers non-positive rows/cols and area overflow.
func TestReshape3D_Invalid(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 2},
		{"ZeroCols", 2, 0},
		{"NegativeRows", -1, 2},
		{"NegativeCols", 2, -1},
		{"Overflow", math.MaxInt, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := jagged.Reshape3D([]int{1}, tc.rows, tc.cols)
			assert.ErrorIs(t, err, jagged.ErrInvalidArgument)
			assert.Contains(t, err.Error(), "Reshape3D")
		})
	}
}

// TestReshape3D_RoundTrip ensures Flatten3D inverts Reshape3D.
func TestReshape3D_RoundTrip(t *testing.T) {
	for n := 0; n <= 20; n++ {
		src := make([]int, n)
		for i := range src {
			src[i] = i * 3
		}
		for rows := 1; rows <= 4; rows++ {
			for cols := 1; cols <= 4; cols++ {
				blocks, err := jagged.Reshape3D(src, rows, cols)
				require.NoError(t, err)
				wantBlocks, _ := jagged.BlockCount(n, rows*cols)
				assert.Len(t, blocks, wantBlocks)
				assert.Equal(t, src, jagged.Flatten3D(blocks), "n=%d rows=%d cols=%d", n, rows, cols)
			}
		}
	}
}
