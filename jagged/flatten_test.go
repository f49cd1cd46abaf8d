package jagged_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ragged/jagged"
)

// TestFlatten2D_SkipsAbsentRows covers [[1,2],nil,[3]] → [1,2,3].
func TestFlatten2D_SkipsAbsentRows(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, jagged.Flatten2D([][]int{{1, 2}, nil, {3}}))
	assert.Equal(t, []int{1, 2, 3}, jagged.Flatten2D([][]int{{1, 2}, {}, {3}}), "empty row behaves like absent")
}

// TestFlatten2D_Empty ensures nil/empty inputs give an empty non-nil slice.
func TestFlatten2D_Empty(t *testing.T) {
	for _, in := range [][][]rune{nil, {}, {nil, nil}, {{}, nil}} {
		got := jagged.Flatten2D(in)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	}
}

// TestFlatten2D_Capacity ensures the output is sized exactly once.
func TestFlatten2D_Capacity(t *testing.T) {
	got := jagged.Flatten2D([][]byte{{1}, {2, 3}, nil, {4, 5, 6}})
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, got)
	assert.Equal(t, 6, cap(got), "single exact allocation")
}

// TestFlatten2D_NoAlias ensures writes into the result do not reach the input.
func TestFlatten2D_NoAlias(t *testing.T) {
	in := [][]int{{1, 2}}
	out := jagged.Flatten2D(in)
	out[0] = 42
	assert.Equal(t, 1, in[0][0])
}

// TestFlatten3D_SkipsAbsentAtBothLevels mixes absent outer and inner rows.
func TestFlatten3D_SkipsAbsentAtBothLevels(t *testing.T) {
	in := [][][]string{
		{{"a"}, nil, {"b", "c"}},
		nil,
		{},
		{{}, {"d"}},
	}
	assert.Equal(t, []string{"a", "b", "c", "d"}, jagged.Flatten3D(in))
	assert.Empty(t, jagged.Flatten3D([][][]string(nil)))
}

// TestFlatten_InverseOfReshape checks flatten2D(reshape1Dto2D(s,k)) == s.
func TestFlatten_InverseOfReshape(t *testing.T) {
	for n := 0; n <= 17; n++ {
		src := make([]int, n)
		for i := range src {
			src[i] = n - i
		}
		for k := 1; k <= 7; k++ {
			rows, err := jagged.Reshape2D(src, k)
			assert.NoError(t, err)
			assert.Equal(t, src, jagged.Flatten2D(rows), "n=%d k=%d", n, k)
		}
	}
}
