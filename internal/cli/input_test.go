package cli

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNodeDepth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"7", 0},
		{"[]", 1},
		{"[1, 2]", 1},
		{"[null]", 2},
		{"[[1], null, []]", 2},
		{"[[[1]], [null], []]", 3},
		{"- [1, 2]\n- ~\n", 2},
		{"- &r [1]\n- *r\n", 2},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var n yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &n))
			got, err := nodeDepth(n.Content[0])
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeDepth_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"Mixed", "[1, [2]]", ErrInput},
		{"Mapping", "{a: 1}", ErrInput},
		{"NestedMapping", "[[{a: 1}]]", ErrInput},
		{"TooDeep", "[[[[1]]]]", ErrDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n yaml.Node
			require.NoError(t, yaml.Unmarshal([]byte(tt.in), &n))
			_, err := nodeDepth(n.Content[0])
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReadDocument(t *testing.T) {
	doc, err := readDocument(strings.NewReader(`[[1.5, 2], null, []]`), 0)
	require.NoError(t, err)
	assert.Equal(t, 2, doc.depth)
	assert.Equal(t, 2, doc.count())
	if diff := cmp.Diff([][]float64{{1.5, 2}, nil, {}}, doc.d2); diff != "" {
		t.Errorf("d2 mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, doc.d2[1], "null decodes to an absent row")

	doc, err = readDocument(strings.NewReader("null"), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, doc.depth)
	assert.Zero(t, doc.count())

	// Anchors and aliases resolve like inline rows.
	doc, err = readDocument(strings.NewReader("- &r [1, 2]\n- *r\n"), 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {1, 2}}, doc.d2)

	doc, err = readDocument(strings.NewReader("[[1, 2], [3]]"), 3)
	assert.ErrorIs(t, err, ErrInput, "a forced depth that does not match fails to decode")
	assert.Nil(t, doc)
}

func TestReadDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"Empty", "", ErrInput},
		{"Syntax", "[1, 2", ErrInput},
		{"NotNumeric", `["a", "b"]`, ErrInput},
		{"Mixed", "[1, [2]]", ErrInput},
		{"TooDeep", "[[[[1]]]]", ErrDepth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readDocument(strings.NewReader(tt.in), 0)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
