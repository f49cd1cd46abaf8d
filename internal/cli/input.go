package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ragged/jagged"
)

// maxDepth is the deepest nesting the engine supports.
const maxDepth = 3

// document is a decoded numeric jagged array; exactly one of d1/d2/d3 is
// meaningful, selected by depth.
type document struct {
	depth int
	d1    []float64
	d2    [][]float64
	d3    [][][]float64
}

// count returns the number of leaf elements.
func (d *document) count() int {
	switch d.depth {
	case 1:
		return len(d.d1)
	case 2:
		return jagged.Count2D(d.d2)
	default:
		return jagged.Count3D(d.d3)
	}
}

// openInput opens name for reading; "" and "-" mean stdin.
func (c *CLI) openInput(name string) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(c.in), nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, cliErrorf("openInput", err)
	}
	return f, nil
}

// readFile opens and decodes one input. depth > 0 forces the nesting level.
func (c *CLI) readFile(name string, depth int) (*document, error) {
	r, err := c.openInput(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := readDocument(r, depth)
	if err != nil {
		if name == "" {
			name = "-"
		}
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return doc, nil
}

// readDocument decodes a YAML (or JSON) array. null entries become absent
// (nil) rows. When depth is 0 it is detected from the node tree.
func readDocument(r io.Reader, depth int) (*document, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrInput)
		}
		return nil, fmt.Errorf("%v: %w", err, ErrInput)
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if depth == 0 {
		d, err := nodeDepth(node)
		if err != nil {
			return nil, err
		}
		depth = max(d, 1) // a bare null document is an empty depth-1 array
	}
	if depth > maxDepth {
		return nil, fmt.Errorf("depth %d exceeds %d: %w", depth, maxDepth, ErrDepth)
	}

	doc := &document{depth: depth}
	var err error
	switch depth {
	case 1:
		err = node.Decode(&doc.d1)
	case 2:
		err = node.Decode(&doc.d2)
	case 3:
		err = node.Decode(&doc.d3)
	default:
		return nil, fmt.Errorf("depth %d: %w", depth, ErrDepth)
	}
	if err != nil {
		return nil, fmt.Errorf("decode depth-%d array: %v: %w", depth, err, ErrInput)
	}

	return doc, nil
}

// nodeDepth returns the nesting level of n: 0 for a number, 1 for a flat
// sequence, 1+max(children) otherwise. A null or empty child counts as a
// row, i.e. depth 1. Mixing numbers and sequences at one level is an error.
func nodeDepth(n *yaml.Node) (int, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return 0, nil
	case yaml.AliasNode:
		return nodeDepth(n.Alias)
	case yaml.SequenceNode:
		// handled below
	default:
		return 0, fmt.Errorf("line %d: expected a sequence or number: %w", n.Line, ErrInput)
	}

	deepest, scalars, rows := 0, 0, 0
	for _, child := range n.Content {
		if isNull(child) {
			rows++
			deepest = max(deepest, 1)
			continue
		}
		d, err := nodeDepth(child)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			scalars++
		} else {
			rows++
		}
		deepest = max(deepest, d)
	}
	if scalars > 0 && rows > 0 {
		return 0, fmt.Errorf("line %d: numbers and rows mixed at one level: %w", n.Line, ErrInput)
	}
	if deepest+1 > maxDepth {
		return 0, fmt.Errorf("line %d: nesting deeper than %d: %w", n.Line, maxDepth, ErrDepth)
	}

	return deepest + 1, nil
}

// isNull reports whether n is a YAML null (null, ~ or empty).
func isNull(n *yaml.Node) bool {
	return n.Kind == yaml.ScalarNode && n.ShortTag() == "!!null"
}
