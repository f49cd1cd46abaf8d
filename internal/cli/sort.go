package cli

import (
	"cmp"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/jagged"
)

// sortCommand sorts every value of the input while keeping its nested shape.
func (c *CLI) sortCommand() *cobra.Command {
	var desc bool

	cmd := &cobra.Command{
		Use:   "sort [file]",
		Short: "Sort all values across rows, keeping every row's length",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readFile(fileArg(args), c.depth)
			if err != nil {
				return cliErrorf("sort", err)
			}

			op := jagged.LiftOp(slices.Sort[[]float64])
			if desc {
				op = jagged.LiftOp(func(flat []float64) {
					slices.SortFunc(flat, func(a, b float64) int { return cmp.Compare(b, a) })
				})
			}

			p := newProgress(loggerFromContext(cmd.Context()))
			switch doc.depth {
			case 1:
				err = op(doc.d1)
			case 2:
				err = jagged.FlatOp2D(doc.d2, op)
			default:
				err = jagged.FlatOp3D(doc.d3, op)
			}
			if err != nil {
				return cliErrorf("sort", err)
			}
			p.done("sorted", "elements", doc.count(), "desc", desc)

			return c.render(doc)
		},
	}

	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")

	return cmd
}
