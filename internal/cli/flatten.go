package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/jagged"
)

// flattenCommand concatenates the rows of a depth-2 or depth-3 array.
func (c *CLI) flattenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flatten [file]",
		Short: "Concatenate all rows of a depth-2/3 array, skipping absent rows",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readFile(fileArg(args), c.depth)
			if err != nil {
				return cliErrorf("flatten", err)
			}
			if err := requireDepth(doc, 2, 3); err != nil {
				return cliErrorf("flatten", err)
			}

			out := &document{depth: 1}
			if doc.depth == 2 {
				out.d1 = jagged.Flatten2D(doc.d2)
			} else {
				out.d1 = jagged.Flatten3D(doc.d3)
			}
			loggerFromContext(cmd.Context()).Debug("flattened", "from", doc.depth, "elements", len(out.d1))

			return c.render(out)
		},
	}
}
