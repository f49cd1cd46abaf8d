package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/jagged"
)

// reshapeOpts holds the command-line flags for the reshape command.
type reshapeOpts struct {
	rows int // block height; 0 means reshape to 2-D
	cols int // row width
}

// reshapeCommand cuts a flat array into cols-wide rows, or into rows×cols
// blocks when --rows is given.
func (c *CLI) reshapeCommand() *cobra.Command {
	var opts reshapeOpts

	cmd := &cobra.Command{
		Use:   "reshape [file]",
		Short: "Cut a flat array into rows (--cols) or blocks (--rows, --cols)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReshape(cmd, fileArg(args), opts, cmd.Flags().Changed("rows"))
		},
	}

	cmd.Flags().IntVar(&opts.cols, "cols", 0, "elements per row (required, > 0)")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "rows per block; produces a depth-3 result")
	_ = cmd.MarkFlagRequired("cols")

	return cmd
}

func (c *CLI) runReshape(cmd *cobra.Command, name string, opts reshapeOpts, blocks bool) error {
	logger := loggerFromContext(cmd.Context())

	doc, err := c.readFile(name, 1)
	if err != nil {
		return cliErrorf("reshape", err)
	}

	p := newProgress(logger)
	out := &document{}
	if blocks {
		out.depth = 3
		out.d3, err = jagged.Reshape3D(doc.d1, opts.rows, opts.cols)
	} else {
		out.depth = 2
		out.d2, err = jagged.Reshape2D(doc.d1, opts.cols)
	}
	if err != nil {
		return cliErrorf("reshape", err)
	}
	p.done("reshaped", "elements", doc.count(), "depth", out.depth)

	return c.render(out)
}

// fileArg returns the optional single file argument ("" for stdin).
func fileArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// requireDepth rejects documents whose depth is not one of allowed.
func requireDepth(doc *document, allowed ...int) error {
	for _, d := range allowed {
		if doc.depth == d {
			return nil
		}
	}
	return fmt.Errorf("got depth %d, want one of %v: %w", doc.depth, allowed, ErrDepth)
}
