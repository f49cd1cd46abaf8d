package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/jagged"
)

// zipOpts holds the command-line flags for the zip command.
type zipOpts struct {
	op   string    // combiner name, see ops.go
	pad  bool      // pad to the longest input instead of truncating
	fill []float64 // per-source fill values for --pad
}

// zipCommand combines two or three arrays of equal depth element-wise.
//
// Defaults come from the [zip] config table:
//   - op: add
//   - pad: false (truncate to the shortest input)
//   - fill: 0 for every source
func (c *CLI) zipCommand() *cobra.Command {
	var opts zipOpts

	cmd := &cobra.Command{
		Use:   "zip fileA fileB [fileC]",
		Short: "Combine 2 or 3 arrays element-wise (truncate, or --pad with fills)",
		Args:  cobra.RangeArgs(2, maxSources),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("op") {
				opts.op = c.cfg.Zip.Op
			}
			if !flags.Changed("pad") {
				opts.pad = c.cfg.Zip.Pad
			}
			if !flags.Changed("fill") {
				opts.fill = c.cfg.Zip.Fill
			}
			return c.runZip(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.op, "op", opAdd, "combiner: "+opNames())
	cmd.Flags().BoolVar(&opts.pad, "pad", false, "pad shorter inputs with fill values instead of truncating")
	cmd.Flags().Float64SliceVar(&opts.fill, "fill", nil, "fill value per source for --pad, e.g. 0,10")

	return cmd
}

func (c *CLI) runZip(cmd *cobra.Command, names []string, opts zipOpts) error {
	logger := loggerFromContext(cmd.Context())

	combine, ok := combiners[opts.op]
	if !ok {
		return cliErrorf("zip", fmt.Errorf("--op %q unknown (want one of %s): %w", opts.op, opNames(), ErrConfig))
	}
	if len(opts.fill) > len(names) {
		return cliErrorf("zip", fmt.Errorf("%d fill values for %d inputs: %w", len(opts.fill), len(names), ErrConfig))
	}
	var fill [maxSources]float64
	copy(fill[:], opts.fill)

	docs := make([]*document, len(names))
	for i, name := range names {
		doc, err := c.readFile(name, c.depth)
		if err != nil {
			return cliErrorf("zip", err)
		}
		if i > 0 && doc.depth != docs[0].depth {
			return cliErrorf("zip", fmt.Errorf("%s has depth %d, %s has depth %d: %w",
				name, doc.depth, names[0], docs[0].depth, ErrDepth))
		}
		docs[i] = doc
	}

	p := newProgress(logger)
	out, err := zipDocuments(docs, opts.pad, fill, combine)
	if err != nil {
		return cliErrorf("zip", err)
	}
	p.done("zipped", "inputs", len(docs), "depth", out.depth, "pad", opts.pad, "op", opts.op)

	return c.render(out)
}

// zipDocuments dispatches to the jagged zip matching the source count,
// depth and length policy. Three sources fold as combine(combine(a, b), c).
func zipDocuments(docs []*document, pad bool, fill [maxSources]float64, combine func(x, y float64) float64) (*document, error) {
	f2 := jagged.Lift2(combine)
	f3 := jagged.Lift3(func(x, y, z float64) float64 { return combine(combine(x, y), z) })

	a, b := docs[0], docs[1]
	out := &document{depth: a.depth}
	var err error

	if len(docs) == 2 {
		switch {
		case a.depth == 1 && pad:
			out.d1, err = jagged.ZipPad(a.d1, b.d1, fill[0], fill[1], f2)
		case a.depth == 1:
			out.d1, err = jagged.Zip(a.d1, b.d1, f2)
		case a.depth == 2 && pad:
			out.d2, err = jagged.ZipPad2D(a.d2, b.d2, fill[0], fill[1], f2)
		case a.depth == 2:
			out.d2, err = jagged.Zip2D(a.d2, b.d2, f2)
		case pad:
			out.d3, err = jagged.ZipPad3D(a.d3, b.d3, fill[0], fill[1], f2)
		default:
			out.d3, err = jagged.Zip3D(a.d3, b.d3, f2)
		}
		return out, err
	}

	c := docs[2]
	switch {
	case a.depth == 1 && pad:
		out.d1, err = jagged.ZipTriplePad(a.d1, b.d1, c.d1, fill[0], fill[1], fill[2], f3)
	case a.depth == 1:
		out.d1, err = jagged.ZipTriple(a.d1, b.d1, c.d1, f3)
	case a.depth == 2 && pad:
		out.d2, err = jagged.ZipTriplePad2D(a.d2, b.d2, c.d2, fill[0], fill[1], fill[2], f3)
	case a.depth == 2:
		out.d2, err = jagged.ZipTriple2D(a.d2, b.d2, c.d2, f3)
	case pad:
		out.d3, err = jagged.ZipTriplePad3D(a.d3, b.d3, c.d3, fill[0], fill[1], fill[2], f3)
	default:
		out.d3, err = jagged.ZipTriple3D(a.d3, b.d3, c.d3, f3)
	}
	return out, err
}
