package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/convert"
	"github.com/katalvlaran/ragged/format"
)

// Conversion targets accepted by --to.
const (
	toInt  = "int"
	toBool = "bool"
)

// convertCommand narrows every value to an integer (truncating toward zero)
// or to a boolean (non-zero → true), keeping the nested shape.
func (c *CLI) convertCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert --to int|bool [file]",
		Short: "Truncate values to integers or map them to booleans",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if to != toInt && to != toBool {
				return cliErrorf("convert", fmt.Errorf("--to %q (want %s or %s): %w", to, toInt, toBool, ErrConfig))
			}
			doc, err := c.readFile(fileArg(args), c.depth)
			if err != nil {
				return cliErrorf("convert", err)
			}
			loggerFromContext(cmd.Context()).Debug("converting", "to", to, "depth", doc.depth, "elements", doc.count())

			if to == toInt {
				err = writeConverted(c.out, doc, convert.ToInt[float64], convert.ToInt2D[float64], convert.ToInt3D[float64], c.cfg.formatOptions())
			} else {
				err = writeConverted(c.out, doc, convert.ToBool[float64], convert.ToBool2D[float64], convert.ToBool3D[float64], c.cfg.formatOptions())
			}
			return err
		},
	}

	cmd.Flags().StringVar(&to, "to", toInt, "target type: int or bool")

	return cmd
}

// writeConverted applies the depth-matching conversion and renders the result.
func writeConverted[U any](
	w io.Writer,
	doc *document,
	conv1 func([]float64) []U,
	conv2 func([][]float64) [][]U,
	conv3 func([][][]float64) [][][]U,
	opts []format.Option,
) error {
	var err error
	switch doc.depth {
	case 1:
		err = format.Write1D(w, conv1(doc.d1), opts...)
	case 2:
		err = format.Write2D(w, conv2(doc.d2), opts...)
	default:
		err = format.Write3D(w, conv3(doc.d3), opts...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
