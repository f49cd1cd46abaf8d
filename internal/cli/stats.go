package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/format"
	"github.com/katalvlaran/ragged/jagged"
)

// stat is one "key: value" line of the stats report.
type stat struct {
	key string
	val any
}

// statsCommand reports structural statistics of the input.
//
// Output is one "key: value" pair per line:
//
//	depth: 2
//	count: 6
//	rows: 4
//	min_row_len: 0
//	max_row_len: 3
//	row_lens: [3, 2, 0, 1]
func (c *CLI) statsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats [file]",
		Short: "Report element count and row-length statistics",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.readFile(fileArg(args), c.depth)
			if err != nil {
				return cliErrorf("stats", err)
			}
			return writeStats(c.out, collectStats(doc))
		},
	}
}

// collectStats computes the report lines for doc.
func collectStats(doc *document) []stat {
	stats := []stat{
		{"depth", doc.depth},
		{"count", doc.count()},
	}
	switch doc.depth {
	case 2:
		stats = append(stats,
			stat{"rows", len(doc.d2)},
			stat{"min_row_len", jagged.MinRowLen(doc.d2)},
			stat{"max_row_len", jagged.MaxRowLen(doc.d2)},
			stat{"row_lens", format.Format1D(jagged.RowLens(doc.d2))},
		)
	case 3:
		blockCounts := make([]int, len(doc.d3))
		for i, block := range doc.d3 {
			blockCounts[i] = jagged.Count2D(block)
		}
		stats = append(stats,
			stat{"blocks", len(doc.d3)},
			stat{"block_rows", format.Format1D(jagged.RowLens(doc.d3))},
			stat{"block_counts", format.Format1D(blockCounts)},
		)
	}
	return stats
}

func writeStats(w io.Writer, stats []stat) error {
	for _, s := range stats {
		if _, err := fmt.Fprintf(w, "%s: %v\n", s.key, s.val); err != nil {
			return err
		}
	}
	return nil
}
