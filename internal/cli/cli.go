// Package cli implements the jagged command-line interface.
//
// Commands read numeric jagged arrays (depth 1 to 3) as YAML or JSON from a
// file or stdin, run one engine operation and print the result in the
// bracketed text form produced by package format.
//
// # Commands
//
//   - reshape: cut a flat array into rows (--cols) or blocks (--rows --cols)
//   - flatten: concatenate the rows of a depth-2/3 array
//   - stats:   element count and row-length statistics
//   - sort:    sort all values while keeping the nested shape
//   - zip:     combine 2 or 3 arrays element-wise (truncate or --pad)
//   - convert: truncate to integers or map to booleans
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is carried through context.Context.
//
// # Configuration
//
// An optional TOML file (--config, or $JAGGED_CONFIG) supplies defaults for
// the [format] and [zip] tables; explicit flags win over the file.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ragged/format"
)

var version = "dev" // overridden via SetVersion

// SetVersion sets the version string displayed by --version.
func SetVersion(v string) { version = v }

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in  io.Reader
	out io.Writer

	configPath string
	depth      int
	fmtFlags   FormatConfig
	cfg        Config
}

// New creates a CLI reading stdin from in, printing results to out and
// logging to logOut at level.
func New(in io.Reader, out, logOut io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logOut, level),
		in:     in,
		out:    out,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "jagged",
		Short:         "Reshape, flatten, zip and measure jagged numeric arrays",
		Long:          `jagged runs the ragged-array engine over YAML/JSON input: reshape flat data into rows or blocks, flatten it back, zip several arrays element-wise, sort values in place and report row statistics.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.resolveConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&c.configPath, "config", "", "TOML config file (default $"+configEnv+")")
	pf.IntVar(&c.depth, "depth", 0, "input nesting depth 1-3 (default: detect)")
	pf.StringVar(&c.fmtFlags.Null, "null", "", "marker printed for absent rows")
	pf.StringVar(&c.fmtFlags.Separator, "separator", "", "separator between elements")
	pf.StringVar(&c.fmtFlags.Verb, "verb", "", "fmt verb for elements, e.g. %.2f")
	pf.BoolVar(&c.fmtFlags.Multiline, "multiline", false, "print each outer row on its own line")

	root.AddCommand(c.reshapeCommand())
	root.AddCommand(c.flattenCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.sortCommand())
	root.AddCommand(c.zipCommand())
	root.AddCommand(c.convertCommand())

	return root
}

// resolveConfig loads the config file and lays explicitly set flags over it.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("null") {
		cfg.Format.Null = c.fmtFlags.Null
	}
	if flags.Changed("separator") {
		cfg.Format.Separator = c.fmtFlags.Separator
	}
	if flags.Changed("verb") {
		cfg.Format.Verb = c.fmtFlags.Verb
	}
	if flags.Changed("multiline") {
		cfg.Format.Multiline = c.fmtFlags.Multiline
	}
	if c.depth < 0 || c.depth > maxDepth {
		return cliErrorf("--depth", fmt.Errorf("%d not in 0..%d: %w", c.depth, maxDepth, ErrConfig))
	}
	if err := cfg.validate(); err != nil {
		return cliErrorf("flags", err)
	}

	c.cfg = cfg
	c.Logger.Debug("config resolved", "path", c.configPath, "op", cfg.Zip.Op, "pad", cfg.Zip.Pad)
	return nil
}

// render prints doc followed by a newline using the configured format options.
func (c *CLI) render(doc *document) error {
	opts := c.cfg.formatOptions()
	var err error
	switch doc.depth {
	case 1:
		err = format.Write1D(c.out, doc.d1, opts...)
	case 2:
		err = format.Write2D(c.out, doc.d2, opts...)
	default:
		err = format.Write3D(c.out, doc.d3, opts...)
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.out)
	return err
}
