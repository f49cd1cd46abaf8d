package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/ragged/format"
)

// configEnv names the environment variable consulted when --config is not set.
const configEnv = "JAGGED_CONFIG"

// maxSources is the largest number of inputs the zip command combines.
const maxSources = 3

// Config is the optional TOML configuration file:
//
//	[format]
//	null = "~"
//	separator = ", "
//	verb = "%.2f"
//	multiline = true
//
//	[zip]
//	op = "add"
//	pad = true
//	fill = [0.0, 0.0, 0.0]
type Config struct {
	Format FormatConfig `toml:"format"`
	Zip    ZipConfig    `toml:"zip"`
}

// FormatConfig controls how results are rendered. Empty strings keep the
// renderer defaults.
type FormatConfig struct {
	Null      string `toml:"null"`
	Separator string `toml:"separator"`
	Verb      string `toml:"verb"`
	Multiline bool   `toml:"multiline"`
}

// ZipConfig holds defaults for the zip command.
type ZipConfig struct {
	Op   string    `toml:"op"`
	Pad  bool      `toml:"pad"`
	Fill []float64 `toml:"fill"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Zip: ZipConfig{Op: opAdd},
	}
}

// loadConfig reads path (or $JAGGED_CONFIG when path is empty) over the
// defaults. No path at all yields DefaultConfig. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		path = os.Getenv(configEnv)
	}
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, cliErrorf("loadConfig", fmt.Errorf("%s: %v: %w", path, err, ErrConfig))
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, cliErrorf("loadConfig", fmt.Errorf("%s: unknown keys %s: %w", path, strings.Join(keys, ", "), ErrConfig))
	}
	if err := cfg.validate(); err != nil {
		return cfg, cliErrorf("loadConfig", err)
	}

	return cfg, nil
}

// validate checks values the renderer and zip command would otherwise reject.
func (c Config) validate() error {
	if err := validateVerb(c.Format.Verb); err != nil {
		return err
	}
	if strings.ContainsRune(c.Format.Separator, '\n') {
		return fmt.Errorf("format.separator must not contain a newline: %w", ErrConfig)
	}
	if _, ok := combiners[c.Zip.Op]; !ok {
		return fmt.Errorf("zip.op %q unknown (want one of %s): %w", c.Zip.Op, opNames(), ErrConfig)
	}
	if len(c.Zip.Fill) > maxSources {
		return fmt.Errorf("zip.fill holds %d values, at most %d allowed: %w", len(c.Zip.Fill), maxSources, ErrConfig)
	}

	return nil
}

// validateVerb mirrors format.WithVerb's rule without panicking; "" is allowed.
func validateVerb(verb string) error {
	if verb == "" {
		return nil
	}
	if strings.Count(strings.ReplaceAll(verb, "%%", ""), "%") != 1 {
		return fmt.Errorf("format.verb %q must hold exactly one directive: %w", verb, ErrConfig)
	}

	return nil
}

// formatOptions translates the format table into renderer options.
func (c Config) formatOptions() []format.Option {
	var opts []format.Option
	if c.Format.Null != "" {
		opts = append(opts, format.WithNull(c.Format.Null))
	}
	if c.Format.Separator != "" {
		opts = append(opts, format.WithSeparator(c.Format.Separator))
	}
	if c.Format.Verb != "" {
		opts = append(opts, format.WithVerb(c.Format.Verb))
	}
	if c.Format.Multiline {
		opts = append(opts, format.WithMultiline())
	}

	return opts
}
