package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrInput indicates the input document could not be read as a numeric jagged array.
	ErrInput = errors.New("cli: invalid input")

	// ErrDepth indicates an input depth the command cannot work with.
	ErrDepth = errors.New("cli: unsupported depth")

	// ErrConfig indicates an invalid configuration file or flag value.
	ErrConfig = errors.New("cli: invalid config")
)

// cliErrorf tags err with the command or stage name.
func cliErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
