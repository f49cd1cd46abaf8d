// SPDX-License-Identifier: MIT
// Package: format
//
// options.go: functional options for the text renderer.
//
// Design:
//   - Option / Options with unexported fields; public entry points take
//     ...Option and resolve them once via gatherOptions.
//   - WithX constructors panic only on nonsensical values (programmer error).
//   - Later options override earlier ones.

package format

import "strings"

// Defaults (single source of truth).
const (
	// DefaultNull is printed for an absent row.
	DefaultNull = "null"

	// DefaultSeparator joins elements and rows.
	DefaultSeparator = ", "

	// DefaultVerb formats a single element through fmt.
	DefaultVerb = "%v"

	// DefaultIndent prefixes each outer row in multiline mode.
	DefaultIndent = "  "
)

const (
	panicVerbInvalid      = "format: WithVerb: verb must contain a single % directive"
	panicSeparatorInvalid = "format: WithSeparator: separator must not contain a newline"
)

// Option mutates Options.
type Option func(*Options)

// Options is the resolved renderer configuration.
type Options struct {
	null      string
	separator string
	verb      string
	indent    string
	multiline bool
}

// WithNull sets the marker printed for absent rows (may be empty).
func WithNull(marker string) Option {
	return func(o *Options) { o.null = marker }
}

// WithSeparator sets the string placed between elements and between rows.
// Panics if sep contains a newline; use WithMultiline for line breaks.
func WithSeparator(sep string) Option {
	if strings.ContainsRune(sep, '\n') {
		panic(panicSeparatorInvalid)
	}

	return func(o *Options) { o.separator = sep }
}

// WithVerb sets the fmt verb used for each element, e.g. "%.3f" or "%q".
// Panics unless verb holds exactly one directive (a literal "%%" aside).
func WithVerb(verb string) Option {
	if strings.Count(strings.ReplaceAll(verb, "%%", ""), "%") != 1 {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// WithMultiline prints every outer row on its own, indented line.
// It has no effect on depth-1 input.
func WithMultiline() Option {
	return func(o *Options) { o.multiline = true }
}

// gatherOptions applies user options over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		null:      DefaultNull,
		separator: DefaultSeparator,
		verb:      DefaultVerb,
		indent:    DefaultIndent,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
