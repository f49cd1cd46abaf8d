// SPDX-License-Identifier: MIT

package format

import (
	"fmt"
	"io"
	"strings"
)

// Format1D renders s as "[a, b, c]", or the null marker when s is nil.
func Format1D[T any](s []T, opts ...Option) string {
	var sb strings.Builder
	o := gatherOptions(opts...)
	writeRow(&sb, s, &o)

	return sb.String()
}

// Format2D renders s as "[[a, b], null, []]".
func Format2D[T any](s [][]T, opts ...Option) string {
	var sb strings.Builder
	o := gatherOptions(opts...)
	writeOuter(&sb, s, &o, func(row []T) { writeRow(&sb, row, &o) })

	return sb.String()
}

// Format3D renders s as "[[[a], [b]], null, [[]]]". In multiline mode each
// block goes on its own line; its rows stay on that line.
func Format3D[T any](s [][][]T, opts ...Option) string {
	var sb strings.Builder
	o := gatherOptions(opts...)
	writeOuter(&sb, s, &o, func(block [][]T) {
		writeList(&sb, block, &o, func(row []T) { writeRow(&sb, row, &o) })
	})

	return sb.String()
}

// Write1D writes Format1D(s, opts...) to w.
func Write1D[T any](w io.Writer, s []T, opts ...Option) error {
	_, err := io.WriteString(w, Format1D(s, opts...))
	return err
}

// Write2D writes Format2D(s, opts...) to w.
func Write2D[T any](w io.Writer, s [][]T, opts ...Option) error {
	_, err := io.WriteString(w, Format2D(s, opts...))
	return err
}

// Write3D writes Format3D(s, opts...) to w.
func Write3D[T any](w io.Writer, s [][][]T, opts ...Option) error {
	_, err := io.WriteString(w, Format3D(s, opts...))
	return err
}

// writeRow renders a leaf row on a single line.
func writeRow[T any](sb *strings.Builder, row []T, o *Options) {
	writeList(sb, row, o, func(v T) { fmt.Fprintf(sb, o.verb, v) })
}

// writeList renders a nil list as the null marker and anything else as
// "[e0<sep>e1...]" using elem for every entry.
func writeList[E any](sb *strings.Builder, list []E, o *Options, elem func(E)) {
	if list == nil {
		sb.WriteString(o.null)
		return
	}
	sb.WriteByte('[')
	for i, e := range list {
		if i > 0 {
			sb.WriteString(o.separator)
		}
		elem(e)
	}
	sb.WriteByte(']')
}

// writeOuter is writeList for the outermost level, honoring multiline mode.
func writeOuter[E any](sb *strings.Builder, list []E, o *Options, elem func(E)) {
	if !o.multiline || len(list) == 0 {
		writeList(sb, list, o, elem)
		return
	}
	sep := strings.TrimRight(o.separator, " ")
	sb.WriteString("[\n")
	for i, e := range list {
		sb.WriteString(o.indent)
		elem(e)
		if i < len(list)-1 {
			sb.WriteString(sep)
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(']')
}
