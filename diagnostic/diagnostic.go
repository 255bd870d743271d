/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package diagnostic provides positioned errors for step expressions.
//
// Every positioned error renders the offending source line followed by a
// pointer line, a one-line problem statement and a one-line remedy:
//
//	This expression has a problem at column 8:
//
//	I have {int cucumbers
//	       ^
//	The '{' does not have a matching '}'.
//	If you did not intend to use a parameter you can use '\{' to escape the parameter
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Error is a problem located at a span of an expression's source.
// Start and End are codepoint offsets; End is exclusive.
type Error struct {
	// Kind is the sentinel this error unwraps to.
	Kind error

	// Source is the expression as written.
	Source string

	Start int
	End   int

	// Problem describes what is wrong.
	Problem string

	// Remedy suggests how to fix it.
	Remedy string
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "This expression has a problem at column %d:\n\n", e.Column())
	sb.WriteString(e.Source)
	sb.WriteByte('\n')
	sb.WriteString(Pointer(e.Source, e.Start, e.End))
	sb.WriteByte('\n')
	sb.WriteString(e.Problem)
	sb.WriteString(".\n")
	sb.WriteString(e.Remedy)
	return sb.String()
}

// Unwrap returns the sentinel kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// Column returns the 1-based column of the start of the span.
func (e *Error) Column() int {
	return e.Start + 1
}

// Pointer renders a caret under source[start], with dashes and a closing
// caret when the span covers more than one character. Offsets are codepoints.
// Columns are measured in terminal cells so wide characters stay aligned.
func Pointer(source string, start, end int) string {
	runes := []rune(source)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	var sb strings.Builder
	for _, r := range runes[:start] {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", uniseg.StringWidth(string(r))))
	}
	sb.WriteByte('^')
	if end-start > 1 {
		width := uniseg.StringWidth(string(runes[start:end]))
		if width > 2 {
			sb.WriteString(strings.Repeat("-", width-2))
		}
		sb.WriteByte('^')
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
