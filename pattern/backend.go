/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package pattern runs compiled step patterns against text and rebuilds the
// nesting of their capture groups.
//
// The regular expression engine is pluggable. The built-in back end is the
// standard library's RE2; others register themselves with [Register] and
// are resolved once per [Resolver].
package pattern

// Backend compiles pattern source for one regular expression dialect.
type Backend interface {
	// Name identifies the back end in configuration, e.g. "re2".
	Name() string

	// Compile compiles a pattern.
	Compile(expr string) (Regexp, error)

	// QuoteMeta escapes s so that it matches itself literally.
	QuoteMeta(s string) string
}

// Regexp is a compiled pattern.
type Regexp interface {
	// String returns the source the pattern was compiled from.
	String() string

	// FindSubmatch returns the leftmost match of the pattern in text, and
	// one entry per capturing group numbered left to right. Entry 0 is the
	// whole match. It returns nil when there is no match.
	FindSubmatch(text string) []Submatch
}

// Submatch is one group of a match. Start and End are codepoint offsets into
// the matched text. A group that did not participate has Matched false and
// offsets of -1.
type Submatch struct {
	Value   string
	Start   int
	End     int
	Matched bool
}

// Unmatched is the Submatch of a group that did not participate.
var Unmatched = Submatch{Start: -1, End: -1}
