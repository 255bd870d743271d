/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"cmp"
	"unicode"

	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

// matcher finds word-bounded occurrences of one regexp of one parameter
// type. Offsets are codepoints into text.
type matcher struct {
	parameterType *paramtype.ParameterType
	regexp        pattern.Regexp
	text          []rune

	found bool
	start int
	end   int
}

// advanceTo returns the first word-bounded, non-empty occurrence starting
// the search at pos or later.
func (m matcher) advanceTo(pos int) matcher {
	m.found = false
	for p := pos; p < len(m.text); p++ {
		subs := m.regexp.FindSubmatch(string(m.text[p:]))
		if subs == nil {
			break
		}
		start, end := p+subs[0].Start, p+subs[0].End
		if start == end || !m.fullWord(start, end) {
			continue
		}
		m.found, m.start, m.end = true, start, end
		return m
	}
	return m
}

func (m matcher) fullWord(start, end int) bool {
	return (start == 0 || isBoundary(m.text[start-1])) &&
		(end == len(m.text) || isBoundary(m.text[end]))
}

func isBoundary(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
}

// compareMatchers ranks earlier, then longer, then heavier matches first.
func compareMatchers(a, b matcher) int {
	if c := cmp.Compare(a.start, b.start); c != 0 {
		return c
	}
	if c := cmp.Compare(b.end-b.start, a.end-a.start); c != 0 {
		return c
	}
	return cmp.Compare(b.parameterType.Weight, a.parameterType.Weight)
}
