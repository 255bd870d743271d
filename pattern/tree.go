/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

// TreeRegexp is a compiled pattern together with the nesting of its
// capturing groups. It is immutable and safe for concurrent use.
type TreeRegexp struct {
	regexp  Regexp
	builder *GroupBuilder
}

// NewTreeRegexp compiles expr with backend and indexes its groups.
// A nil backend selects [Default].
func NewTreeRegexp(backend Backend, expr string) (*TreeRegexp, error) {
	if backend == nil {
		var err error
		if backend, err = Default(); err != nil {
			return nil, err
		}
	}
	re, err := backend.Compile(expr)
	if err != nil {
		return nil, err
	}
	return &TreeRegexp{regexp: re, builder: Index(expr)}, nil
}

// MustCompile is like NewTreeRegexp but panics on error.
func MustCompile(backend Backend, expr string) *TreeRegexp {
	t, err := NewTreeRegexp(backend, expr)
	if err != nil {
		panic(err)
	}
	return t
}

// Regexp returns the compiled pattern.
func (t *TreeRegexp) Regexp() Regexp {
	return t.regexp
}

// Source returns the pattern source.
func (t *TreeRegexp) Source() string {
	return t.regexp.String()
}

// Builder returns the root of the group tree.
func (t *TreeRegexp) Builder() *GroupBuilder {
	return t.builder
}

// Match returns the group tree of the first match in text, or nil if the
// pattern does not match.
func (t *TreeRegexp) Match(text string) *Group {
	subs := t.regexp.FindSubmatch(text)
	if subs == nil {
		return nil
	}
	next := 0
	return t.builder.build(subs, &next)
}

// Index walks the surface syntax of a pattern and returns the tree of its
// capturing groups. The root stands for the whole match. Non-capturing
// groups are transparent: their capturing children attach to the nearest
// capturing ancestor. Parentheses that are escaped, quoted by \Q...\E or
// inside a character class are ignored.
func Index(source string) *GroupBuilder {
	runes := []rune(source)
	root := &GroupBuilder{capturing: true}
	stack := []*GroupBuilder{root}
	var starts []int

	escaping := false
	charClass := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case escaping && c == 'Q' && !charClass:
			// An unterminated \Q quotes the rest of the pattern.
			end, ok := find(runes, i+1, `\E`)
			if !ok {
				end = len(runes) - 1
			}
			i = end
			escaping = false
			continue
		case escaping:
		case c == '[' && charClass && i+1 < len(runes) && runes[i+1] == ':':
			// [:alpha:] and friends
			if end, ok := find(runes, i+2, ":]"); ok {
				i = end
				continue
			}
		case c == '[' && !charClass:
			charClass = true
			// A ']' right after '[' or '[^' is a literal member.
			if i+1 < len(runes) && runes[i+1] == '^' {
				i++
			}
			if i+1 < len(runes) && runes[i+1] == ']' {
				i++
			}
		case c == ']' && charClass:
			charClass = false
		case c == '(' && !charClass:
			starts = append(starts, i)
			stack = append(stack, &GroupBuilder{capturing: !isNonCapturing(runes, i)})
		case c == ')' && !charClass && len(stack) > 1:
			b := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			start := starts[len(starts)-1]
			starts = starts[:len(starts)-1]
			parent := stack[len(stack)-1]
			if b.capturing {
				b.Source = string(runes[start+1 : i])
				parent.add(b)
			} else {
				b.moveChildrenTo(parent)
			}
		}
		escaping = c == '\\' && !escaping
	}
	return root
}

// find returns the index of the last rune of the first occurrence of end
// at or after from.
func find(runes []rune, from int, end string) (int, bool) {
	want := []rune(end)
	for j := from; j+len(want) <= len(runes); j++ {
		if string(runes[j:j+len(want)]) == end {
			return j + len(want) - 1, true
		}
	}
	return 0, false
}

// isNonCapturing classifies the group opened at runes[i]. Every "(?" form is
// non-capturing except the named groups "(?P<name>" and "(?<name>"; the
// lookbehinds "(?<=" and "(?<!" are non-capturing.
func isNonCapturing(runes []rune, i int) bool {
	at := func(j int) rune {
		if j < len(runes) {
			return runes[j]
		}
		return 0
	}
	if at(i+1) != '?' {
		return false
	}
	switch at(i + 2) {
	case '<':
		next := at(i + 3)
		return next == '=' || next == '!'
	case 'P':
		return at(i+3) != '<'
	}
	return true
}
