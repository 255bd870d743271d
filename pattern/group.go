/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

// Group is a capture group of one match, nested the way the groups nest in
// the pattern source.
type Group struct {
	// Value is the captured text, or nil if the group did not participate.
	Value *string

	// Start and End are codepoint offsets, or -1 when Value is nil.
	Start int
	End   int

	Children []*Group
}

// Values returns the values of the children, or the group's own value when
// it has no children.
func (g *Group) Values() []*string {
	if len(g.Children) == 0 {
		return []*string{g.Value}
	}
	out := make([]*string, len(g.Children))
	for i, c := range g.Children {
		out[i] = c.Value
	}
	return out
}

// Text returns the captured text, or the empty string.
func (g *Group) Text() string {
	if g.Value == nil {
		return ""
	}
	return *g.Value
}

// GroupBuilder is the shape of one capturing group of a pattern,
// independent of any match.
type GroupBuilder struct {
	// Source is the pattern text between the group's parentheses. It is
	// empty for the root, which stands for the whole match.
	Source   string
	Children []*GroupBuilder

	capturing bool
}

// Capturing reports whether the group produces a match slot.
func (b *GroupBuilder) Capturing() bool {
	return b.capturing
}

func (b *GroupBuilder) add(child *GroupBuilder) {
	b.Children = append(b.Children, child)
}

func (b *GroupBuilder) moveChildrenTo(parent *GroupBuilder) {
	parent.Children = append(parent.Children, b.Children...)
	b.Children = nil
}

// build walks the builder depth-first, taking one submatch per capturing
// group in the same order the engine numbers them.
func (b *GroupBuilder) build(subs []Submatch, next *int) *Group {
	index := *next
	*next++
	children := make([]*Group, len(b.Children))
	for i, c := range b.Children {
		children[i] = c.build(subs, next)
	}

	sub := Unmatched
	if index < len(subs) {
		sub = subs[index]
	}
	g := &Group{Start: sub.Start, End: sub.End, Children: children}
	if sub.Matched {
		v := sub.Value
		g.Value = &v
	}
	return g
}
