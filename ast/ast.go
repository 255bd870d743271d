/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package ast defines the syntax tree of a step expression.
//
// Node is a closed set: only the types in this package implement it, and
// consumers switch over them exhaustively.
package ast

import (
	"fmt"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind int

const (
	KindExpression Kind = iota
	KindText
	KindOptional
	KindAlternation
	KindAlternative
	KindParameter
)

func (k Kind) String() string {
	switch k {
	case KindExpression:
		return "expression"
	case KindText:
		return "text"
	case KindOptional:
		return "optional"
	case KindAlternation:
		return "alternation"
	case KindAlternative:
		return "alternative"
	case KindParameter:
		return "parameter"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Span is a codepoint range of the source; End is exclusive.
type Span struct {
	Start int
	End   int
}

// Node is a syntax tree node.
type Node interface {
	Kind() Kind
	Span() Span
	node()
}

// Expression is the root of the tree.
type Expression struct {
	Pos   Span
	Nodes []Node
}

// Text is a literal run of characters, with escapes already resolved.
type Text struct {
	Pos   Span
	Value string
}

// Optional is "(text)". After parsing, its nodes are always Text.
type Optional struct {
	Pos   Span
	Nodes []Node
}

// Alternation is "a/b/c". It always holds at least two alternatives.
type Alternation struct {
	Pos          Span
	Alternatives []*Alternative
}

// Alternative is one branch of an Alternation.
type Alternative struct {
	Pos   Span
	Nodes []Node
}

// Parameter is "{name}". Name is empty for the anonymous parameter "{}".
type Parameter struct {
	Pos  Span
	Name string
}

func (*Expression) Kind() Kind  { return KindExpression }
func (*Text) Kind() Kind        { return KindText }
func (*Optional) Kind() Kind    { return KindOptional }
func (*Alternation) Kind() Kind { return KindAlternation }
func (*Alternative) Kind() Kind { return KindAlternative }
func (*Parameter) Kind() Kind   { return KindParameter }

func (n *Expression) Span() Span  { return n.Pos }
func (n *Text) Span() Span        { return n.Pos }
func (n *Optional) Span() Span    { return n.Pos }
func (n *Alternation) Span() Span { return n.Pos }
func (n *Alternative) Span() Span { return n.Pos }
func (n *Parameter) Span() Span   { return n.Pos }

func (*Expression) node()  {}
func (*Text) node()        {}
func (*Optional) node()    {}
func (*Alternation) node() {}
func (*Alternative) node() {}
func (*Parameter) node()   {}

// Children returns the direct children of n, in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Expression:
		return n.Nodes
	case *Optional:
		return n.Nodes
	case *Alternative:
		return n.Nodes
	case *Alternation:
		out := make([]Node, len(n.Alternatives))
		for i, alt := range n.Alternatives {
			out[i] = alt
		}
		return out
	case *Text, *Parameter:
		return nil
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", n))
	}
}

// Walk visits n and its descendants depth-first, stopping a branch when fn
// returns false.
func Walk(n Node, fn func(Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range Children(n) {
		Walk(c, fn)
	}
}

// Parameters returns the parameter nodes of n in source order.
func Parameters(n Node) []*Parameter {
	var out []*Parameter
	Walk(n, func(n Node) bool {
		if p, ok := n.(*Parameter); ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// Dump renders the tree one node per line, indented by depth.
// Used in tests and by the CLI's --ast flag.
func Dump(n Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n Node, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
	span := n.Span()
	fmt.Fprintf(sb, "%s[%d:%d]", n.Kind(), span.Start, span.End)
	switch n := n.(type) {
	case *Text:
		fmt.Fprintf(sb, " %q", n.Value)
	case *Parameter:
		fmt.Fprintf(sb, " %q", n.Name)
	}
	sb.WriteByte('\n')
	for _, c := range Children(n) {
		dump(sb, c, depth+1)
	}
}
