/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser builds syntax trees from step expressions.
package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/stepex/ast"
	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/token"
)

// IllegalNameCharacters may not appear in a parameter name.
const IllegalNameCharacters = `{}()\/`

// Parse tokenizes and parses source. Every grammar rule is checked before
// Parse returns, so a non-nil tree is always well formed.
func Parse(source string) (*ast.Expression, error) {
	tokens, err := token.Tokenize(source)
	if err != nil {
		return nil, err
	}
	p := &parser{source: source, tokens: tokens}

	consumed, nodes, err := between(expressionKind, token.StartOfLine, token.EndOfLine,
		[]parseFunc{(*parser).alternation, (*parser).optional, (*parser).parameter, (*parser).text})(p, 0)
	if err != nil {
		return nil, err
	}
	if consumed != len(tokens) {
		return nil, fmt.Errorf("%w: parser stopped at token %d of %d", diagnostic.ErrSyntax, consumed, len(tokens))
	}

	expr := nodes[0].(*ast.Expression)
	if err := p.check(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseFunc tries to parse at tokens[current]. Zero consumed means the
// function does not apply there.
type parseFunc func(p *parser, current int) (int, []ast.Node, error)

type nodeKind int

const (
	expressionKind nodeKind = iota
	optionalKind
	parameterKind
)

type parser struct {
	source string
	tokens []token.Token
}

func (p *parser) lookingAt(at int, typ token.Type) bool {
	if at < 0 {
		return typ == token.StartOfLine
	}
	if at >= len(p.tokens) {
		return typ == token.EndOfLine
	}
	return p.tokens[at].Type == typ
}

func (p *parser) lookingAtAny(at int, types ...token.Type) bool {
	for _, typ := range types {
		if p.lookingAt(at, typ) {
			return true
		}
	}
	return false
}

func span(t token.Token) ast.Span {
	return ast.Span{Start: t.Start, End: t.End}
}

func (p *parser) text(current int) (int, []ast.Node, error) {
	t := p.tokens[current]
	switch t.Type {
	case token.WhiteSpace, token.Text, token.EndParameter, token.EndOptional:
		return 1, []ast.Node{&ast.Text{Pos: span(t), Value: t.Text}}, nil
	case token.Alternation:
		return 0, nil, diagnostic.AlternationNotAllowedInOptional(p.source, t.Start, t.End)
	}
	return 0, nil, nil
}

func (p *parser) name(current int) (int, []ast.Node, error) {
	t := p.tokens[current]
	switch t.Type {
	case token.WhiteSpace, token.Text:
		return 1, []ast.Node{&ast.Text{Pos: span(t), Value: t.Text}}, nil
	case token.BeginParameter, token.EndParameter, token.BeginOptional, token.EndOptional, token.Alternation:
		return 0, nil, diagnostic.InvalidParameterTypeNameInNode(p.source, t.Start, t.End)
	}
	return 0, nil, nil
}

func (p *parser) parameter(current int) (int, []ast.Node, error) {
	return between(parameterKind, token.BeginParameter, token.EndParameter,
		[]parseFunc{(*parser).name})(p, current)
}

func (p *parser) optional(current int) (int, []ast.Node, error) {
	return between(optionalKind, token.BeginOptional, token.EndOptional,
		[]parseFunc{(*parser).optional, (*parser).parameter, (*parser).text})(p, current)
}

func (p *parser) alternativeSeparator(current int) (int, []ast.Node, error) {
	if !p.lookingAt(current, token.Alternation) {
		return 0, nil, nil
	}
	// A node-less Alternative marks the separator until the enclosing
	// alternation is split.
	return 1, []ast.Node{&ast.Alternative{Pos: span(p.tokens[current])}}, nil
}

// alternation parses "a/b" runs. An alternation only starts at the start of
// the line, after whitespace or right after a parameter, and runs until
// whitespace, the end of the line or the next parameter.
func (p *parser) alternation(current int) (int, []ast.Node, error) {
	if !p.lookingAtAny(current-1, token.StartOfLine, token.WhiteSpace, token.EndParameter) {
		return 0, nil, nil
	}
	consumed, nodes, err := p.until(current,
		[]parseFunc{(*parser).alternativeSeparator, (*parser).optional, (*parser).parameter, (*parser).text},
		token.WhiteSpace, token.EndOfLine, token.BeginParameter)
	if err != nil {
		return 0, nil, err
	}
	hasSeparator := false
	for _, n := range nodes {
		if _, ok := n.(*ast.Alternative); ok {
			hasSeparator = true
			break
		}
	}
	if !hasSeparator {
		return 0, nil, nil
	}

	pos := ast.Span{Start: p.tokens[current].Start, End: p.tokens[current+consumed].Start}
	return consumed, []ast.Node{&ast.Alternation{Pos: pos, Alternatives: splitAlternatives(pos, nodes)}}, nil
}

func splitAlternatives(pos ast.Span, nodes []ast.Node) []*ast.Alternative {
	var separators []*ast.Alternative
	var groups [][]ast.Node
	var current []ast.Node
	for _, n := range nodes {
		if s, ok := n.(*ast.Alternative); ok {
			separators = append(separators, s)
			groups = append(groups, current)
			current = nil
			continue
		}
		current = append(current, n)
	}
	groups = append(groups, current)

	alternatives := make([]*ast.Alternative, len(groups))
	for i, g := range groups {
		start, end := pos.Start, pos.End
		if i > 0 {
			start = separators[i-1].Pos.End
		}
		if i < len(separators) {
			end = separators[i].Pos.Start
		}
		alternatives[i] = &ast.Alternative{Pos: ast.Span{Start: start, End: end}, Nodes: g}
	}
	return alternatives
}

// between returns a parseFunc for a construct delimited by begin and end.
func between(kind nodeKind, begin, end token.Type, parsers []parseFunc) parseFunc {
	return func(p *parser, current int) (int, []ast.Node, error) {
		if !p.lookingAt(current, begin) {
			return 0, nil, nil
		}
		sub := current + 1
		consumed, nodes, err := p.until(sub, parsers, end, token.EndOfLine)
		if err != nil {
			return 0, nil, err
		}
		sub += consumed
		open := p.tokens[current]
		if !p.lookingAt(sub, end) {
			return 0, nil, diagnostic.MissingEndToken(p.source, begin.Symbol(), end.Symbol(), open.Start, open.End)
		}
		pos := ast.Span{Start: open.Start, End: p.tokens[sub].End}
		var node ast.Node
		switch kind {
		case expressionKind:
			node = &ast.Expression{Pos: pos, Nodes: nodes}
		case optionalKind:
			node = &ast.Optional{Pos: pos, Nodes: nodes}
		case parameterKind:
			node = &ast.Parameter{Pos: pos, Name: joinText(nodes)}
		}
		return sub + 1 - current, []ast.Node{node}, nil
	}
}

func (p *parser) until(start int, parsers []parseFunc, endTypes ...token.Type) (int, []ast.Node, error) {
	current := start
	var nodes []ast.Node
	for current < len(p.tokens) {
		if p.lookingAtAny(current, endTypes...) {
			break
		}
		consumed, parsed, err := p.parseToken(parsers, current)
		if err != nil {
			return 0, nil, err
		}
		current += consumed
		nodes = append(nodes, parsed...)
	}
	return current - start, nodes, nil
}

func (p *parser) parseToken(parsers []parseFunc, current int) (int, []ast.Node, error) {
	for _, parse := range parsers {
		consumed, nodes, err := parse(p, current)
		if err != nil {
			return 0, nil, err
		}
		if consumed != 0 {
			return consumed, nodes, nil
		}
	}
	// Unreachable for tokenizer output.
	t := p.tokens[current]
	return 0, nil, fmt.Errorf("%w: no parser for %s at %d", diagnostic.ErrSyntax, t.Type, t.Start)
}

func joinText(nodes []ast.Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		if t, ok := n.(*ast.Text); ok {
			sb.WriteString(t.Value)
		}
	}
	return sb.String()
}
