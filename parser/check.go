/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strings"

	"bennypowers.dev/stepex/ast"
	"bennypowers.dev/stepex/diagnostic"
)

// check enforces the rules the token grammar cannot express, walking the
// tree top-down in source order so the first offence is reported.
func (p *parser) check(n ast.Node) error {
	switch n := n.(type) {
	case *ast.Expression:
		return p.checkAll(n.Nodes)

	case *ast.Text:
		return nil

	case *ast.Parameter:
		if strings.ContainsAny(n.Name, IllegalNameCharacters) {
			return diagnostic.InvalidParameterTypeNameInNode(p.source, n.Pos.Start, n.Pos.End)
		}
		return nil

	case *ast.Optional:
		for _, c := range n.Nodes {
			if c, ok := c.(*ast.Parameter); ok {
				return diagnostic.ParameterIsNotAllowedInOptional(p.source, c.Pos.Start, c.Pos.End)
			}
		}
		for _, c := range n.Nodes {
			if c, ok := c.(*ast.Optional); ok {
				return diagnostic.OptionalIsNotAllowedInOptional(p.source, c.Pos.Start, c.Pos.End)
			}
		}
		if !hasText(n.Nodes) {
			return diagnostic.OptionalMayNotBeEmpty(p.source, n.Pos.Start, n.Pos.End)
		}
		return p.checkAll(n.Nodes)

	case *ast.Alternation:
		for _, alt := range n.Alternatives {
			if len(alt.Nodes) == 0 {
				return diagnostic.AlternativeMayNotBeEmpty(p.source, alt.Pos.Start, alt.Pos.End)
			}
			if !hasText(alt.Nodes) {
				return diagnostic.AlternativeMayNotExclusivelyContainOptionals(p.source, alt.Pos.Start, alt.Pos.End)
			}
		}
		for _, alt := range n.Alternatives {
			if err := p.check(alt); err != nil {
				return err
			}
		}
		return nil

	case *ast.Alternative:
		return p.checkAll(n.Nodes)

	default:
		panic(fmt.Sprintf("parser: unexpected node %T", n))
	}
}

func (p *parser) checkAll(nodes []ast.Node) error {
	for _, n := range nodes {
		if err := p.check(n); err != nil {
			return err
		}
	}
	return nil
}

func hasText(nodes []ast.Node) bool {
	for _, n := range nodes {
		if _, ok := n.(*ast.Text); ok {
			return true
		}
	}
	return false
}
