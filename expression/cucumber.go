/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression

import (
	"fmt"
	"reflect"
	"strings"

	"bennypowers.dev/stepex/ast"
	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/parser"
	"bennypowers.dev/stepex/pattern"
)

// CucumberExpression is compiled from the placeholder grammar: literal
// text, "(optional)" text, "alternative/alternative" words, and
// "{parameter}" references to registered parameter types.
type CucumberExpression struct {
	source         string
	ast            *ast.Expression
	registry       *paramtype.Registry
	parameterTypes []*paramtype.ParameterType
	tree           *pattern.TreeRegexp
}

// NewCucumberExpression parses and compiles source. A nil backend selects
// [pattern.Default].
func NewCucumberExpression(source string, registry *paramtype.Registry, backend pattern.Backend) (*CucumberExpression, error) {
	if backend == nil {
		var err error
		if backend, err = pattern.Default(); err != nil {
			return nil, err
		}
	}
	tree, err := parser.Parse(source)
	if err != nil {
		return nil, err
	}

	c := &compiler{source: source, registry: registry, backend: backend}
	re, err := c.rewrite(tree)
	if err != nil {
		return nil, err
	}
	compiled, err := pattern.NewTreeRegexp(backend, re)
	if err != nil {
		return nil, err
	}
	return &CucumberExpression{
		source:         source,
		ast:            tree,
		registry:       registry,
		parameterTypes: c.parameterTypes,
		tree:           compiled,
	}, nil
}

// Match implements [Expression]. Hints are consulted for anonymous
// parameters only.
func (e *CucumberExpression) Match(text string, hints ...reflect.Type) ([]*Argument, bool) {
	group := e.tree.Match(text)
	if group == nil {
		return nil, false
	}
	types := make([]*paramtype.ParameterType, len(e.parameterTypes))
	for i, p := range e.parameterTypes {
		if p.Anonymous {
			hint, _ := hintAt(hints, i)
			p = e.registry.Deanonymize(p, hint)
		}
		types[i] = p
	}
	return BuildArguments(group, types), true
}

// Source implements [Expression].
func (e *CucumberExpression) Source() string { return e.source }

// Regexp implements [Expression].
func (e *CucumberExpression) Regexp() pattern.Regexp { return e.tree.Regexp() }

// AST returns the syntax tree.
func (e *CucumberExpression) AST() *ast.Expression { return e.ast }

// ParameterTypes returns the referenced parameter types in order.
func (e *CucumberExpression) ParameterTypes() []*paramtype.ParameterType {
	return e.parameterTypes
}

type compiler struct {
	source         string
	registry       *paramtype.Registry
	backend        pattern.Backend
	parameterTypes []*paramtype.ParameterType
}

func (c *compiler) rewrite(n ast.Node) (string, error) {
	switch n := n.(type) {
	case *ast.Expression:
		body, err := c.rewriteAll(n.Nodes)
		if err != nil {
			return "", err
		}
		return "^" + body + "$", nil

	case *ast.Text:
		return c.backend.QuoteMeta(n.Value), nil

	case *ast.Optional:
		body, err := c.rewriteAll(n.Nodes)
		if err != nil {
			return "", err
		}
		return "(?:" + body + ")?", nil

	case *ast.Alternation:
		parts := make([]string, len(n.Alternatives))
		for i, alt := range n.Alternatives {
			part, err := c.rewrite(alt)
			if err != nil {
				return "", err
			}
			parts[i] = part
		}
		return "(?:" + strings.Join(parts, "|") + ")", nil

	case *ast.Alternative:
		return c.rewriteAll(n.Nodes)

	case *ast.Parameter:
		p, ok := c.registry.LookupByName(n.Name)
		if !ok {
			return "", diagnostic.UndefinedParameterType(c.source, n.Pos.Start, n.Pos.End, n.Name)
		}
		c.parameterTypes = append(c.parameterTypes, p)
		if len(p.Regexps) == 1 {
			return "(" + p.Regexps[0] + ")", nil
		}
		alts := make([]string, len(p.Regexps))
		for i, re := range p.Regexps {
			alts[i] = "(?:" + re + ")"
		}
		return "(" + strings.Join(alts, "|") + ")", nil

	default:
		panic(fmt.Sprintf("expression: unexpected node %T", n))
	}
}

func (c *compiler) rewriteAll(nodes []ast.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		s, err := c.rewrite(n)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
