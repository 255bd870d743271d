/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generator suggests step expressions for concrete step text.
//
// Every parameter type marked for snippets is searched for word-bounded
// matches. Overlapping matches are ranked by position, then length, then
// weight; the types tied for best at a position become candidates for one
// placeholder, and the candidate expressions are every combination of
// those choices, up to [MaxExpressions].
package generator

import (
	"fmt"
	"slices"

	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

// MaxExpressions caps the number of expressions Generate returns.
const MaxExpressions = 256

// Generator generates expressions from text.
type Generator struct {
	registry *paramtype.Registry
	backend  pattern.Backend
}

// New returns a generator over the snippet types of registry. A nil backend
// selects [pattern.Default].
func New(registry *paramtype.Registry, backend pattern.Backend) *Generator {
	return &Generator{registry: registry, backend: backend}
}

// Generate returns candidate expressions for text, best first.
func (g *Generator) Generate(text string) ([]*GeneratedExpression, error) {
	matchers, err := g.matchers(text)
	if err != nil {
		return nil, err
	}
	runes := []rune(text)

	var (
		literals []string
		slots    [][]*paramtype.ParameterType
		pos      int
	)
	for pos < len(runes) {
		var found []matcher
		for i, m := range matchers {
			matchers[i] = m.advanceTo(pos)
			if matchers[i].found {
				found = append(found, matchers[i])
			}
		}
		if len(found) == 0 {
			break
		}
		slices.SortStableFunc(found, compareMatchers)
		best := found[0]

		var types []*paramtype.ParameterType
		for _, m := range found {
			if compareMatchers(m, best) != 0 {
				break
			}
			if !slices.Contains(types, m.parameterType) {
				types = append(types, m.parameterType)
			}
		}
		paramtype.Sort(types)

		slots = append(slots, types)
		literals = append(literals, escape(string(runes[pos:best.start])))
		pos = best.end
	}
	literals = append(literals, escape(string(runes[pos:])))

	return combine(literals, slots), nil
}

func (g *Generator) matchers(text string) ([]matcher, error) {
	backend := g.backend
	if backend == nil {
		var err error
		if backend, err = pattern.Default(); err != nil {
			return nil, err
		}
	}
	runes := []rune(text)
	var out []matcher
	for _, p := range g.registry.ParameterTypes() {
		if !p.UseForSnippets {
			continue
		}
		for _, src := range p.Regexps {
			re, err := backend.Compile(src)
			if err != nil {
				return nil, fmt.Errorf("parameter type %s: %w", p, err)
			}
			out = append(out, matcher{parameterType: p, regexp: re, text: runes})
		}
	}
	return out, nil
}

// combine enumerates one expression per combination of slot candidates,
// depth first, stopping at MaxExpressions.
func combine(literals []string, slots [][]*paramtype.ParameterType) []*GeneratedExpression {
	var out []*GeneratedExpression
	var walk func(depth int, chosen []*paramtype.ParameterType)
	walk = func(depth int, chosen []*paramtype.ParameterType) {
		if len(out) >= MaxExpressions {
			return
		}
		if depth == len(slots) {
			out = append(out, &GeneratedExpression{literals: literals, types: slices.Clone(chosen)})
			return
		}
		for _, p := range slots[depth] {
			if len(out) >= MaxExpressions {
				return
			}
			walk(depth+1, append(chosen, p))
		}
	}
	walk(0, make([]*paramtype.ParameterType, 0, len(slots)))
	return out
}
