/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression

import (
	"reflect"

	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

// RegularExpression is a hand-written pattern. Each top-level capturing
// group is typed by the parameter type registered for its exact regexp
// source, or converted by the default transformer when none is.
type RegularExpression struct {
	registry *paramtype.Registry
	tree     *pattern.TreeRegexp

	// types has one entry per top-level group; nil entries have no
	// registered type.
	types []*paramtype.ParameterType
}

// NewRegularExpression compiles source. It fails with an
// *AmbiguousParameterTypeError when a group's regexp is registered for
// several types and none is preferential. A nil backend selects
// [pattern.Default].
func NewRegularExpression(source string, registry *paramtype.Registry, backend pattern.Backend) (*RegularExpression, error) {
	tree, err := pattern.NewTreeRegexp(backend, source)
	if err != nil {
		return nil, err
	}
	groups := tree.Builder().Children
	types := make([]*paramtype.ParameterType, len(groups))
	for i, g := range groups {
		candidates := registry.LookupByRegexp(g.Source)
		switch {
		case len(candidates) == 0:
		case len(candidates) > 1 && !candidates[0].PreferForRegexMatch:
			return nil, newAmbiguousParameterTypeError(g.Source, source, candidates)
		default:
			types[i] = candidates[0]
		}
	}
	return &RegularExpression{registry: registry, tree: tree, types: types}, nil
}

// Match implements [Expression]. A hint naming a different Go type than the
// registered one wins unless the registered type is a strong type hint.
func (e *RegularExpression) Match(text string, hints ...reflect.Type) ([]*Argument, bool) {
	group := e.tree.Match(text)
	if group == nil {
		return nil, false
	}
	groups := e.tree.Builder().Children
	types := make([]*paramtype.ParameterType, len(e.types))
	for i, p := range e.types {
		hint, hinted := hintAt(hints, i)
		switch {
		case p == nil:
			p = e.registry.Hinted(groups[i].Source, hint)
		case hinted && !p.StrongTypeHint && p.Type != hint:
			p = e.registry.Hinted(groups[i].Source, hint)
		}
		types[i] = p
	}
	return BuildArguments(group, types), true
}

// Source implements [Expression].
func (e *RegularExpression) Source() string { return e.tree.Source() }

// Regexp implements [Expression].
func (e *RegularExpression) Regexp() pattern.Regexp { return e.tree.Regexp() }

// ParameterTypes returns the registered type of each top-level group; an
// entry is nil when the group's regexp has none.
func (e *RegularExpression) ParameterTypes() []*paramtype.ParameterType {
	return e.types
}
