/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/tidwall/btree"
	"golang.org/x/text/language"

	"bennypowers.dev/stepex/diagnostic"
)

// Registry holds parameter types by name and by regexp.
//
// A Registry is populated during setup and read afterwards. Define must not
// run concurrently with lookups.
type Registry struct {
	numbers            *NumberParser
	builtin            *BuiltinTransformer
	defaultTransformer DefaultTransformer

	byName   btree.Map[string, *ParameterType]
	byRegexp map[string][]*ParameterType
}

// NewRegistry returns a registry holding the built-in parameter types, with
// numbers parsed in the conventions of tag.
func NewRegistry(tag language.Tag) *Registry {
	numbers := NewNumberParser(tag)
	r := &Registry{
		numbers:  numbers,
		builtin:  NewBuiltinTransformer(numbers),
		byRegexp: map[string][]*ParameterType{},
	}
	r.defaultTransformer = r.builtin.Transform
	for _, p := range r.builtins() {
		if err := r.Define(p); err != nil {
			panic(fmt.Sprintf("paramtype: built-in %s: %v", p, err))
		}
	}
	return r
}

// Numbers returns the registry's number parser.
func (r *Registry) Numbers() *NumberParser {
	return r.numbers
}

// Define adds a parameter type. A name may be redefined only when the
// existing definition is Replaceable. Two preferential types may not share
// a regexp.
func (r *Registry) Define(p *ParameterType) error {
	if !p.Anonymous {
		if p.Name == "" {
			return fmt.Errorf("%w: only the anonymous parameter type may have an empty name", diagnostic.ErrInvalidParameterTypeName)
		}
		if err := ValidName(p.Name); err != nil {
			return err
		}
	}
	if len(p.Regexps) == 0 {
		return fmt.Errorf("parameter type %s has no regexps", p)
	}

	existing, ok := r.byName.Get(p.Name)
	if ok {
		if !existing.Replaceable {
			if existing.Anonymous {
				return fmt.Errorf("%w: the anonymous parameter type has already been defined", diagnostic.ErrDuplicateParameterType)
			}
			return fmt.Errorf("%w: cannot define %s with regexps %q; already defined as %s with regexps %q",
				diagnostic.ErrDuplicateParameterType, p, p.Regexps, existing, existing.Regexps)
		}
	}

	for _, re := range p.Regexps {
		for _, other := range r.byRegexp[re] {
			if other != existing && other.PreferForRegexMatch && p.PreferForRegexMatch {
				return fmt.Errorf("%w: there can only be one preferential parameter type per regexp; "+
					"the regexp /%s/ is used for two preferential parameter types, %s and %s",
					diagnostic.ErrPreferentialConflict, re, other, p)
			}
		}
	}

	if existing != nil {
		r.removeRegexps(existing)
	}
	r.byName.Set(p.Name, p)
	for _, re := range p.Regexps {
		types := append(r.byRegexp[re], p)
		Sort(types)
		r.byRegexp[re] = types
	}
	return nil
}

func (r *Registry) removeRegexps(p *ParameterType) {
	for _, re := range p.Regexps {
		types := slices.DeleteFunc(r.byRegexp[re], func(t *ParameterType) bool { return t == p })
		if len(types) == 0 {
			delete(r.byRegexp, re)
			continue
		}
		r.byRegexp[re] = types
	}
}

// LookupByName returns the type registered under name.
func (r *Registry) LookupByName(name string) (*ParameterType, bool) {
	return r.byName.Get(name)
}

// LookupByRegexp returns the types registered for a regexp source, ordered
// by [Compare]. The caller decides whether more than one is ambiguous.
func (r *Registry) LookupByRegexp(source string) []*ParameterType {
	return slices.Clone(r.byRegexp[source])
}

// ParameterTypes returns every registered type ordered by name.
func (r *Registry) ParameterTypes() []*ParameterType {
	out := make([]*ParameterType, 0, r.byName.Len())
	r.byName.Scan(func(_ string, p *ParameterType) bool {
		out = append(out, p)
		return true
	})
	return out
}

// SetDefaultTransformer replaces the transformer used for anonymous
// parameters and for regular expression groups without a matching type.
func (r *Registry) SetDefaultTransformer(t DefaultTransformer) {
	r.defaultTransformer = t
}

// DefaultTransformer returns the current default transformer.
func (r *Registry) DefaultTransformer() DefaultTransformer {
	return r.defaultTransformer
}

// Transform converts value to hint with the current default transformer.
func (r *Registry) Transform(value *string, hint reflect.Type) (any, error) {
	return r.defaultTransformer(value, hint)
}

// Deanonymize returns a copy of p converting to hint through the default
// transformer. The default transformer is looked up when the copy runs, so
// a later SetDefaultTransformer applies.
func (r *Registry) Deanonymize(p *ParameterType, hint reflect.Type) *ParameterType {
	q := *p
	q.Type = hint
	q.Anonymous = false
	q.WholeMatch = true
	q.Transformer = r.hinted(hint)
	return &q
}

// Hinted returns a parameter type for an untyped regexp group converting to
// hint through the default transformer.
func (r *Registry) Hinted(regexp string, hint reflect.Type) *ParameterType {
	return &ParameterType{
		Regexps:     []string{regexp},
		Type:        hint,
		Transformer: r.hinted(hint),
		WholeMatch:  true,
	}
}

func (r *Registry) hinted(hint reflect.Type) Transformer {
	return func(args []*string) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%d capture groups; a hinted conversion takes one", len(args))
		}
		return r.defaultTransformer(args[0], hint)
	}
}
