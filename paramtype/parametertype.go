/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package paramtype defines parameter types and the registry that holds them.
package paramtype

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"bennypowers.dev/stepex/diagnostic"
)

// IllegalNameCharacters may not appear in a parameter type name.
const IllegalNameCharacters = `{}()\/`

// Transformer converts the values of a matched group into a typed value.
// A nil entry is a group that did not participate in the match.
type Transformer func(args []*string) (any, error)

// ParameterType binds one or more regexps to a typed conversion.
type ParameterType struct {
	// Name is referenced as {Name} in expressions. It is empty only for the
	// anonymous parameter type.
	Name string

	// Regexps are the alternatives the type matches, in preference order.
	Regexps []string

	// Type is the Go type Transformer produces. Nil means unknown.
	Type reflect.Type

	Transformer Transformer

	// Weight breaks ties between types matching the same span when
	// generating expressions. Higher wins.
	Weight int

	// UseForSnippets offers the type when generating expressions.
	UseForSnippets bool

	// PreferForRegexMatch picks the type when several share a regexp.
	PreferForRegexMatch bool

	// Anonymous marks the type behind "{}", whose conversion is chosen at
	// match time from a caller's type hint.
	Anonymous bool

	// StrongTypeHint keeps this type in a regular expression even when the
	// caller's hint names a different Go type.
	StrongTypeHint bool

	// Replaceable allows a later definition under the same name to replace
	// this one.
	Replaceable bool

	// WholeMatch hands Transformer the group's own text as its only value.
	// Nested captures inside the group are not passed.
	WholeMatch bool
}

// String returns the placeholder form, e.g. "{int}".
func (p *ParameterType) String() string {
	return "{" + p.Name + "}"
}

// Apply runs the transformer. Failures are returned as *TransformError.
func (p *ParameterType) Apply(args []*string) (any, error) {
	if p.Transformer == nil {
		return firstValue(args), nil
	}
	v, err := p.Transformer(args)
	if err != nil {
		return nil, &TransformError{ParameterType: p, Value: joinValues(args), Err: err}
	}
	return v, nil
}

// TypeName returns the Go type name, or "string" when Type is nil.
func (p *ParameterType) TypeName() string {
	if p.Type == nil {
		return "string"
	}
	return p.Type.String()
}

// ValidName reports whether name is legal for a parameter type.
func ValidName(name string) error {
	if strings.ContainsAny(name, IllegalNameCharacters) {
		return diagnostic.InvalidParameterTypeName(name)
	}
	return nil
}

// Compare orders preferential types first, then by name.
func Compare(a, b *ParameterType) int {
	if a.PreferForRegexMatch != b.PreferForRegexMatch {
		if a.PreferForRegexMatch {
			return -1
		}
		return 1
	}
	return cmp.Compare(a.Name, b.Name)
}

// Sort sorts types with [Compare].
func Sort(types []*ParameterType) {
	slices.SortStableFunc(types, Compare)
}

// TransformError is a failure to convert matched text. It unwraps to both
// [diagnostic.ErrTransform] and the underlying cause.
type TransformError struct {
	ParameterType *ParameterType
	Value         string
	Err           error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("cannot transform %q with parameter type %s: %v", e.Value, e.ParameterType, e.Err)
}

func (e *TransformError) Unwrap() []error {
	return []error{diagnostic.ErrTransform, e.Err}
}

func firstValue(args []*string) any {
	for _, a := range args {
		if a != nil {
			return *a
		}
	}
	return nil
}

func joinValues(args []*string) string {
	parts := make([]string, 0, len(args))
	for _, a := range args {
		if a != nil {
			parts = append(parts, *a)
		}
	}
	return strings.Join(parts, ", ")
}
