/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression

import (
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/paramtype"
)

// AmbiguousParameterTypeError reports a regular expression group whose
// regexp belongs to several parameter types, none of them preferential.
type AmbiguousParameterTypeError struct {
	// Regexp is the group's regexp.
	Regexp string

	// Pattern is the whole regular expression.
	Pattern string

	// ParameterTypes are the candidates, ordered by [paramtype.Compare].
	ParameterTypes []*paramtype.ParameterType

	// Suggestions are expressions that would avoid the ambiguity.
	Suggestions []*generator.GeneratedExpression
}

func newAmbiguousParameterTypeError(re, pattern string, types []*paramtype.ParameterType) *AmbiguousParameterTypeError {
	types = slices.Clone(types)
	paramtype.Sort(types)
	return &AmbiguousParameterTypeError{Regexp: re, Pattern: pattern, ParameterTypes: types}
}

// WithSuggestions returns a copy of e listing suggestions.
func (e *AmbiguousParameterTypeError) WithSuggestions(suggestions []*generator.GeneratedExpression) *AmbiguousParameterTypeError {
	c := *e
	c.Suggestions = suggestions
	return &c
}

func (e *AmbiguousParameterTypeError) Error() string {
	names := make([]string, len(e.ParameterTypes))
	for i, p := range e.ParameterTypes {
		names[i] = p.String()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Your regular expression /%s/\nmatches multiple parameter types with regexp /%s/:\n   %s\n\n",
		e.Pattern, e.Regexp, strings.Join(names, "\n   "))
	sb.WriteString("I couldn't decide which one to use. You have two options:\n\n")
	if len(e.Suggestions) == 0 {
		sb.WriteString("1) Use a step expression instead of a regular expression.\n\n")
	} else {
		sources := make([]string, len(e.Suggestions))
		for i, s := range e.Suggestions {
			sources[i] = s.Source()
		}
		fmt.Fprintf(&sb, "1) Use a step expression instead of a regular expression. Try one of these:\n   %s\n\n",
			strings.Join(sources, "\n   "))
	}
	sb.WriteString("2) Make one of the parameter types preferential and continue to use a regular expression.\n")
	return sb.String()
}

func (e *AmbiguousParameterTypeError) Unwrap() error {
	return diagnostic.ErrAmbiguousParameterType
}
