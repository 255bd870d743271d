/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/expression"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

func TestRegularExpression_Match(t *testing.T) {
	tests := []struct {
		name   string
		source string
		text   string
		hints  []reflect.Type
		want   []any
	}{
		{"registered regexp", `^I have (\d+) cukes in my (.*)$`, "I have 7 cukes in my belly", nil, []any{7, "belly"}},
		{"unregistered regexp", `^(\w+) says hi$`, "Ada says hi", nil, []any{"Ada"}},
		{"hint on unregistered", `^(\d{2}) left$`, "42 left", []reflect.Type{reflect.TypeFor[int]()}, []any{42}},
		{"hint overrides weak type", `^(\d+)$`, "7", []reflect.Type{reflect.TypeFor[string]()}, []any{"7"}},
		{"matching hint", `^(-?\d+)$`, "-7", []reflect.Type{reflect.TypeFor[int]()}, []any{-7}},
		{"no groups", `^hello$`, "hello", nil, []any{}},
		{"non-capturing", `^(?:I|we) have ([a-z]+)$`, "we have cukes", nil, []any{"cukes"}},
		{"optional group", `^I have( \d+)? cukes$`, "I have cukes", []reflect.Type{reflect.TypeFor[*int]()}, []any{(*int)(nil)}},
		{"unanchored", `(\d+) cukes`, "about 12 cukes today", nil, []any{12}},
		{"quoted parens", `^I am \Q(:\E (\d+) times$`, "I am (: 3 times", nil, []any{3}},
		{"nested capture with hint", `^I weigh (\d+(\.\d+)?) kg$`, "I weigh 72.5 kg", []reflect.Type{reflect.TypeFor[float64]()}, []any{72.5}},
		{"nested capture unmatched", `^I weigh (\d+(\.\d+)?) kg$`, "I weigh 72 kg", []reflect.Type{reflect.TypeFor[float64]()}, []any{72.0}},
		{"nested capture without hint", `^I weigh (\d+(\.\d+)?) kg$`, "I weigh 72.5 kg", nil, []any{"72.5"}},
	}
	r := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := expression.NewRegularExpression(tt.source, r, pattern.RE2())
			require.NoError(t, err)
			assert.Equal(t, tt.source, e.Source())

			args, ok := e.Match(tt.text, tt.hints...)
			require.True(t, ok)
			assert.Equal(t, tt.want, values(t, args))
		})
	}
}

func TestRegularExpression_StrongTypeHint(t *testing.T) {
	r := newRegistry(t, &paramtype.ParameterType{
		Name:           "shouty",
		Regexps:        []string{`[A-Z]+`},
		Type:           reflect.TypeFor[string](),
		StrongTypeHint: true,
		Transformer: func(args []*string) (any, error) {
			return *args[0] + "!", nil
		},
	})
	e, err := expression.NewRegularExpression(`^([A-Z]+)$`, r, pattern.RE2())
	require.NoError(t, err)
	require.Len(t, e.ParameterTypes(), 1)
	assert.Equal(t, "shouty", e.ParameterTypes()[0].Name)

	args, ok := e.Match("HEY", reflect.TypeFor[int]())
	require.True(t, ok)
	assert.Equal(t, []any{"HEY!"}, values(t, args))
}

func TestRegularExpression_Ambiguous(t *testing.T) {
	a := &paramtype.ParameterType{Name: "a", Regexps: []string{`[a-z]+`}}
	b := &paramtype.ParameterType{Name: "b", Regexps: []string{`[a-z]+`}}
	r := newRegistry(t, b, a)

	_, err := expression.NewRegularExpression(`^([a-z]+)$`, r, pattern.RE2())
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrAmbiguousParameterType)

	var aerr *expression.AmbiguousParameterTypeError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, `[a-z]+`, aerr.Regexp)
	assert.Equal(t, `^([a-z]+)$`, aerr.Pattern)
	require.Len(t, aerr.ParameterTypes, 2)
	assert.Equal(t, "a", aerr.ParameterTypes[0].Name)
	assert.Equal(t, "b", aerr.ParameterTypes[1].Name)
	assert.Contains(t, aerr.Error(), "{a}\n   {b}")
	assert.Contains(t, aerr.Error(), "Make one of the parameter types preferential")

	exprs, err := generator.New(r, pattern.RE2()).Generate("hello")
	require.NoError(t, err)
	withSuggestions := aerr.WithSuggestions(exprs)
	assert.Empty(t, aerr.Suggestions)
	assert.Contains(t, withSuggestions.Error(), "Try one of these:\n   ")
	assert.True(t, strings.Contains(withSuggestions.Error(), "hello"))
}

func TestRegularExpression_Preferential(t *testing.T) {
	r := newRegistry(t,
		&paramtype.ParameterType{Name: "a", Regexps: []string{`[a-z]+`}},
		&paramtype.ParameterType{Name: "b", Regexps: []string{`[a-z]+`}, PreferForRegexMatch: true},
	)
	e, err := expression.NewRegularExpression(`^([a-z]+)$`, r, pattern.RE2())
	require.NoError(t, err)
	assert.Equal(t, "b", e.ParameterTypes()[0].Name)
}

func TestRegularExpression_Invalid(t *testing.T) {
	_, err := expression.NewRegularExpression(`^(unclosed$`, newRegistry(t), pattern.RE2())
	assert.Error(t, err)
}
