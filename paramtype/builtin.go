/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype

import (
	"math/big"
	"reflect"
	"strings"
)

// Regexps of the built-in parameter types.
var (
	IntegerRegexps   = []string{`-?\d+`, `\d+`}
	WordRegexps      = []string{`[^\s]+`}
	StringRegexps    = []string{`"([^"\\]*(\\.[^"\\]*)*)"`, `'([^'\\]*(\\.[^'\\]*)*)'`}
	AnonymousRegexps = []string{`.*`}
)

// IntWeight lifts {int} above the other numeric types when generating
// expressions for whole numbers.
const IntWeight = 1000

func (r *Registry) builtins() []*ParameterType {
	floats := []string{r.numbers.FloatRegexp()}
	typed := func(name string, regexps []string, typ reflect.Type) *ParameterType {
		return &ParameterType{
			Name:        name,
			Regexps:     regexps,
			Type:        typ,
			Transformer: r.builtinTransformer(typ),
		}
	}

	integer := typed("int", IntegerRegexps, reflect.TypeFor[int]())
	integer.Weight = IntWeight
	integer.UseForSnippets = true
	integer.PreferForRegexMatch = true

	double := typed("double", floats, reflect.TypeFor[float64]())
	double.UseForSnippets = true
	double.PreferForRegexMatch = true

	return []*ParameterType{
		typed("biginteger", IntegerRegexps, reflect.TypeFor[*big.Int]()),
		typed("bigdecimal", floats, reflect.TypeFor[*big.Float]()),
		typed("byte", IntegerRegexps, reflect.TypeFor[int8]()),
		typed("short", IntegerRegexps, reflect.TypeFor[int16]()),
		integer,
		typed("long", IntegerRegexps, reflect.TypeFor[int64]()),
		typed("float", floats, reflect.TypeFor[float32]()),
		double,
		typed("word", WordRegexps, stringType),
		{
			Name:           "string",
			Regexps:        StringRegexps,
			Type:           stringType,
			Transformer:    unquote,
			UseForSnippets: true,
		},
		{
			Anonymous:           true,
			Regexps:             AnonymousRegexps,
			PreferForRegexMatch: true,
			Transformer:         r.hinted(nil),
		},
	}
}

// builtinTransformer converts the first group value with the built-in
// transformer, independent of any default transformer set later.
func (r *Registry) builtinTransformer(typ reflect.Type) Transformer {
	return func(args []*string) (any, error) {
		var v *string
		if len(args) > 0 {
			v = args[0]
		}
		return r.builtin.Transform(v, typ)
	}
}

// unquote takes whichever of the double or single quoted groups matched and
// unfolds its escaped quotes.
func unquote(args []*string) (any, error) {
	s := ""
	for _, a := range args {
		if a != nil {
			s = *a
			break
		}
	}
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\'`, `'`)
	return s, nil
}
