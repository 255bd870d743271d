/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

func newGenerator(t *testing.T, extra ...*paramtype.ParameterType) *generator.Generator {
	t.Helper()
	r := paramtype.NewRegistry(language.English)
	for _, p := range extra {
		require.NoError(t, r.Define(p))
	}
	return generator.New(r, pattern.RE2())
}

func sources(exprs []*generator.GeneratedExpression) []string {
	out := make([]string, len(exprs))
	for i, e := range exprs {
		out[i] = e.Source()
	}
	return out
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"no parameters", "I have cukes", "I have cukes"},
		{"empty", "", ""},
		{"int", "I have 2 cukes", "I have {int} cukes"},
		{"negative int", "-3 cukes", "{int} cukes"},
		{"int and double", "I have 2 cucumbers and 1.5 tomato", "I have {int} cucumbers and {double} tomato"},
		{"int before punctuation", "I have 3, maybe 4.", "I have {int}, maybe {int}."},
		{"strings", `I say "hello" and 'bye'`, "I say {string} and {string}"},
		{"no boundary", "cucumber2s", "cucumber2s"},
		{"boundary", "cucumber 2 s", "cucumber {int} s"},
		{"escapes", `1 (big) cuke/pickle {x} \o/`, `{int} \(big) cuke\/pickle \{x} \\o\/`},
		{"multibyte text", "🥒 ×3 🥒 3", "🥒 ×{int} 🥒 {int}"},
	}
	g := newGenerator(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exprs, err := g.Generate(tt.text)
			require.NoError(t, err)
			require.NotEmpty(t, exprs)
			assert.Equal(t, tt.want, exprs[0].Source())
		})
	}
}

func TestGenerate_ParameterNames(t *testing.T) {
	g := newGenerator(t,
		&paramtype.ParameterType{Name: "func", Regexps: []string{`fn`}, UseForSnippets: true},
		&paramtype.ParameterType{Name: "foo-bar", Regexps: []string{`zz`}, UseForSnippets: true},
	)

	exprs, err := g.Generate(`call fn with "x" and "y" then fn zz`)
	require.NoError(t, err)
	require.Len(t, exprs, 1)
	assert.Equal(t, "call {func} with {string} and {string} then {func} {foo-bar}", exprs[0].Source())
	assert.Equal(t, []string{"func1", "string", "string2", "func2", "fooBar"}, exprs[0].ParameterNames())
}

func TestGenerate_TiedCandidates(t *testing.T) {
	g := newGenerator(t,
		&paramtype.ParameterType{Name: "zebra", Regexps: []string{`[a-z]+day`}, UseForSnippets: true},
		&paramtype.ParameterType{Name: "apple", Regexps: []string{`[a-z]+day`, `mon[a-z]+`}, UseForSnippets: true},
		&paramtype.ParameterType{Name: "mango", Regexps: []string{`monday`}, UseForSnippets: true, PreferForRegexMatch: true},
	)

	exprs, err := g.Generate("see you monday")
	require.NoError(t, err)
	// apple matches through two regexps but is offered once; the
	// preferential type is listed first.
	assert.Equal(t, []string{
		"see you {mango}",
		"see you {apple}",
		"see you {zebra}",
	}, sources(exprs))
}

func TestGenerate_Cap(t *testing.T) {
	g := newGenerator(t,
		&paramtype.ParameterType{Name: "a", Regexps: []string{`x`}, UseForSnippets: true},
		&paramtype.ParameterType{Name: "b", Regexps: []string{`x`}, UseForSnippets: true},
	)

	// Nine slots with two candidates each is 512 combinations.
	exprs, err := g.Generate(strings.TrimSpace(strings.Repeat("x ", 9)))
	require.NoError(t, err)
	assert.Len(t, exprs, generator.MaxExpressions)
	assert.Equal(t, strings.TrimSpace(strings.Repeat("{a} ", 9)), exprs[0].Source())
	assert.Equal(t, strings.TrimSpace(strings.Repeat("{a} ", 8))+" {b}", exprs[1].Source())
	// The first half of the search space has the first slot fixed to {a}.
	assert.Equal(t, strings.TrimSpace(strings.Repeat("{a} ", 1)+strings.Repeat("{b} ", 8)), exprs[255].Source())

	small, err := g.Generate("x x")
	require.NoError(t, err)
	assert.Equal(t, []string{"{a} {a}", "{a} {b}", "{b} {a}", "{b} {b}"}, sources(small))
}

func TestGenerate_InvalidRegexp(t *testing.T) {
	g := newGenerator(t,
		&paramtype.ParameterType{Name: "broken", Regexps: []string{`(`}, UseForSnippets: true},
	)
	_, err := g.Generate("anything")
	assert.Error(t, err)
}
