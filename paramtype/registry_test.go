/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/paramtype"
)

func str(s string) *string { return &s }

func TestNewRegistry_Builtins(t *testing.T) {
	r := paramtype.NewRegistry(language.English)

	var names []string
	for _, p := range r.ParameterTypes() {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{
		"", "bigdecimal", "biginteger", "byte", "double", "float",
		"int", "long", "short", "string", "word",
	}, names)

	tests := []struct {
		name      string
		typ       reflect.Type
		snippets  bool
		preferred bool
	}{
		{"int", reflect.TypeFor[int](), true, true},
		{"double", reflect.TypeFor[float64](), true, true},
		{"string", reflect.TypeFor[string](), true, false},
		{"word", reflect.TypeFor[string](), false, false},
		{"long", reflect.TypeFor[int64](), false, false},
		{"float", reflect.TypeFor[float32](), false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.LookupByName(tt.name)
			require.True(t, ok)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, tt.snippets, p.UseForSnippets)
			assert.Equal(t, tt.preferred, p.PreferForRegexMatch)
		})
	}

	anon, ok := r.LookupByName("")
	require.True(t, ok)
	assert.True(t, anon.Anonymous)
	assert.Equal(t, []string{".*"}, anon.Regexps)
}

func TestRegistry_BuiltinTransforms(t *testing.T) {
	r := paramtype.NewRegistry(language.English)

	tests := []struct {
		name string
		args []*string
		want any
	}{
		{"int", []*string{str("-42")}, -42},
		{"byte", []*string{str("12")}, int8(12)},
		{"short", []*string{str("300")}, int16(300)},
		{"long", []*string{str("9000000000")}, int64(9000000000)},
		{"float", []*string{str("1.5")}, float32(1.5)},
		{"double", []*string{str("-.25")}, -0.25},
		{"word", []*string{str("cukes")}, "cukes"},
		{"string", []*string{str(`say \"hi\"`), nil}, `say "hi"`},
		{"string", []*string{nil, str(`it\'s`)}, "it's"},
		{"string", []*string{nil, nil}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := r.LookupByName(tt.name)
			require.True(t, ok)
			got, err := p.Apply(tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		p, _ := r.LookupByName("byte")
		_, err := p.Apply([]*string{str("300")})
		require.Error(t, err)
		assert.True(t, errors.Is(err, diagnostic.ErrTransform))
		var terr *paramtype.TransformError
		require.True(t, errors.As(err, &terr))
		assert.Equal(t, "300", terr.Value)
		assert.Equal(t, "byte", terr.ParameterType.Name)
	})
}

func TestRegistry_Define(t *testing.T) {
	t.Run("duplicate name", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		err := r.Define(&paramtype.ParameterType{Name: "int", Regexps: []string{`\d{3}`}})
		require.Error(t, err)
		assert.True(t, errors.Is(err, diagnostic.ErrDuplicateParameterType))
		assert.Contains(t, err.Error(), `{int} with regexps ["\\d{3}"]`)
		assert.Contains(t, err.Error(), `already defined as {int} with regexps ["-?\\d+" "\\d+"]`)
	})

	t.Run("second anonymous", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		err := r.Define(&paramtype.ParameterType{Anonymous: true, Regexps: []string{`.+`}})
		assert.True(t, errors.Is(err, diagnostic.ErrDuplicateParameterType))
		assert.Contains(t, err.Error(), "anonymous")
	})

	t.Run("replaceable", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		first := &paramtype.ParameterType{Name: "color", Regexps: []string{`red|blue`}, Replaceable: true}
		second := &paramtype.ParameterType{Name: "color", Regexps: []string{`red|green`}}
		require.NoError(t, r.Define(first))
		require.NoError(t, r.Define(second))

		got, ok := r.LookupByName("color")
		require.True(t, ok)
		assert.Same(t, second, got)
		assert.Empty(t, r.LookupByRegexp(`red|blue`))

		err := r.Define(&paramtype.ParameterType{Name: "color", Regexps: []string{`x`}})
		assert.True(t, errors.Is(err, diagnostic.ErrDuplicateParameterType))
	})

	t.Run("illegal name", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		for _, name := range []string{"a{b", "a(b", `a\b`, "a/b", "a}b", "a)b", ""} {
			err := r.Define(&paramtype.ParameterType{Name: name, Regexps: []string{`x`}})
			assert.True(t, errors.Is(err, diagnostic.ErrInvalidParameterTypeName), "name %q", name)
		}
	})

	t.Run("no regexps", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		assert.Error(t, r.Define(&paramtype.ParameterType{Name: "empty"}))
	})

	t.Run("preferential conflict", func(t *testing.T) {
		r := paramtype.NewRegistry(language.English)
		err := r.Define(&paramtype.ParameterType{Name: "count", Regexps: []string{`\d+`}, PreferForRegexMatch: true})
		require.Error(t, err)
		assert.True(t, errors.Is(err, diagnostic.ErrPreferentialConflict))
		assert.Contains(t, err.Error(), "{int} and {count}")
	})
}

func TestRegistry_LookupByRegexp(t *testing.T) {
	r := paramtype.NewRegistry(language.English)

	types := r.LookupByRegexp(`\d+`)
	require.Len(t, types, 5)
	assert.Equal(t, "int", types[0].Name)
	assert.Equal(t, "biginteger", types[1].Name)
	assert.Equal(t, "short", types[4].Name)

	assert.Empty(t, r.LookupByRegexp(`[a-z]+`))
}

func TestRegistry_DefaultTransformer(t *testing.T) {
	r := paramtype.NewRegistry(language.English)
	anon, _ := r.LookupByName("")

	got, err := anon.Apply([]*string{str("12")})
	require.NoError(t, err)
	assert.Equal(t, "12", got)

	typed := r.Deanonymize(anon, reflect.TypeFor[int]())
	got, err = typed.Apply([]*string{str("12")})
	require.NoError(t, err)
	assert.Equal(t, 12, got)

	r.SetDefaultTransformer(func(value *string, hint reflect.Type) (any, error) {
		return "custom:" + *value, nil
	})
	got, err = typed.Apply([]*string{str("12")})
	require.NoError(t, err)
	assert.Equal(t, "custom:12", got)

	// Named built-ins keep their own conversion.
	integer, _ := r.LookupByName("int")
	got, err = integer.Apply([]*string{str("12")})
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestRegistry_Hinted(t *testing.T) {
	r := paramtype.NewRegistry(language.English)
	p := r.Hinted(`\d+(\.\d+)?`, reflect.TypeFor[float64]())
	assert.True(t, p.WholeMatch)

	got, err := p.Apply([]*string{str("72.5")})
	require.NoError(t, err)
	assert.Equal(t, 72.5, got)

	_, err = p.Apply([]*string{str("72"), str(".5")})
	require.Error(t, err)
	assert.ErrorIs(t, err, diagnostic.ErrTransform)
}

type color int

const (
	red color = iota
	green
)

func TestDefineEnum(t *testing.T) {
	r := paramtype.NewRegistry(language.English)
	p, err := paramtype.DefineEnum(r, "color", map[string]color{"RED": red, "GREEN": green})
	require.NoError(t, err)
	assert.Equal(t, []string{"GREEN|RED"}, p.Regexps)

	got, err := p.Apply([]*string{str("GREEN")})
	require.NoError(t, err)
	assert.Equal(t, green, got)

	// The built-in transformer knows the constants too.
	got, err = r.Transform(str("RED"), reflect.TypeFor[color]())
	require.NoError(t, err)
	assert.Equal(t, red, got)

	_, err = p.Apply([]*string{str("BLUE")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an enum constant")
}

func TestCompare(t *testing.T) {
	a := &paramtype.ParameterType{Name: "b", PreferForRegexMatch: true}
	b := &paramtype.ParameterType{Name: "a"}
	c := &paramtype.ParameterType{Name: "c"}
	types := []*paramtype.ParameterType{c, b, a}
	paramtype.Sort(types)
	assert.Equal(t, []*paramtype.ParameterType{a, b, c}, types)
}

func TestEnumRegexp(t *testing.T) {
	tests := []struct {
		names []string
		want  string
	}{
		{[]string{"red", "reddish"}, "reddish|red"},
		{[]string{"b", "a", "cc"}, "cc|a|b"},
		{[]string{"a.b"}, `a\.b`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, paramtype.EnumRegexp(tt.names))
	}
}
