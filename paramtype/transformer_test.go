/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype_test

import (
	"fmt"
	"math/big"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"bennypowers.dev/stepex/paramtype"
)

type shout string

func (s *shout) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty")
	}
	*s = shout(strings.ToUpper(string(b)))
	return nil
}

type label string

func TestBuiltinTransformer(t *testing.T) {
	bt := paramtype.NewBuiltinTransformer(paramtype.NewNumberParser(language.English))

	tests := []struct {
		name  string
		value *string
		hint  reflect.Type
		want  any
	}{
		{"no hint", str("abc"), nil, "abc"},
		{"string", str("abc"), reflect.TypeFor[string](), "abc"},
		{"named string", str("abc"), reflect.TypeFor[label](), label("abc")},
		{"any", str("abc"), reflect.TypeFor[any](), "abc"},
		{"int", str("-7"), reflect.TypeFor[int](), -7},
		{"int8", str("127"), reflect.TypeFor[int8](), int8(127)},
		{"int32", str("7"), reflect.TypeFor[int32](), int32(7)},
		{"uint16", str("65535"), reflect.TypeFor[uint16](), uint16(65535)},
		{"float32", str("2.5"), reflect.TypeFor[float32](), float32(2.5)},
		{"float64 with grouping", str("1,234.5"), reflect.TypeFor[float64](), 1234.5},
		{"bool", str("true"), reflect.TypeFor[bool](), true},
		{"char", str("é"), reflect.TypeFor[paramtype.Char](), paramtype.Char('é')},
		{"big int", str("123456789012345678901234567890"), reflect.TypeFor[*big.Int](), mustBigInt("123456789012345678901234567890")},
		{"text unmarshaler", str("hey"), reflect.TypeFor[shout](), shout("HEY")},
		{"nil value", nil, reflect.TypeFor[int](), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bt.Transform(tt.value, tt.hint)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltinTransformer_Pointers(t *testing.T) {
	bt := paramtype.NewBuiltinTransformer(paramtype.NewNumberParser(language.English))

	got, err := bt.Transform(str("5"), reflect.TypeFor[*int]())
	require.NoError(t, err)
	p, ok := got.(*int)
	require.True(t, ok)
	assert.Equal(t, 5, *p)

	got, err = bt.Transform(nil, reflect.TypeFor[*int]())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBuiltinTransformer_BigFloat(t *testing.T) {
	bt := paramtype.NewBuiltinTransformer(paramtype.NewNumberParser(language.English))
	got, err := bt.Transform(str("0.1"), reflect.TypeFor[*big.Float]())
	require.NoError(t, err)
	f, ok := got.(*big.Float)
	require.True(t, ok)
	assert.Equal(t, uint(256), f.Prec())
	assert.Equal(t, "0.1", f.Text('f', 1))
}

func TestBuiltinTransformer_Errors(t *testing.T) {
	bt := paramtype.NewBuiltinTransformer(paramtype.NewNumberParser(language.English))

	tests := []struct {
		name  string
		value string
		hint  reflect.Type
	}{
		{"int overflow", "128", reflect.TypeFor[int8]()},
		{"not an int", "seven", reflect.TypeFor[int]()},
		{"negative uint", "-1", reflect.TypeFor[uint]()},
		{"two chars", "ab", reflect.TypeFor[paramtype.Char]()},
		{"empty char", "", reflect.TypeFor[paramtype.Char]()},
		{"bad big int", "1.5", reflect.TypeFor[*big.Int]()},
		{"bad float", "1.5x", reflect.TypeFor[float64]()},
		{"bad bool", "yes", reflect.TypeFor[bool]()},
		{"unmarshal failure", "", reflect.TypeFor[shout]()},
		{"unsupported", "x", reflect.TypeFor[[]string]()},
		{"interface with methods", "x", reflect.TypeFor[fmt.Stringer]()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bt.Transform(str(tt.value), tt.hint)
			assert.Error(t, err)
		})
	}
}

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(s)
	}
	return n
}
