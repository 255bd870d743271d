/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype

import (
	"encoding"
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// DefaultTransformer converts one group value to the Go type named by hint.
// value is nil when the group did not participate in the match; hint is nil
// when the caller gave none.
type DefaultTransformer func(value *string, hint reflect.Type) (any, error)

// Char is a single character. Use it as a type hint to require exactly one
// character; rune hints are treated as int32.
type Char rune

var (
	stringType          = reflect.TypeFor[string]()
	charType            = reflect.TypeFor[Char]()
	bigIntType          = reflect.TypeFor[*big.Int]()
	bigFloatType        = reflect.TypeFor[*big.Float]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// BuiltinTransformer is the default transformer. It converts to strings,
// every integer and float kind, bool, [Char], *big.Int, *big.Float, enum
// types registered with [DefineEnum], and types implementing
// encoding.TextUnmarshaler. A pointer hint other than the big types wraps
// the conversion of its element and is nil when the group did not match.
type BuiltinTransformer struct {
	numbers *NumberParser
	enums   map[reflect.Type]map[string]any
}

// NewBuiltinTransformer returns a transformer parsing floats with numbers.
func NewBuiltinTransformer(numbers *NumberParser) *BuiltinTransformer {
	return &BuiltinTransformer{numbers: numbers, enums: map[reflect.Type]map[string]any{}}
}

// Transform implements [DefaultTransformer].
func (t *BuiltinTransformer) Transform(value *string, hint reflect.Type) (any, error) {
	if hint == nil {
		hint = stringType
	}
	if hint.Kind() == reflect.Pointer && hint != bigIntType && hint != bigFloatType &&
		!hint.Implements(textUnmarshalerType) {
		if value == nil {
			return reflect.Zero(hint).Interface(), nil
		}
		v, err := t.Transform(value, hint.Elem())
		if err != nil {
			return nil, err
		}
		ptr := reflect.New(hint.Elem())
		ptr.Elem().Set(reflect.ValueOf(v))
		return ptr.Interface(), nil
	}
	if value == nil {
		return nil, nil
	}
	return t.convert(*value, hint)
}

func (t *BuiltinTransformer) convert(s string, hint reflect.Type) (any, error) {
	if constants, ok := t.enums[hint]; ok {
		if v, ok := constants[s]; ok {
			return v, nil
		}
		return nil, fmt.Errorf("can't transform '%s' to %s: not an enum constant", s, hint)
	}

	switch hint {
	case charType:
		if utf8.RuneCountInString(s) != 1 {
			return nil, fmt.Errorf("can't transform '%s' to %s: expected a single character", s, hint)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Char(r), nil
	case bigIntType:
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("can't transform '%s' to %s: invalid integer", s, hint)
		}
		return n, nil
	case bigFloatType:
		return t.numbers.ParseBigFloat(s)
	}

	if reflect.PointerTo(hint).Implements(textUnmarshalerType) {
		ptr := reflect.New(hint)
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return ptr.Elem().Interface(), nil
	}
	if hint.Kind() == reflect.Pointer && hint.Implements(textUnmarshalerType) {
		ptr := reflect.New(hint.Elem())
		if err := ptr.Interface().(encoding.TextUnmarshaler).UnmarshalText([]byte(s)); err != nil {
			return nil, err
		}
		return ptr.Interface(), nil
	}

	out := reflect.New(hint).Elem()
	switch hint.Kind() {
	case reflect.String:
		out.SetString(s)
	case reflect.Interface:
		if hint.NumMethod() != 0 {
			return nil, unsupported(s, hint)
		}
		return s, nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		out.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, hint.Bits())
		if err != nil {
			return nil, err
		}
		out.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 10, hint.Bits())
		if err != nil {
			return nil, err
		}
		out.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := t.numbers.ParseFloat(s, hint.Bits())
		if err != nil {
			return nil, err
		}
		out.SetFloat(f)
	default:
		return nil, unsupported(s, hint)
	}
	return out.Interface(), nil
}

func (t *BuiltinTransformer) registerEnum(typ reflect.Type, constants map[string]any) {
	t.enums[typ] = constants
}

func unsupported(s string, hint reflect.Type) error {
	return fmt.Errorf("can't transform '%s' to %s: the built-in transformer only supports a limited number of types; "+
		"consider registering a parameter type or a default transformer for %s", s, hint, hint)
}
