/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype

import (
	"cmp"
	"fmt"
	"maps"
	"reflect"
	"regexp"
	"slices"
	"strings"
)

// DefineEnum registers a parameter type matching the names of constants
// exactly, and teaches the built-in transformer to convert those names to T
// whatever parameter type they arrive through.
func DefineEnum[T comparable](r *Registry, name string, constants map[string]T) (*ParameterType, error) {
	if len(constants) == 0 {
		return nil, fmt.Errorf("enum %s has no constants", name)
	}
	typ := reflect.TypeFor[T]()

	table := make(map[string]any, len(constants))
	for n, v := range constants {
		table[n] = v
	}

	p := &ParameterType{
		Name:        name,
		Regexps:     []string{EnumRegexp(slices.Collect(maps.Keys(constants)))},
		Type:        typ,
		Transformer: r.builtinTransformer(typ),
	}
	if err := r.Define(p); err != nil {
		return nil, err
	}
	r.builtin.registerEnum(typ, table)
	return p, nil
}

// EnumRegexp returns an alternation matching names literally. Longer names
// come first, so that a name that prefixes another cannot win.
func EnumRegexp(names []string) string {
	sorted := slices.Clone(names)
	slices.SortFunc(sorted, func(a, b string) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	quoted := make([]string, len(sorted))
	for i, n := range sorted {
		quoted[i] = regexp.QuoteMeta(n)
	}
	return strings.Join(quoted, "|")
}
