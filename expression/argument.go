/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression

import (
	"fmt"
	"strings"

	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

// Argument is one matched parameter. Its value is converted on demand, so
// the raw text is available even when conversion would fail.
type Argument struct {
	group         *pattern.Group
	parameterType *paramtype.ParameterType
}

// Group returns the matched group.
func (a *Argument) Group() *pattern.Group {
	return a.group
}

// ParameterType returns the type converting the group.
func (a *Argument) ParameterType() *paramtype.ParameterType {
	return a.parameterType
}

// Text returns the matched text.
func (a *Argument) Text() string {
	return a.group.Text()
}

// Value converts the group. Errors are *paramtype.TransformError.
func (a *Argument) Value() (any, error) {
	if a.parameterType.WholeMatch {
		return a.parameterType.Apply([]*string{a.group.Value})
	}
	return a.parameterType.Apply(a.group.Values())
}

// ValueAs converts the group and asserts the result to T. A group that did
// not participate yields the zero T.
func ValueAs[T any](a *Argument) (T, error) {
	var zero T
	v, err := a.Value()
	if err != nil {
		return zero, err
	}
	if v == nil {
		return zero, nil
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("argument %s is %T, not %T", a.parameterType, v, zero)
	}
	return t, nil
}

// BuildArguments pairs the top-level groups of a match with the parameter
// types, in order. A count mismatch means the pattern and its types were
// built inconsistently, and panics.
func BuildArguments(group *pattern.Group, types []*paramtype.ParameterType) []*Argument {
	if len(group.Children) != len(types) {
		values := make([]string, len(group.Children))
		for i, c := range group.Children {
			values[i] = c.Text()
		}
		names := make([]string, len(types))
		for i, p := range types {
			names[i] = p.Name
		}
		panic(fmt.Sprintf("expression: group has %d capture groups (%s), but there were %d parameter types (%s)",
			len(group.Children), strings.Join(values, ", "), len(types), strings.Join(names, ", ")))
	}
	args := make([]*Argument, len(types))
	for i, p := range types {
		args[i] = &Argument{group: group.Children[i], parameterType: p}
	}
	return args
}
