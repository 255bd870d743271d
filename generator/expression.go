/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package generator

import (
	"go/token"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"bennypowers.dev/stepex/paramtype"
)

// GeneratedExpression is a candidate expression for a piece of text.
type GeneratedExpression struct {
	// literals surround the parameters: len(literals) == len(types)+1.
	literals []string
	types    []*paramtype.ParameterType
}

// Source renders the expression with a {name} placeholder per parameter.
func (g *GeneratedExpression) Source() string {
	var sb strings.Builder
	for i, lit := range g.literals {
		sb.WriteString(lit)
		if i < len(g.types) {
			sb.WriteString(g.types[i].String())
		}
	}
	return sb.String()
}

// ParameterTypes returns the parameter types in order.
func (g *GeneratedExpression) ParameterTypes() []*paramtype.ParameterType {
	return g.types
}

// ParameterNames returns an identifier per parameter, derived from the
// type name. Repeated names get a numeric suffix, as do names that are Go
// keywords.
func (g *GeneratedExpression) ParameterNames() []string {
	usage := map[string]int{}
	names := make([]string, len(g.types))
	for i, p := range g.types {
		base := strcase.ToLowerCamel(p.Name)
		if base == "" {
			base = "arg"
		}
		usage[base]++
		count := usage[base]
		if count == 1 && !token.IsKeyword(base) {
			names[i] = base
			continue
		}
		names[i] = base + strconv.Itoa(count)
	}
	return names
}

// escape makes literal text safe inside an expression.
func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '{', '(', '/':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
