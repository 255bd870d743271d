/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package formatter provides the interface and common utilities for
// rendering generated expressions.
package formatter

import (
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"

	"bennypowers.dev/stepex/generator"
)

// Formatter defines the interface for output formatters.
type Formatter interface {
	// Format renders generated expressions in the target format.
	Format(exprs []*generator.GeneratedExpression, opts Options) ([]byte, error)
}

// Options configures formatter behavior.
type Options struct {
	// Prefix is prepended to snippet triggers.
	Prefix string

	// Receiver is the variable step definitions are registered on.
	// Defaults to "s".
	Receiver string
}

// ReceiverOrDefault returns the receiver, or "s" when unset.
func (o Options) ReceiverOrDefault() string {
	if o.Receiver == "" {
		return "s"
	}
	return o.Receiver
}

// TypeNames returns the Go type name of each parameter of g.
func TypeNames(g *generator.GeneratedExpression) []string {
	types := g.ParameterTypes()
	names := make([]string, len(types))
	for i, p := range types {
		names[i] = p.TypeName()
	}
	return names
}

// Signature renders the parameter list of a step function for g, e.g.
// "int int, string2 string".
func Signature(g *generator.GeneratedExpression) string {
	names := g.ParameterNames()
	types := TypeNames(g)
	params := make([]string, len(names))
	for i := range names {
		params[i] = names[i] + " " + types[i]
	}
	return strings.Join(params, ", ")
}

// GoString renders s as a Go string literal, raw when possible.
func GoString(s string) string {
	if strings.ContainsAny(s, "`\r") {
		return strconv.Quote(s)
	}
	return "`" + s + "`"
}

// SnippetName derives a kebab-case trigger from the literal words of an
// expression, e.g. "i-have-cucumbers" for "I have {int} cucumbers".
func SnippetName(g *generator.GeneratedExpression) string {
	var sb strings.Builder
	depth := 0
	for _, r := range g.Source() {
		switch {
		case r == '{':
			depth++
		case r == '}':
			depth--
		case depth > 0:
		case r == '\\':
		case isWordRune(r):
			sb.WriteRune(r)
		default:
			sb.WriteByte(' ')
		}
	}
	name := strcase.ToKebab(strings.Join(strings.Fields(sb.String()), " "))
	if name == "" {
		return "step"
	}
	return name
}

func isWordRune(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// EscapeXML escapes special XML characters.
func EscapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
