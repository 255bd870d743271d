/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package snippets renders generated expressions as editor snippets that
// expand to a Go step definition.
package snippets

import (
	"encoding/json"
	"strings"

	"bennypowers.dev/stepex/convert/formatter"
	"bennypowers.dev/stepex/generator"
)

// Type represents the snippet output format.
type Type string

const (
	// TypeVSCode outputs VSCode/JSON snippets format.
	TypeVSCode Type = "vscode"

	// TypeTextMate outputs TextMate/plist snippets format.
	TypeTextMate Type = "textmate"

	// TypeZed outputs Zed editor snippets format.
	TypeZed Type = "zed"
)

// Snippet represents a VSCode snippet entry.
type Snippet struct {
	Scope       string   `json:"scope"`
	Prefix      []string `json:"prefix"`
	Body        []string `json:"body"`
	Description string   `json:"description,omitempty"`
}

// ZedSnippet represents a Zed editor snippet entry.
// Zed uses a single prefix string and no scope field.
type ZedSnippet struct {
	Prefix      string   `json:"prefix,omitempty"`
	Body        []string `json:"body"`
	Description string   `json:"description,omitempty"`
}

// Formatter outputs editor snippets.
type Formatter struct {
	typ Type
}

// New creates a snippets formatter of the given type. An empty type
// selects VSCode.
func New(typ Type) *Formatter {
	if typ == "" {
		typ = TypeVSCode
	}
	return &Formatter{typ: typ}
}

// Format converts expressions to editor snippets, keyed by expression.
func (f *Formatter) Format(exprs []*generator.GeneratedExpression, opts formatter.Options) ([]byte, error) {
	switch f.typ {
	case TypeTextMate:
		return formatTextMate(exprs, opts), nil
	case TypeZed:
		m := make(map[string]ZedSnippet, len(exprs))
		for _, g := range exprs {
			m[g.Source()] = ZedSnippet{
				Prefix:      opts.Prefix + formatter.SnippetName(g),
				Body:        Body(g, opts),
				Description: description(g),
			}
		}
		return json.MarshalIndent(m, "", "  ")
	default:
		m := make(map[string]Snippet, len(exprs))
		for _, g := range exprs {
			m[g.Source()] = Snippet{
				Scope:       "go",
				Prefix:      []string{opts.Prefix + formatter.SnippetName(g)},
				Body:        Body(g, opts),
				Description: description(g),
			}
		}
		return json.MarshalIndent(m, "", "  ")
	}
}

// Body returns the snippet lines for g: a step registration whose function
// takes one typed parameter per placeholder, with the cursor in its body.
func Body(g *generator.GeneratedExpression, opts formatter.Options) []string {
	return []string{
		escape(opts.ReceiverOrDefault()+".Step("+formatter.GoString(g.Source())+", func("+formatter.Signature(g)+")") + " error {",
		"\t$0",
		"\treturn nil",
		"})",
	}
}

func description(g *generator.GeneratedExpression) string {
	types := formatter.TypeNames(g)
	if len(types) == 0 {
		return ""
	}
	return "Parameters: " + strings.Join(types, ", ")
}

// escape protects snippet syntax characters in literal text.
func escape(s string) string {
	var sb strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '$', '}':
			sb.WriteByte('\\')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func formatTextMate(exprs []*generator.GeneratedExpression, opts formatter.Options) []byte {
	var sb strings.Builder
	sb.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<array>
`)
	for _, g := range exprs {
		sb.WriteString("  <dict>\n")
		sb.WriteString("    <key>name</key>\n")
		sb.WriteString("    <string>" + formatter.EscapeXML(g.Source()) + "</string>\n")
		sb.WriteString("    <key>tabTrigger</key>\n")
		sb.WriteString("    <string>" + formatter.EscapeXML(opts.Prefix+formatter.SnippetName(g)) + "</string>\n")
		sb.WriteString("    <key>content</key>\n")
		sb.WriteString("    <string>" + formatter.EscapeXML(strings.Join(Body(g, opts), "\n")) + "</string>\n")
		sb.WriteString("    <key>scope</key>\n")
		sb.WriteString("    <string>source.go</string>\n")
		sb.WriteString("  </dict>\n")
	}
	sb.WriteString("</array>\n</plist>\n")
	return []byte(sb.String())
}
