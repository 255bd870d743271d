/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert renders generated expressions in the output formats the
// CLI offers.
package convert

import (
	"fmt"
	"strings"

	"bennypowers.dev/stepex/convert/formatter"
	"bennypowers.dev/stepex/convert/formatter/flatjson"
	"bennypowers.dev/stepex/convert/formatter/snippets"
	"bennypowers.dev/stepex/convert/formatter/text"
	"bennypowers.dev/stepex/generator"
)

// Format represents an output format for generated expressions.
type Format string

const (
	// FormatText outputs one expression per line (default).
	FormatText Format = "text"

	// FormatJSON outputs a JSON array with parameter names and types.
	FormatJSON Format = "json"

	// FormatVSCode outputs VSCode snippets.
	FormatVSCode Format = "vscode"

	// FormatZed outputs Zed snippets.
	FormatZed Format = "zed"

	// FormatTextMate outputs TextMate plist snippets.
	FormatTextMate Format = "textmate"
)

// Options configures expression formatting.
type Options = formatter.Options

// ValidFormats returns all valid format strings.
func ValidFormats() []string {
	return []string{
		string(FormatText),
		string(FormatJSON),
		string(FormatVSCode),
		string(FormatZed),
		string(FormatTextMate),
	}
}

// ParseFormat converts a string to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "txt", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "vscode", "code":
		return FormatVSCode, nil
	case "zed":
		return FormatZed, nil
	case "textmate", "tmsnippet":
		return FormatTextMate, nil
	default:
		return "", fmt.Errorf("unknown format: %s (valid: %s)", s, strings.Join(ValidFormats(), ", "))
	}
}

// FormatExpressions renders exprs in the given format.
func FormatExpressions(exprs []*generator.GeneratedExpression, format Format, opts Options) ([]byte, error) {
	var f formatter.Formatter
	switch format {
	case FormatText:
		f = text.New()
	case FormatJSON:
		f = flatjson.New()
	case FormatVSCode:
		f = snippets.New(snippets.TypeVSCode)
	case FormatZed:
		f = snippets.New(snippets.TypeZed)
	case FormatTextMate:
		f = snippets.New(snippets.TypeTextMate)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
	return f.Format(exprs, opts)
}
