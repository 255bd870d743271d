/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"golang.org/x/text/language"

	"bennypowers.dev/stepex/convert"
	"bennypowers.dev/stepex/convert/formatter/snippets"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
	"bennypowers.dev/stepex/testutil"
)

func generate(t *testing.T, texts ...string) []*generator.GeneratedExpression {
	t.Helper()
	g := generator.New(paramtype.NewRegistry(language.English), pattern.RE2())
	var out []*generator.GeneratedExpression
	for _, text := range texts {
		exprs, err := g.Generate(text)
		if err != nil {
			t.Fatalf("Generate(%q): %v", text, err)
		}
		out = append(out, exprs...)
	}
	return out
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected convert.Format
		wantErr  bool
	}{
		{"", convert.FormatText, false},
		{"text", convert.FormatText, false},
		{"TXT", convert.FormatText, false},
		{"json", convert.FormatJSON, false},
		{"vscode", convert.FormatVSCode, false},
		{"code", convert.FormatVSCode, false},
		{"zed", convert.FormatZed, false},
		{"textmate", convert.FormatTextMate, false},
		{"tmsnippet", convert.FormatTextMate, false},
		{"invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := convert.ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	for _, f := range convert.ValidFormats() {
		if _, err := convert.ParseFormat(f); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", f, err)
		}
	}
}

func TestFormatExpressions_Golden(t *testing.T) {
	exprs := generate(t, "I have 3 cucumbers", `I say "hi" 2 times`)

	for _, format := range []convert.Format{convert.FormatText, convert.FormatJSON, convert.FormatVSCode} {
		t.Run(string(format), func(t *testing.T) {
			out, err := convert.FormatExpressions(exprs, format, convert.Options{})
			if err != nil {
				t.Fatalf("FormatExpressions() error = %v", err)
			}
			testutil.Golden(t, "golden/convert/"+string(format)+".golden", out)
		})
	}
}

func TestFormatExpressions_Zed(t *testing.T) {
	exprs := generate(t, "I have 3 cucumbers")
	out, err := convert.FormatExpressions(exprs, convert.FormatZed, convert.Options{Prefix: "step-", Receiver: "ctx"})
	if err != nil {
		t.Fatalf("FormatExpressions() error = %v", err)
	}

	var got map[string]snippets.ZedSnippet
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	snippet, ok := got["I have {int} cucumbers"]
	if !ok {
		t.Fatalf("missing snippet, got %v", got)
	}
	if snippet.Prefix != "step-i-have-cucumbers" {
		t.Errorf("prefix = %q", snippet.Prefix)
	}
	if !strings.HasPrefix(snippet.Body[0], "ctx.Step(") {
		t.Errorf("body = %q, want the ctx receiver", snippet.Body)
	}
}

func TestFormatExpressions_TextMate(t *testing.T) {
	exprs := generate(t, `I say "hi" 2 times`)
	out, err := convert.FormatExpressions(exprs, convert.FormatTextMate, convert.Options{})
	if err != nil {
		t.Fatalf("FormatExpressions() error = %v", err)
	}
	s := string(out)
	for _, want := range []string{
		`<plist version="1.0">`,
		"<string>i-say-times</string>",
		"<string>source.go</string>",
		"func(string string, int int) error {\n\t$0",
	} {
		if !strings.Contains(s, want) {
			t.Errorf("expected output to contain %q\n%s", want, s)
		}
	}
}

func TestFormatExpressions_Unsupported(t *testing.T) {
	if _, err := convert.FormatExpressions(nil, convert.Format("pdf"), convert.Options{}); err == nil {
		t.Error("expected error for an unsupported format")
	}
}

func TestFormatExpressions_Empty(t *testing.T) {
	out, err := convert.FormatExpressions(nil, convert.FormatJSON, convert.Options{})
	if err != nil {
		t.Fatalf("FormatExpressions() error = %v", err)
	}
	if string(out) != "[]" {
		t.Errorf("got %s, want []", out)
	}
	if !slices.Contains(convert.ValidFormats(), "json") {
		t.Error("json should be a valid format")
	}
}
