/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package snippets_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"

	"bennypowers.dev/stepex/convert/formatter"
	"bennypowers.dev/stepex/convert/formatter/snippets"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

func generate(t *testing.T, text string) []*generator.GeneratedExpression {
	t.Helper()
	r := paramtype.NewRegistry(language.English)
	exprs, err := generator.New(r, pattern.RE2()).Generate(text)
	if err != nil {
		t.Fatalf("Generate(%q): %v", text, err)
	}
	return exprs
}

func TestBody(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts formatter.Options
		want []string
	}{
		{
			name: "no parameters",
			text: "I am hungry",
			want: []string{"s.Step(`I am hungry`, func() error {", "\t$0", "\treturn nil", "})"},
		},
		{
			name: "placeholders escaped",
			text: "I pay 5 dollars",
			opts: formatter.Options{Receiver: "sc"},
			want: []string{`sc.Step(` + "`I pay {int\\} dollars`" + `, func(int int) error {`, "\t$0", "\treturn nil", "})"},
		},
		{
			name: "dollar and backslash escaped",
			text: `I pay $ \ month`,
			want: []string{"s.Step(`I pay \\$ \\\\\\\\ month`, func() error {", "\t$0", "\treturn nil", "})"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := snippets.Body(generate(t, tt.text)[0], tt.opts)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Body() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat_VSCode(t *testing.T) {
	out, err := snippets.New("").Format(generate(t, "I have 3 cucumbers"), formatter.Options{Prefix: "given-"})
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	var got map[string]snippets.Snippet
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	want := map[string]snippets.Snippet{
		"I have {int} cucumbers": {
			Scope:       "go",
			Prefix:      []string{"given-i-have-cucumbers"},
			Body:        []string{"s.Step(`I have {int\\} cucumbers`, func(int int) error {", "\t$0", "\treturn nil", "})"},
			Description: "Parameters: int",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Format() mismatch (-want +got):\n%s", diff)
	}
}
