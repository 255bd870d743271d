/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package match provides the match command for stepex.
package match

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/spf13/cobra"

	"bennypowers.dev/stepex/ast"
	"bennypowers.dev/stepex/config"
	"bennypowers.dev/stepex/expression"
	"bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/internal/cli"
)

// ErrNoMatch is returned when the text does not match the expression.
var ErrNoMatch = errors.New("no match")

// Cmd is the match cobra command.
var Cmd = &cobra.Command{
	Use:   "match <expression> <text>",
	Short: "Match text against an expression",
	Long: `Match text against a step expression or regular expression and print the
arguments it yields.

Expressions starting with ^, ending with $ or wrapped in slashes are regular
expressions; anything else is a step expression.

Examples:
  stepex match "I have {int} cucumber(s)" "I have 42 cucumbers"
  stepex match "^I have (\d+) cucumbers$" "I have 42 cucumbers" --hint int64
  stepex match --ast "I have {int} cucumber(s)" "I have 1 cucumber"`,
	Args: cobra.ExactArgs(2),
	RunE: run,
}

func init() {
	Cmd.Flags().StringArray("hint", nil, "Go type wanted for each argument, in order (repeatable)")
	Cmd.Flags().StringP("format", "f", "text", "Output format: text, json")
	Cmd.Flags().Bool("ast", false, "Print the syntax tree of a step expression")
}

// Result is one matched argument.
type Result struct {
	Parameter string `json:"parameter"`
	Type      string `json:"type"`
	Text      string `json:"text"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Value     any    `json:"value,omitempty"`
	Error     string `json:"error,omitempty"`
}

func run(cmd *cobra.Command, args []string) error {
	hintNames, _ := cmd.Flags().GetStringArray("hint")
	format, _ := cmd.Flags().GetString("format")
	showAST, _ := cmd.Flags().GetBool("ast")

	_, engine, err := cli.Load(fs.NewOSFileSystem())
	if err != nil {
		return err
	}

	hints, err := parseHints(hintNames)
	if err != nil {
		return err
	}

	expr, err := engine.Factory.Create(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if showAST {
		if ce, ok := expr.(*expression.CucumberExpression); ok {
			fmt.Fprint(out, ast.Dump(ce.AST()))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), "--ast applies to step expressions only")
		}
	}

	matched, ok := expr.Match(args[1], hints...)
	if !ok {
		return fmt.Errorf("%w: %q does not match /%s/", ErrNoMatch, args[1], expr.Regexp())
	}
	results := Results(matched)

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	default:
		writeText(out, results)
		return nil
	}
}

// Results converts matched arguments, evaluating each value. Conversion
// failures are reported per argument.
func Results(args []*expression.Argument) []Result {
	results := make([]Result, 0, len(args))
	for _, a := range args {
		r := Result{
			Parameter: a.ParameterType().String(),
			Type:      a.ParameterType().TypeName(),
			Text:      a.Text(),
			Start:     a.Group().Start,
			End:       a.Group().End,
		}
		if v, err := a.Value(); err != nil {
			r.Error = err.Error()
		} else {
			r.Value = v
		}
		results = append(results, r)
	}
	return results
}

func writeText(w io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(w, "matched, no arguments")
		return
	}
	for i, r := range results {
		if r.Error != "" {
			fmt.Fprintf(w, "%d: %-12s %q error: %s\n", i+1, r.Parameter, r.Text, r.Error)
			continue
		}
		fmt.Fprintf(w, "%d: %-12s %q -> %v (%T)\n", i+1, r.Parameter, r.Text, r.Value, r.Value)
	}
}

func parseHints(names []string) ([]reflect.Type, error) {
	hints := make([]reflect.Type, len(names))
	for i, name := range names {
		if name == "" || name == "-" {
			continue
		}
		t, ok := config.Kinds[name]
		if !ok {
			return nil, fmt.Errorf("unknown hint %q", name)
		}
		hints[i] = t
	}
	return hints, nil
}
