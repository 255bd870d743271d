/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validator checks step files: every expression must compile, no
// expression may be declared twice, and every example must match its
// expression and convert cleanly.
package validator

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/stepex/config"
	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/expression"
	stepfs "bennypowers.dev/stepex/fs"
	"bennypowers.dev/stepex/generator"
	"bennypowers.dev/stepex/internal/logger"
)

// ValidationError is one problem found in a step file.
type ValidationError struct {
	// FilePath is the file containing the problem.
	FilePath string
	// Line is the 1-based line of the offending step or example.
	Line int
	// Expression is the step expression concerned.
	Expression string
	// Message describes what's wrong.
	Message string
	// Suggestion provides an actionable fix.
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	var sb strings.Builder
	if e.FilePath != "" {
		sb.WriteString(e.FilePath)
		if e.Line > 0 {
			sb.WriteString(":" + strconv.Itoa(e.Line))
		}
		sb.WriteString(": ")
	}
	if e.Expression != "" {
		sb.WriteString(strconv.Quote(e.Expression))
		sb.WriteString(": ")
	}
	sb.WriteString(e.Message)
	if e.Suggestion != "" {
		sb.WriteString(" (")
		sb.WriteString(e.Suggestion)
		sb.WriteString(")")
	}
	return sb.String()
}

// StepFile is the document a step file holds.
//
//	steps:
//	  - expression: I have {int} cucumber(s)
//	    examples:
//	      - I have 3 cucumbers
//	      - text: I have 1 cucumber
//	        hints: [int64]
//	  - ^a regular expression$
type StepFile struct {
	Steps []Step `yaml:"steps"`
}

// Step is one step definition.
type Step struct {
	Expression string
	Examples   []Example
	Line       int

	hasExpression bool
}

// UnmarshalYAML accepts a bare string as a step without examples.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	s.Line = node.Line
	if node.Kind == yaml.ScalarNode {
		s.Expression = node.Value
		s.hasExpression = true
		return nil
	}
	var raw struct {
		Expression *string   `yaml:"expression"`
		Examples   []Example `yaml:"examples"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	if raw.Expression != nil {
		s.Expression = *raw.Expression
		s.hasExpression = true
	}
	s.Examples = raw.Examples
	return nil
}

// Example is step text expected to match its step's expression. Hints name
// the Go kind wanted for each argument, as in config.Kinds.
type Example struct {
	Text  string
	Hints []string
	Line  int
}

// UnmarshalYAML accepts a bare string as an example without hints.
func (e *Example) UnmarshalYAML(node *yaml.Node) error {
	e.Line = node.Line
	if node.Kind == yaml.ScalarNode {
		e.Text = node.Value
		return nil
	}
	var raw struct {
		Text  string   `yaml:"text"`
		Hints []string `yaml:"hints"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}
	e.Text, e.Hints = raw.Text, raw.Hints
	return nil
}

// Validator checks step files against one expression engine.
type Validator struct {
	factory   *expression.Factory
	generator *generator.Generator
}

// New returns a validator compiling with factory and suggesting
// expressions with gen.
func New(factory *expression.Factory, gen *generator.Generator) *Validator {
	return &Validator{factory: factory, generator: gen}
}

// ValidateFile reads and validates a step file. Only a read failure is
// returned as an error; problems with the content are ValidationErrors.
func (v *Validator) ValidateFile(filesystem stepfs.FileSystem, path string) ([]ValidationError, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return v.Validate(data, path), nil
}

// Validate checks step file content. The format is chosen by the file
// extension: ".json" files may contain comments, anything else is YAML.
func (v *Validator) Validate(content []byte, filePath string) []ValidationError {
	var file StepFile
	if err := yaml.Unmarshal(jsonAsYAML(content, filePath), &file); err != nil {
		return []ValidationError{{
			FilePath: filePath,
			Message:  fmt.Sprintf("failed to parse content: %v", err),
		}}
	}
	logger.Debug("validator: %s: %d steps", filePath, len(file.Steps))

	var errs []ValidationError
	seen := map[string]int{}
	for _, step := range file.Steps {
		if !step.hasExpression {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Line:       step.Line,
				Message:    "step has no expression",
				Suggestion: "add an expression key",
			})
			continue
		}
		if line, ok := seen[step.Expression]; ok {
			errs = append(errs, ValidationError{
				FilePath:   filePath,
				Line:       step.Line,
				Expression: step.Expression,
				Message:    fmt.Sprintf("duplicate of the step on line %d", line),
				Suggestion: "remove one of the definitions",
			})
			continue
		}
		seen[step.Expression] = step.Line
		errs = append(errs, v.validateStep(filePath, step)...)
	}
	return errs
}

func (v *Validator) validateStep(filePath string, step Step) []ValidationError {
	problem := func(line int, message, suggestion string) ValidationError {
		return ValidationError{
			FilePath:   filePath,
			Line:       line,
			Expression: step.Expression,
			Message:    message,
			Suggestion: suggestion,
		}
	}

	expr, err := v.factory.Create(step.Expression)
	if err != nil {
		message, suggestion := v.describe(err, step)
		return []ValidationError{problem(step.Line, message, suggestion)}
	}

	var errs []ValidationError
	for _, ex := range step.Examples {
		args, ok := expr.Match(ex.Text, hints(ex.Hints)...)
		if !ok {
			errs = append(errs, problem(ex.Line,
				fmt.Sprintf("example %q does not match", ex.Text), v.suggest(ex.Text)))
			continue
		}
		for i, arg := range args {
			if _, err := arg.Value(); err != nil {
				errs = append(errs, problem(ex.Line,
					fmt.Sprintf("example %q: argument %d: %v", ex.Text, i+1, err),
					fmt.Sprintf("use a value %s can convert", arg.ParameterType())))
			}
		}
	}
	return errs
}

func (v *Validator) describe(err error, step Step) (message, suggestion string) {
	var derr *diagnostic.Error
	var ambiguous *expression.AmbiguousParameterTypeError
	switch {
	case errors.Is(err, diagnostic.ErrAnchorsNotPermitted):
		return "looks like a step expression but has regular expression anchors",
			"remove the anchors or slashes"

	case errors.As(err, &derr):
		return fmt.Sprintf("%s at column %d", derr.Problem, derr.Column()), derr.Remedy

	case errors.As(err, &ambiguous):
		names := make([]string, len(ambiguous.ParameterTypes))
		for i, p := range ambiguous.ParameterTypes {
			names[i] = p.String()
		}
		message = fmt.Sprintf("group /%s/ matches %s", ambiguous.Regexp, strings.Join(names, ", "))
		suggestion = "make one of the parameter types preferential"
		if len(step.Examples) > 0 {
			if exprs, gerr := v.generator.Generate(step.Examples[0].Text); gerr == nil && len(exprs) > 0 {
				ambiguous = ambiguous.WithSuggestions(exprs)
				suggestion += " or use " + strconv.Quote(ambiguous.Suggestions[0].Source())
			}
		}
		return message, suggestion

	}
	return err.Error(), ""
}

func (v *Validator) suggest(text string) string {
	exprs, err := v.generator.Generate(text)
	if err != nil || len(exprs) == 0 {
		return ""
	}
	return "an expression matching it is " + strconv.Quote(exprs[0].Source())
}

func hints(kinds []string) []reflect.Type {
	if len(kinds) == 0 {
		return nil
	}
	out := make([]reflect.Type, len(kinds))
	for i, k := range kinds {
		t, ok := config.Kinds[k]
		if !ok && k != "" {
			logger.Warn("unknown hint %q, ignoring", k)
		}
		out[i] = t
	}
	return out
}

// jsonAsYAML strips comments and trailing commas from JSON files. The
// result is valid YAML with the same line breaks, so lines reported for
// JSON files are accurate.
func jsonAsYAML(content []byte, filePath string) []byte {
	if filepath.Ext(filePath) != ".json" {
		return content
	}
	return jsonc.ToJSON(content)
}
