/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expression

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/paramtype"
	"bennypowers.dev/stepex/pattern"
)

var placeholder = regexp.MustCompile(`\{[^{}]*\}`)

// Factory creates expressions of either kind from their source.
type Factory struct {
	registry *paramtype.Registry
	backend  pattern.Backend
}

// NewFactory returns a factory compiling with backend, or with
// [pattern.Default] when backend is nil.
func NewFactory(registry *paramtype.Registry, backend pattern.Backend) *Factory {
	return &Factory{registry: registry, backend: backend}
}

// Registry returns the factory's parameter type registry.
func (f *Factory) Registry() *paramtype.Registry {
	return f.registry
}

// Create returns a RegularExpression when source starts with '^', ends with
// '$', or is wrapped in slashes, which are stripped. Anything else,
// including the empty string, is a CucumberExpression.
func (f *Factory) Create(source string) (Expression, error) {
	re, ok := regularSource(source)
	if !ok {
		return NewCucumberExpression(source, f.registry, f.backend)
	}
	e, err := NewRegularExpression(re, f.registry, f.backend)
	if err != nil {
		var ambiguous *AmbiguousParameterTypeError
		if !errors.As(err, &ambiguous) && placeholder.MatchString(re) {
			return nil, fmt.Errorf("%w: %q looks like a step expression but was compiled as a regular expression; "+
				"remove the anchors or slashes: %w", diagnostic.ErrAnchorsNotPermitted, source, err)
		}
		return nil, err
	}
	return e, nil
}

// MustCreate is like Create but panics on error.
func (f *Factory) MustCreate(source string) Expression {
	e, err := f.Create(source)
	if err != nil {
		panic(err)
	}
	return e
}

func regularSource(source string) (string, bool) {
	switch {
	case strings.HasPrefix(source, "^") || strings.HasSuffix(source, "$"):
		return source, true
	case len(source) >= 2 && strings.HasPrefix(source, "/") && strings.HasSuffix(source, "/"):
		return source[1 : len(source)-1], true
	}
	return "", false
}
