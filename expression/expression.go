/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expression compiles step expressions and matches step text
// against them.
//
// Two kinds of Expression exist: [CucumberExpression], compiled from the
// placeholder grammar ("I have {int} cucumber(s)"), and [RegularExpression],
// a pattern written by hand ("^I have (\d+) cucumbers?$"). [Factory] picks
// one from the shape of the source.
package expression

import (
	"reflect"

	"bennypowers.dev/stepex/pattern"
)

// Expression matches step text and extracts typed arguments.
type Expression interface {
	// Match matches text. hints name the Go type wanted for each argument,
	// positionally. ok is false when text does not match.
	Match(text string, hints ...reflect.Type) (args []*Argument, ok bool)

	// Source returns the expression as written.
	Source() string

	// Regexp returns the compiled pattern.
	Regexp() pattern.Regexp

	expression()
}

func (*CucumberExpression) expression() {}
func (*RegularExpression) expression()  {}

func hintAt(hints []reflect.Type, i int) (reflect.Type, bool) {
	if i < len(hints) && hints[i] != nil {
		return hints[i], true
	}
	return nil, false
}
