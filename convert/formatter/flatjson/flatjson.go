/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flatjson renders generated expressions as a JSON array.
package flatjson

import (
	"encoding/json"

	"bennypowers.dev/stepex/convert/formatter"
	"bennypowers.dev/stepex/generator"
)

// Entry is one generated expression.
type Entry struct {
	Source         string   `json:"source"`
	ParameterNames []string `json:"parameterNames"`
	ParameterTypes []string `json:"parameterTypes"`
}

// Formatter outputs a JSON array of entries.
type Formatter struct{}

// New creates a new JSON formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format converts expressions to a JSON array.
func (f *Formatter) Format(exprs []*generator.GeneratedExpression, _ formatter.Options) ([]byte, error) {
	entries := make([]Entry, len(exprs))
	for i, g := range exprs {
		entries[i] = Entry{
			Source:         g.Source(),
			ParameterNames: g.ParameterNames(),
			ParameterTypes: formatter.TypeNames(g),
		}
	}
	return json.MarshalIndent(entries, "", "  ")
}
