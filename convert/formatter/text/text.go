/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package text renders generated expressions one per line.
package text

import (
	"strings"

	"bennypowers.dev/stepex/convert/formatter"
	"bennypowers.dev/stepex/generator"
)

// Formatter outputs plain text.
type Formatter struct{}

// New creates a new text formatter.
func New() *Formatter {
	return &Formatter{}
}

// Format writes each expression's source on its own line.
func (f *Formatter) Format(exprs []*generator.GeneratedExpression, _ formatter.Options) ([]byte, error) {
	var sb strings.Builder
	for _, g := range exprs {
		sb.WriteString(g.Source())
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}
