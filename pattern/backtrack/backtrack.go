/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package backtrack provides a backtracking pattern back end with lookaround
// and backreference support. Importing it registers the back end:
//
//	import _ "bennypowers.dev/stepex/pattern/backtrack"
//
// Named groups are numbered after unnamed ones by this engine, so parameter
// type patterns should avoid them.
package backtrack

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"

	"bennypowers.dev/stepex/diagnostic"
	"bennypowers.dev/stepex/pattern"
)

// Name is the configuration name of this back end.
const Name = "backtrack"

// MatchTimeout bounds a single match.
var MatchTimeout = 5 * time.Second

func init() {
	pattern.Register(New())
}

// New returns the back end.
func New() pattern.Backend {
	return backend{}
}

type backend struct{}

func (backend) Name() string { return Name }

func (backend) QuoteMeta(s string) string { return regexp2.Escape(s) }

func (backend) Compile(expr string) (pattern.Regexp, error) {
	re, err := regexp2.Compile(expr, regexp2.RE2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", diagnostic.ErrBackend, err)
	}
	re.MatchTimeout = MatchTimeout
	return &compiled{re: re}, nil
}

type compiled struct {
	re *regexp2.Regexp
}

func (r *compiled) String() string { return r.re.String() }

// FindSubmatch reports a timed-out match as no match.
func (r *compiled) FindSubmatch(text string) []pattern.Submatch {
	m, err := r.re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil
	}
	groups := m.Groups()
	out := make([]pattern.Submatch, len(groups))
	for i, g := range groups {
		if len(g.Captures) == 0 {
			out[i] = pattern.Unmatched
			continue
		}
		// Index and Length count runes.
		out[i] = pattern.Submatch{
			Value:   g.String(),
			Start:   g.Index,
			End:     g.Index + g.Length,
			Matched: true,
		}
	}
	return out
}
