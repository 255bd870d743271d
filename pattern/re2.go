/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package pattern

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"bennypowers.dev/stepex/diagnostic"
)

// RE2Name is the configuration name of the built-in back end.
const RE2Name = "re2"

// RE2 returns the built-in back end, backed by package regexp.
func RE2() Backend {
	return re2Backend{}
}

type re2Backend struct{}

func (re2Backend) Name() string { return RE2Name }

func (re2Backend) QuoteMeta(s string) string { return regexp.QuoteMeta(s) }

func (re2Backend) Compile(expr string) (Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", diagnostic.ErrBackend, err)
	}
	return &re2Regexp{re: re}, nil
}

type re2Regexp struct {
	re *regexp.Regexp
}

func (r *re2Regexp) String() string { return r.re.String() }

func (r *re2Regexp) FindSubmatch(text string) []Submatch {
	loc := r.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return nil
	}
	out := make([]Submatch, len(loc)/2)
	// loc is not sorted, so each byte offset is counted from the start.
	for i := range out {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			out[i] = Unmatched
			continue
		}
		out[i] = Submatch{
			Value:   text[start:end],
			Start:   utf8.RuneCountInString(text[:start]),
			End:     utf8.RuneCountInString(text[:end]),
			Matched: true,
		}
	}
	return out
}
