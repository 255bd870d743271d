/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package paramtype

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberParser parses decimal numbers written with a locale's symbols.
//
// Symbols are made keyboard friendly: the minus sign is always '-', and a
// grouping separator other than '.' or ',' (such as a narrow no-break space
// or an apostrophe) is replaced by whichever of the two is not the decimal
// separator.
type NumberParser struct {
	Tag      language.Tag
	Decimal  rune
	Grouping rune
	Minus    rune
}

// NewNumberParser derives the number symbols of tag.
func NewNumberParser(tag language.Tag) *NumberParser {
	p := &NumberParser{Tag: tag, Decimal: '.', Grouping: ',', Minus: '-'}

	printer := message.NewPrinter(tag)
	if sample := []rune(printer.Sprintf("%.1f", 1234.5)); len(sample) >= 6 {
		if d := sample[len(sample)-2]; !unicode.IsDigit(d) {
			p.Decimal = d
		}
		if g := sample[1]; !unicode.IsDigit(g) {
			p.Grouping = g
		} else if p.Decimal == ',' {
			p.Grouping = '.'
		}
	}

	if p.Grouping != '.' && p.Grouping != ',' {
		if p.Decimal == ',' {
			p.Grouping = '.'
		} else {
			p.Grouping = ','
		}
	}
	return p
}

// FloatRegexp returns a regexp for a signed decimal with an optional
// fraction, using the decimal separator.
func (p *NumberParser) FloatRegexp() string {
	return `[-+]?\d*` + regexp.QuoteMeta(string(p.Decimal)) + `?\d+`
}

// ParseFloat parses s as a float of the given bit size.
func (p *NumberParser) ParseFloat(s string, bitSize int) (float64, error) {
	n, err := p.normalize(s)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(n, bitSize)
}

// ParseBigFloat parses s with 256 bits of precision.
func (p *NumberParser) ParseBigFloat(s string) (*big.Float, error) {
	n, err := p.normalize(s)
	if err != nil {
		return nil, err
	}
	f, _, err := big.ParseFloat(n, 10, 256, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("failed to parse number %q: %w", s, err)
	}
	return f, nil
}

// normalize rewrites s in the notation strconv understands.
func (p *NumberParser) normalize(s string) (string, error) {
	var sb strings.Builder
	for _, r := range strings.TrimSpace(s) {
		switch {
		case r == p.Grouping:
		case r == p.Decimal:
			sb.WriteByte('.')
		case r == p.Minus || r == '-' || r == '−':
			sb.WriteByte('-')
		case r == '+', r == 'e', r == 'E', r >= '0' && r <= '9':
			sb.WriteRune(r)
		default:
			return "", fmt.Errorf("failed to parse number %q: unexpected %q", s, r)
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("failed to parse number %q", s)
	}
	return sb.String(), nil
}
