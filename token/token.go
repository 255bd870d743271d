/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token splits step expressions into tokens.
package token

import (
	"fmt"
	"unicode"
)

// Special characters of the placeholder grammar.
const (
	EscapeCharacter         = '\\'
	AlternationCharacter    = '/'
	BeginParameterCharacter = '{'
	EndParameterCharacter   = '}'
	BeginOptionalCharacter  = '('
	EndOptionalCharacter    = ')'
)

// Type is the kind of a token.
type Type int

const (
	// StartOfLine is the synthetic first token of every stream.
	StartOfLine Type = iota

	// EndOfLine is the synthetic last token of every stream.
	EndOfLine

	// WhiteSpace is a run of unescaped whitespace.
	WhiteSpace

	// BeginOptional is '('.
	BeginOptional

	// EndOptional is ')'.
	EndOptional

	// BeginParameter is '{'.
	BeginParameter

	// EndParameter is '}'.
	EndParameter

	// Alternation is '/'.
	Alternation

	// Text is a run of literal characters, including escaped ones.
	Text
)

// String returns the name of the token type.
func (t Type) String() string {
	switch t {
	case StartOfLine:
		return "start_of_line"
	case EndOfLine:
		return "end_of_line"
	case WhiteSpace:
		return "whitespace"
	case BeginOptional:
		return "begin_optional"
	case EndOptional:
		return "end_optional"
	case BeginParameter:
		return "begin_parameter"
	case EndParameter:
		return "end_parameter"
	case Alternation:
		return "alternation"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Symbol returns the character a structural token type stands for, or 0.
func (t Type) Symbol() rune {
	switch t {
	case BeginOptional:
		return BeginOptionalCharacter
	case EndOptional:
		return EndOptionalCharacter
	case BeginParameter:
		return BeginParameterCharacter
	case EndParameter:
		return EndParameterCharacter
	case Alternation:
		return AlternationCharacter
	default:
		return 0
	}
}

// Token is a lexical unit of an expression.
// Start and End are codepoint offsets into the source as written, so an
// escaped character's token spans its backslash too.
type Token struct {
	Type  Type
	Text  string
	Start int
	End   int
}

// String returns a debug representation of the token.
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)[%d:%d]", t.Type, t.Text, t.Start, t.End)
}

// CanEscape reports whether r may follow the escape character.
func CanEscape(r rune) bool {
	if unicode.Is(unicode.White_Space, r) {
		return true
	}
	switch r {
	case EscapeCharacter,
		AlternationCharacter,
		BeginParameterCharacter,
		EndParameterCharacter,
		BeginOptionalCharacter,
		EndOptionalCharacter:
		return true
	}
	return false
}

func typeOf(r rune) Type {
	if unicode.Is(unicode.White_Space, r) {
		return WhiteSpace
	}
	switch r {
	case AlternationCharacter:
		return Alternation
	case BeginParameterCharacter:
		return BeginParameter
	case EndParameterCharacter:
		return EndParameter
	case BeginOptionalCharacter:
		return BeginOptional
	case EndOptionalCharacter:
		return EndOptional
	}
	return Text
}

// mergeable reports whether consecutive characters of type t share a token.
func (t Type) mergeable() bool {
	return t == Text || t == WhiteSpace
}
