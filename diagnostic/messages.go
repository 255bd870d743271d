/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package diagnostic

import (
	"fmt"
	"unicode/utf8"
)

func syntax(source string, start, end int, problem, remedy string) *Error {
	return &Error{
		Kind:    ErrSyntax,
		Source:  source,
		Start:   start,
		End:     end,
		Problem: problem,
		Remedy:  remedy,
	}
}

// CantEscape reports an escape of a character that has no special meaning.
// index is the codepoint offset of the escaped character.
func CantEscape(source string, index int) *Error {
	return syntax(source, index, index+1,
		"Only the characters '{', '}', '(', ')', '\\', '/' and whitespace can be escaped",
		"If you did mean to use an '\\' you can use '\\\\' to escape it")
}

// EndOfLineCannotBeEscaped reports a trailing escape character.
func EndOfLineCannotBeEscaped(source string) *Error {
	index := utf8.RuneCountInString(source) - 1
	return syntax(source, index, index+1,
		"The end of line can not be escaped",
		"You can use '\\\\' to escape the '\\'")
}

// MissingEndToken reports a '{' or '(' without its closing partner.
// start and end span the opening token.
func MissingEndToken(source string, begin, finish rune, start, end int) *Error {
	article, purpose := "", "optional text"
	if begin == '{' {
		article, purpose = "a ", "parameter"
	}
	return syntax(source, start, end,
		fmt.Sprintf("The '%c' does not have a matching '%c'", begin, finish),
		fmt.Sprintf("If you did not intend to use %s%s you can use '\\%c' to escape the %s", article, purpose, begin, purpose))
}

// AlternationNotAllowedInOptional reports a '/' between '(' and ')'.
func AlternationNotAllowedInOptional(source string, start, end int) *Error {
	return syntax(source, start, end,
		"An alternation can not be used inside an optional",
		"If you did not mean to use an alternation you can use '\\/' to escape the '/'. Otherwise rephrase your expression or consider using a regular expression instead")
}

// AlternativeMayNotBeEmpty reports nothing between two '/' or at either end of an alternation.
func AlternativeMayNotBeEmpty(source string, start, end int) *Error {
	return syntax(source, start, end,
		"Alternative may not be empty",
		"If you did not mean to use an alternative you can use '\\/' to escape the '/'")
}

// AlternativeMayNotExclusivelyContainOptionals reports an alternative made only of optionals.
func AlternativeMayNotExclusivelyContainOptionals(source string, start, end int) *Error {
	return syntax(source, start, end,
		"An alternative may not exclusively contain optionals",
		"If you did not mean to use an optional you can use '\\(' to escape the '('")
}

// OptionalMayNotBeEmpty reports an optional without any text.
func OptionalMayNotBeEmpty(source string, start, end int) *Error {
	return syntax(source, start, end,
		"An optional must contain some text",
		"If you did not mean to use an optional you can use '\\(' to escape the '('")
}

// ParameterIsNotAllowedInOptional reports a {parameter} inside an optional.
func ParameterIsNotAllowedInOptional(source string, start, end int) *Error {
	return syntax(source, start, end,
		"An optional may not contain a parameter type",
		"If you did not mean to use an parameter type you can use '\\{' to escape the '{'")
}

// OptionalIsNotAllowedInOptional reports a nested optional.
func OptionalIsNotAllowedInOptional(source string, start, end int) *Error {
	return syntax(source, start, end,
		"An optional may not contain an other optional",
		"If you did not mean to use an optional type you can use '\\(' to escape the '('. For more complicated expressions consider using a regular expression instead")
}

// InvalidParameterTypeNameInNode reports a reserved character inside {…}.
func InvalidParameterTypeNameInNode(source string, start, end int) *Error {
	e := syntax(source, start, end,
		"Parameter names may not contain '{', '}', '(', ')', '\\' or '/'",
		"Did you mean to use a regular expression?")
	e.Kind = ErrInvalidParameterTypeName
	return e
}

// UndefinedParameterType reports a {name} that the registry does not know.
func UndefinedParameterType(source string, start, end int, name string) *Error {
	e := syntax(source, start, end,
		fmt.Sprintf("Undefined parameter type '%s'", name),
		fmt.Sprintf("Please register a parameter type for '%s'", name))
	e.Kind = ErrUndefinedParameterType
	return e
}

// InvalidParameterTypeName reports a parameter type defined under an illegal name.
func InvalidParameterTypeName(name string) error {
	return fmt.Errorf("%w: illegal character in parameter name {%s}. Parameter names may not contain '{', '}', '(', ')', '\\' or '/'",
		ErrInvalidParameterTypeName, name)
}
