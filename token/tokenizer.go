/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"bennypowers.dev/stepex/diagnostic"
)

// Tokenize splits an expression into tokens. The stream always begins with a
// StartOfLine token and ends with an EndOfLine token.
func Tokenize(expression string) ([]Token, error) {
	t := &tokenizer{previous: StartOfLine}
	tokens := []Token{{Type: StartOfLine}}

	runes := []rune(expression)
	for _, r := range runes {
		if !t.treatAsText && r == EscapeCharacter {
			t.escaped++
			t.treatAsText = true
			continue
		}

		current := typeOf(r)
		if t.treatAsText {
			if !CanEscape(r) {
				return nil, diagnostic.CantEscape(expression, t.bufferStart+len(t.buffer)+t.escaped)
			}
			current = Text
		}
		t.treatAsText = false

		if t.previous != StartOfLine && (current != t.previous || !current.mergeable()) {
			tokens = append(tokens, t.flush(t.previous))
		}
		t.previous = current
		t.buffer = append(t.buffer, r)
	}

	if len(t.buffer) > 0 {
		tokens = append(tokens, t.flush(t.previous))
	}

	if t.treatAsText {
		return nil, diagnostic.EndOfLineCannotBeEscaped(expression)
	}

	tokens = append(tokens, Token{Type: EndOfLine, Start: len(runes), End: len(runes)})
	return tokens, nil
}

type tokenizer struct {
	buffer      []rune
	bufferStart int
	previous    Type
	treatAsText bool

	// escaped counts backslashes consumed since the last text token, so that
	// offsets stay aligned with the source as written.
	escaped int
}

func (t *tokenizer) flush(typ Type) Token {
	escapes := 0
	if typ == Text {
		escapes = t.escaped
		t.escaped = 0
	}
	end := t.bufferStart + len(t.buffer) + escapes
	tok := Token{
		Type:  typ,
		Text:  string(t.buffer),
		Start: t.bufferStart,
		End:   end,
	}
	t.buffer = t.buffer[:0:0]
	t.bufferStart = end
	return tok
}
