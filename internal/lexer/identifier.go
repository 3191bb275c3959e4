package lexer

import (
	"unicode"

	"github.com/swiftcore/lexer/internal/token"
)

// Identifier / dollar-identifier / backtick-identifier recognition
// (spec.md §4.6). Generalizes the teacher's readIdentifier/isLetter
// (lexer.go) — ASCII-letter-or-underscore start, letter/digit/underscore
// continuation — into the wider Unicode identifier-start/continue
// predicates spec.md requires, using stdlib unicode classification the
// same way the teacher's isLetter does (no third-party Unicode-property
// table in this corpus is a better fit, and spec.md explicitly excludes
// NFC/NFD normalization, so a richer XID table would be scope creep).

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierContinue(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// recognizeIdentifier scans an identifier starting at c (which must be
// positioned at a byte/scalar satisfying isIdentifierStart) and returns
// the resulting kind and the cursor positioned just past it.
func recognizeIdentifier(c Cursor) (token.Kind, Cursor) {
	start := c
	c.AdvanceWhile(isIdentifierContinue)
	text := string(start.Slice(c))

	if token.IsWildcard(text) {
		return token.Wildcard, c
	}
	return token.Identifier, c
}

// recognizeBacktick handles `` `ident` `` (spec.md §4.6): a closed
// backtick pair (including the special `` `$` `` form) yields
// Identifier; an unclosed backtick yields the Backtick punctuation
// token.
func recognizeBacktick(c Cursor) (token.Kind, Cursor) {
	start := c
	c.Advance() // opening `

	if b, ok := c.Peek(0); ok && b == '$' {
		if n, ok := c.Peek(1); ok && n == '`' {
			c.Advance()
			c.Advance()
			return token.Identifier, c
		}
	}

	bodyStart := c
	for {
		b, ok := c.Peek(0)
		if !ok || b == '\n' {
			// Unterminated: just the lone backtick is the token.
			return token.Backtick, start.withLength(1)
		}
		if b == '`' {
			if c.pos == bodyStart.pos {
				// `` empty identifier body `` — still a closed pair.
				c.Advance()
				return token.Identifier, c
			}
			c.Advance()
			return token.Identifier, c
		}
		if !c.AdvanceIf(isIdentifierContinue) {
			// A non-identifier byte inside the backticks: not a valid
			// escaped identifier. Fall back to the lone backtick token.
			return token.Backtick, start.withLength(1)
		}
	}
}

// withLength returns a cursor advanced n bytes past c (used to build a
// short fixed-width token like a lone backtick).
func (c Cursor) withLength(n int) Cursor {
	for i := 0; i < n; i++ {
		c.Advance()
	}
	return c
}

// recognizeDollarIdentifier handles spec.md §4.6's `$` forms: digits-only
// yields DollarIdentifier, any other identifier-continue byte yields
// Identifier, and a bare `$` yields Identifier.
func recognizeDollarIdentifier(c Cursor) (token.Kind, Cursor) {
	c.Advance() // '$'

	digitsStart := c
	for {
		b, ok := c.Peek(0)
		if !ok || b < '0' || b > '9' {
			break
		}
		c.Advance()
	}
	if c.pos > digitsStart.pos {
		return token.DollarIdentifier, c
	}

	if c.AdvanceIf(isIdentifierContinue) {
		c.AdvanceWhile(isIdentifierContinue)
		return token.Identifier, c
	}

	return token.Identifier, c
}
