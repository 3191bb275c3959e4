package lexer

import "github.com/swiftcore/lexer/internal/token"

// Regex Speculator (spec.md §4.8). Generalizes the teacher's
// SaveState/RestoreState speculative-backtracking idiom (lexer.go's
// lookahead for ambiguous parses) from "restore a saved snapshot on
// failure" to "just don't return the advanced cursor" — a value-type
// Cursor makes rollback free, so speculation here is simply: try, and on
// failure hand the caller back nothing but `false`.

// tryRecognizeRegex attempts to lex a `/…/` or `#…/…/#` regex literal
// starting at c (positioned at `/` or a `#` run). It never mutates any
// cursor the caller still holds; on failure the caller falls back to
// operator or pound-directive lexing at the original position. The returned
// bool reports multi-line mode (token.Flags' IsMultiline).
func tryRecognizeRegex(c Cursor) (token.Kind, Cursor, bool, bool) {
	if leftBound(c) {
		return token.Unknown, c, false, false
	}

	poundCount := 0
	for {
		b, ok := c.Peek(0)
		if !ok || b != '#' {
			break
		}
		c.Advance()
		poundCount++
	}

	if b, ok := c.Peek(0); !ok || b != '/' {
		return token.Unknown, c, false, false
	}
	c.Advance() // '/'

	if poundCount == 0 {
		if b, ok := c.Peek(0); ok && (b == ' ' || b == '\t' || b == '\n' || b == '\r') {
			return token.Unknown, c, false, false
		}
	}

	isMultiline := false
	probe := c
	for {
		b, ok := probe.Peek(0)
		if !ok || (b != ' ' && b != '\t') {
			break
		}
		probe.Advance()
	}
	if b, ok := probe.Peek(0); ok && (b == '\n' || b == '\r') {
		isMultiline = true
	}

	depth := 0
	prevByte := byte(0)
	for {
		if depth == 0 && regexClosesHere(c, poundCount, isMultiline, prevByte) {
			for i := 0; i < 1+poundCount; i++ {
				c.Advance()
			}
			return token.RegexLiteral, c, true, isMultiline
		}

		b, ok := c.Peek(0)
		if !ok {
			return token.Unknown, c, false, false
		}

		switch {
		case b == '\n' || b == '\r':
			if !isMultiline {
				return token.Unknown, c, false, false
			}
			c.Advance()
			prevByte = b
		case b == '\\':
			c.Advance()
			if _, ok := c.Peek(0); ok {
				c.Advance()
			}
			prevByte = 0
		case b == '(':
			c.Advance()
			depth++
			prevByte = b
		case b == ')':
			depth--
			if depth < 0 {
				return token.Unknown, c, false, false
			}
			c.Advance()
			prevByte = b
		default:
			r, ok := c.advanceValidatingUTF8Character()
			if !ok {
				prevByte = 0
				continue
			}
			if r < 0x80 {
				prevByte = byte(r)
			} else {
				prevByte = 0
			}
		}
	}
}

// regexClosesHere reports whether c is positioned at a valid closing `/`:
// followed by exactly poundCount `#`s, not itself followed by `/` or `*`
// (which would make it a comment), and — for a non-raw, non-multiline
// regex — not preceded by a space or tab (spec.md §4.8).
func regexClosesHere(c Cursor, poundCount int, isMultiline bool, prevByte byte) bool {
	b, ok := c.Peek(0)
	if !ok || b != '/' {
		return false
	}
	if !matchesTrailingHashes(c, 1, poundCount) {
		return false
	}
	if n, ok := c.Peek(1 + poundCount); ok && (n == '/' || n == '*') {
		return false
	}
	if poundCount == 0 && !isMultiline && (prevByte == ' ' || prevByte == '\t') {
		return false
	}
	return true
}
