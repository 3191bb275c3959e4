package lexer

import "github.com/swiftcore/lexer/internal/token"

// Editor Placeholder / Magic Pound (spec.md §4.9). Generalizes the
// teacher's readCharLiteral/handleHash dispatch shape (lexer.go: peek one
// byte after a sigil, decide the token class, fall back if ill-formed)
// from "`#` starts a character literal" to "`#` starts a pound-directive,
// and `<#` starts an editor placeholder".

// tryRecognizePlaceholder attempts `<#`…`#>` on a single line, starting
// at c (positioned at `<`). On success it yields Identifier; on any
// ill-formed input (no matching `#>` before a newline or EOF) it reports
// failure so the caller falls back to operator lexing (spec.md §4.9).
func tryRecognizePlaceholder(c Cursor) (token.Kind, Cursor, bool) {
	if b, ok := c.Peek(0); !ok || b != '<' {
		return token.Unknown, c, false
	}
	if n, ok := c.Peek(1); !ok || n != '#' {
		return token.Unknown, c, false
	}
	c.Advance() // '<'
	c.Advance() // '#'

	for {
		b, ok := c.Peek(0)
		if !ok || b == '\n' || b == '\r' {
			return token.Unknown, c, false
		}
		if b == '#' {
			if n, ok := c.Peek(1); ok && n == '>' {
				c.Advance()
				c.Advance()
				return token.Identifier, c, true
			}
		}
		c.Advance()
	}
}

// recognizeHash handles a `#` the driver has already determined is
// neither a raw-string-delimiter opener (hashRunFollowedByQuote) nor a
// regex prefix (tryRecognizeRegex): it is either a pound-directive
// keyword or the bare Pound fallback (spec.md §4.9).
func recognizeHash(c Cursor) (token.Kind, Cursor) {
	c.Advance() // '#'

	wordStart := c
	for {
		b, ok := c.Peek(0)
		if !ok || !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_') {
			break
		}
		c.Advance()
	}

	if c.pos == wordStart.pos {
		return token.Pound, c
	}

	text := string(wordStart.Slice(c))
	if kind, ok := token.LookupPound(text); ok {
		return kind, c
	}
	// Unrecognized pound-word: collapse to the bare Pound token without
	// consuming the trailing identifier run.
	return token.Pound, wordStart
}
