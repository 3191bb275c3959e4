package lexer

// Trivia Scanner (spec.md §4.4). Generalizes the teacher's
// skipWhitespace/readLineComment/readBlockComment/readCStyleComment
// (lexer.go) from "consume and discard" into "consume and report a byte
// count", and adds conflict-marker and shebang recognition the teacher's
// language has no analogue for.

// scanTrivia consumes trivia starting at c, returning the updated cursor
// and whether a newline was seen. leading selects whether LF/CR are
// eligible to be consumed (trailing trivia must never contain a
// newline, per spec.md §4.4 and the asserted invariant in spec.md §8).
func scanTrivia(c Cursor, leading bool) (Cursor, bool) {
	sawNewline := false
	for {
		if !c.state.admitsLeadingTrivia() {
			return c, sawNewline
		}
		if c.state.IsInStringLiteral() {
			// Only a newline terminates single-line-string trivia
			// scanning (spec.md §4.4).
			b, ok := c.Peek(0)
			if !ok || (b != '\n' && b != '\r') {
				return c, sawNewline
			}
		}

		b, ok := c.Peek(0)
		if !ok {
			return c, sawNewline
		}

		switch {
		case b == ' ' || b == '\t' || b == '\v' || b == '\f':
			c.Advance()
			continue
		case b == '\n':
			if !leading {
				return c, sawNewline
			}
			c.Advance()
			sawNewline = true
			continue
		case b == '\r':
			if !leading {
				return c, sawNewline
			}
			c.Advance()
			if n, ok := c.Peek(0); ok && n == '\n' {
				c.Advance()
			}
			sawNewline = true
			continue
		case b == '/' && leading:
			if n, ok := c.Peek(1); ok && n == '/' {
				scanLineComment(&c)
				continue
			}
			if n, ok := c.Peek(1); ok && n == '*' {
				scanBlockComment(&c)
				continue
			}
			return c, sawNewline
		case b == 0xEF && leading && c.pos == 0:
			if n1, ok1 := c.Peek(1); ok1 && n1 == 0xBB {
				if n2, ok2 := c.Peek(2); ok2 && n2 == 0xBF {
					c.Advance()
					c.Advance()
					c.Advance()
					continue
				}
			}
			return c, sawNewline
		case b == '#' && leading && c.pos == 0:
			if n, ok := c.Peek(1); ok && n == '!' {
				scanShebang(&c)
				continue
			}
			return c, sawNewline
		case leading && isLineStart(c) && isConflictMarkerStart(c):
			if scanConflictMarker(&c) {
				continue
			}
			return c, sawNewline
		default:
			if lexUnknownTriviaByte(&c) {
				continue
			}
			return c, sawNewline
		}
	}
}

// isLineStart reports whether c is at buffer start or immediately after
// a newline — conflict markers are only recognized at line start.
func isLineStart(c Cursor) bool {
	if c.pos == 0 {
		return true
	}
	prev := c.Previous()
	return prev == '\n' || prev == '\r'
}

func scanLineComment(c *Cursor) {
	c.Advance() // '/'
	c.Advance() // '/'
	for {
		b, ok := c.Peek(0)
		if !ok || b == '\n' || b == '\r' {
			return
		}
		c.Advance()
	}
}

// scanBlockComment consumes a `/* … */` comment with arbitrary nesting,
// tracking depth the way the teacher's readBlockComment/readCStyleComment
// track a single terminator — generalized here to balance nested `/*`.
func scanBlockComment(c *Cursor) {
	c.Advance() // '/'
	c.Advance() // '*'
	depth := 1
	for depth > 0 {
		b, ok := c.Peek(0)
		if !ok {
			return // unterminated: consume to EOF as trivia, no error per spec
		}
		if b == '/' {
			if n, ok := c.Peek(1); ok && n == '*' {
				c.Advance()
				c.Advance()
				depth++
				continue
			}
		}
		if b == '*' {
			if n, ok := c.Peek(1); ok && n == '/' {
				c.Advance()
				c.Advance()
				depth--
				continue
			}
		}
		c.Advance()
	}
}

func scanShebang(c *Cursor) {
	for {
		b, ok := c.Peek(0)
		if !ok || b == '\n' {
			return
		}
		c.Advance()
	}
}

var (
	gitConflictStart = []byte("<<<<<<< ")
	gitConflictEnd    = []byte(">>>>>>> ")
	p4ConflictStart   = []byte(">>>> ")
	p4ConflictEndLine = []byte("<<<<\n")
)

func isConflictMarkerStart(c Cursor) bool {
	return hasPrefixAt(c, gitConflictStart) || hasPrefixAt(c, p4ConflictStart)
}

func hasPrefixAt(c Cursor, prefix []byte) bool {
	for i, want := range prefix {
		b, ok := c.Peek(i)
		if !ok || b != want {
			return false
		}
	}
	return true
}

// scanConflictMarker consumes a full conflict-marker region as trivia if
// a matching terminator is found ahead; otherwise consumes nothing and
// returns false (spec.md §4.4).
func scanConflictMarker(c *Cursor) bool {
	var terminator []byte
	switch {
	case hasPrefixAt(*c, gitConflictStart):
		terminator = gitConflictEnd
	case hasPrefixAt(*c, p4ConflictStart):
		terminator = p4ConflictEndLine
	default:
		return false
	}

	probe := *c
	for !probe.AtEnd() {
		if isLineStart(probe) && hasPrefixAt(probe, terminator) {
			// Consume through the end of the terminator's line.
			for i := 0; i < len(terminator); i++ {
				probe.Advance()
			}
			for {
				b, ok := probe.Peek(0)
				if !ok || b == '\n' {
					if ok {
						probe.Advance()
					}
					break
				}
				probe.Advance()
			}
			*c = probe
			return true
		}
		probe.Advance()
	}
	return false
}

// curly quote scalars treated as isolated unknown trivia when they
// cannot be consumed as part of any recognized token (spec.md §4.4,
// §9: commented-out "confusable character" diagnostics are not wired,
// but the underlying bytes must still land somewhere — trivia).
const (
	leftSingleQuote  = '‘'
	rightSingleQuote = '’'
	leftDoubleQuote  = '“'
	rightDoubleQuote = '”'
)

func isCurlyQuote(r rune) bool {
	switch r {
	case leftSingleQuote, rightSingleQuote, leftDoubleQuote, rightDoubleQuote:
		return true
	default:
		return false
	}
}

const nbsp = ' '

// lexUnknownTriviaByte consumes one byte (ASCII) or validated scalar of
// unrecognized input as trivia, reporting whether it did. Invalid UTF-8
// lead bytes (via resync), U+00A0, and isolated curly quotes fall here;
// a byte or scalar that could legitimately start a token or identifier
// is left untouched so the driver dispatches to the matching recognizer
// instead (spec.md §4.4).
func lexUnknownTriviaByte(c *Cursor) bool {
	if c.AtEnd() {
		return false
	}
	b, _ := c.Peek(0)
	if b < 0x80 {
		if canStartToken(b) {
			return false
		}
		c.Advance()
		return true
	}

	r, ok := c.peekScalar()
	if !ok {
		// Invalid lead byte or malformed sequence: resync and report
		// consumed (the caller's loop will keep calling until a
		// plausible start byte is reached or admits a real token).
		c.advanceValidatingUTF8Character()
		return true
	}
	if r == nbsp || isCurlyQuote(r) {
		c.advanceValidatingUTF8Character()
		return true
	}
	if isIdentifierStart(r) {
		return false
	}
	// Any other non-identifier scalar (e.g. stray symbol) is swallowed
	// as trivia too, matching spec.md's "any byte that cannot begin a
	// token or identifier is consumed as trivia" rule.
	c.advanceValidatingUTF8Character()
	return true
}

// canStartToken reports whether an ASCII byte can plausibly begin a
// recognized token (identifier, literal, or punctuation/operator).
func canStartToken(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b == '_':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '"', b == '\'', b == '#', b == '$', b == '`', b == '<':
		return true
	default:
		return isOperatorByte(b) || isPunctuationByte(b)
	}
}
