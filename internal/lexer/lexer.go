package lexer

import "github.com/swiftcore/lexer/internal/token"

// Lexeme Driver (spec.md §4.10). Generalizes the teacher's Lexer/NextToken
// loop (lexer.go's outer `for` driving skipWhitespace then a handler
// dispatch) into the seven-step leading-trivia / text / trailing-trivia
// composition this spec requires, snapshotting the cursor at each
// boundary the way the teacher's `startPos`/`curPos` pair already does.

// Lexer produces a flat stream of Lexemes from an immutable byte buffer.
// It is strictly single-threaded and synchronous (spec.md §5): all state
// lives in the embedded Cursor value, so independent Lexers over the same
// buffer never interfere with each other.
type Lexer struct {
	cursor Cursor
}

// New returns a Lexer positioned at the start of buf, in Normal state.
func New(buf []byte) *Lexer {
	return &Lexer{cursor: NewCursor(buf)}
}

// Next produces the next Lexeme, implementing spec.md §4.10's seven
// steps. Once EOF is reached, every subsequent call returns a zero-length
// eof lexeme (spec.md §6, "terminating lexeme").
func (lx *Lexer) Next() Lexeme {
	leadingStart := lx.cursor

	c := lx.cursor
	sawLeadingNewline := false
	if c.state.admitsLeadingTrivia() {
		c, sawLeadingNewline = scanTrivia(c, true)
	}

	textStart := c

	kind, end, lexErr, extraFlags := dispatch(c)

	trailingStart := end

	trailingEnd := end
	if end.state.admitsTrailingTrivia() {
		trailingEnd, _ = scanTrivia(end, false)
	}

	lx.cursor = trailingEnd

	flags := stringFlags(c.state, kind) | extraFlags
	if sawLeadingNewline || leadingStart.pos == 0 {
		flags |= token.AtStartOfLine
	}

	return Lexeme{
		Kind:                 kind,
		Flags:                flags,
		Err:                  lexErr,
		LeadingTriviaStart:   leadingStart.pos,
		LeadingTriviaLength:  textStart.pos - leadingStart.pos,
		TextLength:           trailingStart.pos - textStart.pos,
		TrailingTriviaLength: trailingEnd.pos - trailingStart.pos,
	}
}

// dispatch implements spec.md §4.10 step 4: select the recognizer for
// the current state, and within Normal state, for the current byte. The
// fourth return value carries flags a recognizer determines directly
// (currently only the regex speculator's multi-line detection) that
// stringFlags cannot re-derive from the pre-dispatch state alone.
func dispatch(c Cursor) (token.Kind, Cursor, *LexError, token.Flags) {
	switch {
	case c.state.IsInStringLiteral():
		k, end, err := recognizeStringBody(c)
		return k, end, err, 0
	case c.state.IsAfterRawStringDelimiter():
		k, end := recognizeStringQuoteOpen(c)
		return k, end, nil, 0
	case c.state.IsAfterStringLiteral():
		k, end := recognizeStringClose(c)
		return k, end, nil, 0
	case c.state.IsAfterClosingStringQuote():
		k, end := recognizeClosingHashes(c)
		return k, end, nil, 0
	default:
		return dispatchNormal(c)
	}
}

// dispatchNormal handles the Normal-state byte dispatch: the bulk of
// spec.md §4.5–§4.9's recognizers.
func dispatchNormal(c Cursor) (token.Kind, Cursor, *LexError, token.Flags) {
	if c.AtEnd() {
		return token.EOF, c, nil, 0
	}

	b, _ := c.Peek(0)

	if b == '"' || b == '\'' {
		k, end := recognizeStringQuoteOpen(c)
		return k, end, nil, 0
	}

	if n, ok := hashRunFollowedByQuote(c); ok {
		k, end := recognizeRawDelimiterOpen(c, n)
		return k, end, nil, 0
	}

	switch b {
	case '#':
		if k, end, ok, multiline := tryRecognizeRegex(c); ok {
			return k, end, nil, regexFlags(multiline)
		}
		k, end := recognizeHash(c)
		return k, end, nil, 0
	case '/':
		if k, end, ok, multiline := tryRecognizeRegex(c); ok {
			return k, end, nil, regexFlags(multiline)
		}
		k, end := recognizeOperator(c)
		return k, end, nil, 0
	case '<':
		if k, end, ok := tryRecognizePlaceholder(c); ok {
			return k, end, nil, 0
		}
		k, end := recognizeOperator(c)
		return k, end, nil, 0
	case '$':
		k, end := recognizeDollarIdentifier(c)
		return k, end, nil, 0
	case '`':
		k, end := recognizeBacktick(c)
		return k, end, nil, 0
	}

	if isDecimalDigit(b) {
		k, end, err := recognizeNumber(c)
		return k, end, err, 0
	}

	if isPunctuationByte(b) {
		end := c
		end.Advance()
		return punctuationKind[b], end, nil, 0
	}

	if isOperatorByte(b) {
		k, end := recognizeOperator(c)
		return k, end, nil, 0
	}

	if b < 0x80 {
		// The only ASCII bytes left by trivia scanning and the switches
		// above are identifier-start letters and `_`.
		k, end := recognizeIdentifier(c)
		return k, end, nil, 0
	}

	if r, ok := c.peekScalar(); ok && isIdentifierStart(r) {
		k, end := recognizeIdentifier(c)
		return k, end, nil, 0
	}

	// Defensive fallback: trivia scanning should have consumed any
	// non-identifier-start scalar already.
	end := c
	end.advanceValidatingUTF8Character()
	return token.Unknown, end, nil, 0
}

func regexFlags(multiline bool) token.Flags {
	if multiline {
		return token.IsMultiline
	}
	return 0
}

// stringFlags derives IsRaw/IsMultiline from the state active when a
// string-literal-related lexeme was produced (spec.md §3's flags field).
func stringFlags(origState State, kind token.Kind) token.Flags {
	var flags token.Flags
	switch kind {
	case token.MultilineStringQuote:
		flags |= token.IsMultiline
	case token.RawStringDelimiter:
		flags |= token.IsRaw
	case token.StringQuote, token.SingleQuote, token.StringLiteralContents:
		if origState.IsInStringLiteral() {
			if origState.HashCount() > 0 {
				flags |= token.IsRaw
			}
			if origState.StringKind() == MultiLineString {
				flags |= token.IsMultiline
			}
		}
		if origState.IsAfterStringLiteral() && origState.IsRaw() {
			flags |= token.IsRaw
		}
		if origState.IsAfterRawStringDelimiter() && origState.HashCount() > 0 {
			flags |= token.IsRaw
		}
	}
	return flags
}
