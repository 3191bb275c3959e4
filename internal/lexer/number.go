package lexer

import "github.com/swiftcore/lexer/internal/token"

// Number Recognizer (spec.md §4.5). Generalizes the teacher's
// readNumber/readHexNumber/readBinaryNumber/readDecimalNumber dispatch
// shape (lexer.go: sniff a prefix byte, delegate to a radix-specific
// reader) from DWScript's `$FF`/`%1010`/plain-decimal prefixes to this
// language's `0x`/`0o`/`0b`/plain-decimal grammar, and extends it with
// the float/exponent/hex-float error taxonomy the teacher's simpler
// all-decimal-floats grammar never needs.

func isDecimalDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDecimalDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isOctalDigit(b byte) bool { return b >= '0' && b <= '7' }

func isBinaryDigit(b byte) bool { return b == '0' || b == '1' }

// isIdentifierContinueByte is the ASCII fast-path used to decide how much
// of an invalid-digit run to swallow for recovery (spec.md §7: "consume
// the remaining identifier-continuation run").
func isIdentifierContinueByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || isDecimalDigit(b)
}

// recognizeNumber scans at c (positioned at a decimal digit) and returns
// the resulting kind, the cursor advanced past it, and an optional error
// (spec.md §4.5).
func recognizeNumber(c Cursor) (token.Kind, Cursor, *LexError) {
	if b, _ := c.Peek(0); b == '0' {
		if n, ok := c.Peek(1); ok && (n == 'x' || n == 'X') {
			return recognizeHexNumber(c)
		}
		if n, ok := c.Peek(1); ok && (n == 'o' || n == 'O') {
			return recognizeRadixInteger(c, isOctalDigit, ErrInvalidOctalDigit)
		}
		if n, ok := c.Peek(1); ok && (n == 'b' || n == 'B') {
			return recognizeRadixInteger(c, isBinaryDigit, ErrInvalidBinaryDigit)
		}
	}
	return recognizeDecimalNumber(c)
}

// recognizeRadixInteger scans `0o`/`0b` integers: a two-byte prefix, then
// a run of digit/underscore bytes. A byte that is identifier-continue but
// not a valid digit of the radix is consumed for recovery and reported
// once, at the first offending offset (spec.md §7).
func recognizeRadixInteger(c Cursor, digit func(byte) bool, errKind ErrorKind) (token.Kind, Cursor, *LexError) {
	start := c
	c.Advance() // '0'
	c.Advance() // 'o' / 'b'

	var lexErr *LexError
	for {
		b, ok := c.Peek(0)
		if !ok {
			break
		}
		if b == '_' || digit(b) {
			c.Advance()
			continue
		}
		if isIdentifierContinueByte(b) {
			if lexErr == nil {
				lexErr = &LexError{Kind: errKind, Offset: c.pos - start.pos}
			}
			c.Advance()
			continue
		}
		break
	}

	return token.IntegerLiteral, c, lexErr
}

// recognizeDecimalNumber scans the plain-decimal grammar: an integer
// digit run, an optional `.`-fraction (only when followed by a digit, so
// `4.x` and `1..2` both leave the `.` for a separate token), and an
// optional `e`/`E` exponent (spec.md §4.5).
func recognizeDecimalNumber(c Cursor) (token.Kind, Cursor, *LexError) {
	start := c
	scanDigitRun(&c, isDecimalDigit)

	kind := token.IntegerLiteral
	var lexErr *LexError

	if b, ok := c.Peek(0); ok && b == '.' {
		if n, ok := c.Peek(1); ok && isDecimalDigit(n) {
			kind = token.FloatingLiteral
			c.Advance() // '.'
			scanDigitRun(&c, isDecimalDigit)
		}
	}

	if b, ok := c.Peek(0); ok && (b == 'e' || b == 'E') {
		kind = token.FloatingLiteral
		lexErr = scanExponent(&c, start, 'e')
	}

	if lexErr == nil {
		lexErr = scanTrailingInvalidDigit(&c, start, isDecimalDigit, ErrInvalidDecimalDigit)
	}

	return kind, c, lexErr
}

// recognizeHexNumber scans `0x` integers and hex floats. A hex-fractional
// literal with no `p` exponent either errors (when the byte after the
// `.` is a hex digit, meaning the `.` was genuinely meant to start a
// fraction) or is recovered as a bare integer followed by a separate `.`
// token (when it is not — spec.md §4.5's scenario `0xff.description`).
func recognizeHexNumber(c Cursor) (token.Kind, Cursor, *LexError) {
	start := c
	c.Advance() // '0'
	c.Advance() // 'x'

	var lexErr *LexError
	scanDigitRun(&c, isHexDigit)

	kind := token.IntegerLiteral

	if b, ok := c.Peek(0); ok && b == '.' {
		if n, ok := c.Peek(1); ok && isHexDigit(n) {
			// A decimal digit right after '.' can only mean a genuine hex
			// fraction; a hex-letter (a-f/A-F) is ambiguous with the start
			// of a following identifier (spec.md §4.5's `0xff.description`
			// scenario), so it only commits to a float if an exponent
			// marker actually turns up.
			dotStart := c
			fractionIsUnambiguous := isDecimalDigit(n)

			c.Advance() // '.'
			scanDigitRun(&c, isHexDigit)

			if b, ok := c.Peek(0); ok && (b == 'p' || b == 'P') {
				kind = token.FloatingLiteral
				lexErr = scanExponent(&c, start, 'p')
			} else if fractionIsUnambiguous {
				kind = token.FloatingLiteral
				lexErr = &LexError{Kind: ErrExpectedBinaryExponentInHexFloat, Offset: c.pos - start.pos}
			} else {
				// Recovered as integer + separate '.' token.
				c = dotStart
			}
		}
		// else: not a hex digit after '.' — leave the '.' untouched,
		// recovered as integer + separate '.' token.
	} else if b, ok := c.Peek(0); ok && (b == 'p' || b == 'P') {
		kind = token.FloatingLiteral
		lexErr = scanExponent(&c, start, 'p')
	}

	if lexErr == nil {
		lexErr = scanTrailingInvalidDigit(&c, start, isHexDigit, ErrInvalidHexDigit)
	}

	return kind, c, lexErr
}

// scanDigitRun consumes a run of digit(radix)/underscore bytes.
func scanDigitRun(c *Cursor, digit func(byte) bool) {
	for {
		b, ok := c.Peek(0)
		if !ok || (!digit(b) && b != '_') {
			return
		}
		c.Advance()
	}
}

// scanExponent consumes the marker byte, an optional sign, and the
// exponent digit run, reporting the first applicable error per spec.md
// §4.5: no digit at all, an exponent beginning with `_`, or some other
// non-digit byte immediately following the marker/sign.
func scanExponent(c *Cursor, start Cursor, marker byte) *LexError {
	c.Advance() // 'e'/'E' or 'p'/'P'
	if b, ok := c.Peek(0); ok && (b == '+' || b == '-') {
		c.Advance()
	}

	b, ok := c.Peek(0)
	switch {
	case !ok || !isIdentifierContinueByte(b):
		return &LexError{Kind: ErrExpectedDigitInFloat, Offset: c.pos - start.pos}
	case b == '_':
		errOffset := c.pos - start.pos
		scanDigitRun(c, isDecimalDigit)
		return &LexError{Kind: ErrInvalidFloatingPointExponentCharacter, Offset: errOffset}
	case isDecimalDigit(b):
		scanDigitRun(c, isDecimalDigit)
		return nil
	default:
		errOffset := c.pos - start.pos
		return &LexError{Kind: ErrInvalidFloatingPointExponentDigit, Offset: errOffset}
	}
}

// scanTrailingInvalidDigit reports an identifier-continue byte
// immediately following a completed numeric literal that is not a valid
// digit of the radix (e.g. `123abc`), and consumes the whole
// identifier-continue run that starts there, per spec.md §7's "consume the
// remaining identifier-continuation run and attach one error" rule.
func scanTrailingInvalidDigit(c *Cursor, start Cursor, digit func(byte) bool, errKind ErrorKind) *LexError {
	b, ok := c.Peek(0)
	if !ok || !isIdentifierContinueByte(b) || digit(b) {
		return nil
	}
	errOffset := c.pos - start.pos
	for {
		b, ok := c.Peek(0)
		if !ok || !isIdentifierContinueByte(b) {
			break
		}
		c.Advance()
	}
	return &LexError{Kind: errKind, Offset: errOffset}
}
