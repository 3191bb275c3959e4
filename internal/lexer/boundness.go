package lexer

// Boundness Oracle (spec.md §4.3). Generalizes the teacher's
// one-rune-of-lookahead operator disambiguation (handleEquals,
// handleQuestion, handleLess et al. in the DWScript lexer, which each
// peek a single following byte to choose between `=`/`==`/`===`,
// `?`/`??`/`?.`, etc.) into the position-classification predicate this
// spec's maximal-munch operator scanner needs.

const nbspSecondByte = 0xA0 // U+00A0 is encoded C2 A0; the second byte

func isOpener(b byte) bool    { return b == '(' || b == '[' || b == '{' }
func isCloser(b byte) bool    { return b == ')' || b == ']' || b == '}' }
func isSeparator(b byte) bool { return b == ',' || b == ';' || b == ':' }
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// leftBound reports whether the cursor's current position is left-bound:
// not preceded by whitespace, an opener, a separator, start-of-buffer, a
// just-consumed `*/`, or the second byte of a non-breaking space.
func leftBound(c Cursor) bool {
	if c.pos == 0 {
		return false
	}
	prev := c.Previous()
	if isSpaceByte(prev) || isOpener(prev) || isSeparator(prev) {
		return false
	}
	if prev == nbspSecondByte {
		if b, ok := c.PeekBack(2); ok && b == 0xC2 {
			return false
		}
	}
	if prev == '/' {
		if b, ok := c.PeekBack(2); ok && b == '*' {
			return false
		}
	}
	return true
}

// rightBound reports whether the cursor's current position is
// right-bound: the following byte is not whitespace, a closer, a
// separator, EOF, the start of `//`/`/*`, or a non-breaking space. Before
// `.` the position is right-bound only if it is also left-bound.
// classifyRun (operator.go) applies its own rule for an operator followed
// by `.`, so that `x^.y` is postfix `^` and `^.y` is prefix `^`.
func rightBound(c Cursor) bool {
	next, ok := c.Peek(0)
	if !ok {
		return false
	}
	if isSpaceByte(next) || isCloser(next) || isSeparator(next) {
		return false
	}
	if next == 0xC2 {
		if b, ok := c.Peek(1); ok && b == nbspSecondByte {
			return false
		}
	}
	if next == '/' {
		if b, ok := c.Peek(1); ok && (b == '/' || b == '*') {
			return false
		}
	}
	if next == '.' {
		return leftBound(c)
	}
	return true
}
