package lexer

import (
	"bytes"

	"github.com/swiftcore/lexer/internal/token"
)

// Operator recognition (spec.md §4.6). Generalizes the teacher's
// per-character handler-table idiom (tokenHandlers map[rune]tokenHandler
// plus handlePlus/handleMinus/… in lexer.go, each peeking one byte to
// pick between e.g. `+`, `++`, `+=`) from "fixed two/three-byte operator
// set" into "maximal run of operator bytes, classified by boundness".

func isOperatorByte(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '=', '<', '>', '!', '?', '&', '|', '^', '~', '.':
		return true
	default:
		return false
	}
}

func isPunctuationByte(b byte) bool {
	switch b {
	case '@', '{', '}', '[', ']', '(', ')', ',', ';', ':', '\\':
		return true
	default:
		return false
	}
}

// punctuationKind maps a single punctuation byte to its token kind.
var punctuationKind = map[byte]token.Kind{
	'@': token.AtSign,
	'{': token.LeftBrace,
	'}': token.RightBrace,
	'[': token.LeftBracket,
	']': token.RightBracket,
	'(': token.LeftParen,
	')': token.RightParen,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'\\': token.Backslash,
}

// recognizeOperator scans at c (positioned at an operator byte) and
// returns its kind plus the cursor advanced past it (spec.md §4.6).
func recognizeOperator(c Cursor) (token.Kind, Cursor) {
	if b, ok := c.Peek(0); ok && (b == '!' || b == '?') && leftBound(c) {
		// Standalone postfix punctuator, never part of a run.
		next := c
		next.Advance()
		if b == '!' {
			return token.ExclamationMark, next
		}
		return token.PostfixQuestion, next
	}

	start := c
	startByte, _ := c.Peek(0)
	dotStarted := startByte == '.'

	end := c
	for {
		b, ok := end.Peek(0)
		if !ok || !isOperatorByte(b) {
			break
		}
		if b == '.' && !dotStarted {
			break
		}
		if b == '<' {
			// `<#…#>` on the current line yields a placeholder, which
			// is recognized separately; truncate the run here so the
			// driver can retry with the placeholder recognizer.
			if n, ok := end.Peek(1); ok && n == '#' && hasLaterPoundCloseOnLine(end) {
				break
			}
		}
		end.Advance()
	}

	run := start.Slice(end)

	if idx := firstCommentStart(run); idx >= 1 {
		end = start
		for i := 0; i < idx; i++ {
			end.Advance()
		}
		run = start.Slice(end)
	}

	switch len(run) {
	case 0:
		// Nothing matched (only a `<#` that opens a `<#…#>` placeholder on
		// this line stops the run before its first byte) — caller should
		// not have dispatched here, but fail safe as Unknown of length 1.
		single := c
		single.Advance()
		return token.Unknown, single
	case 1:
		switch run[0] {
		case '=':
			return token.Equal, end
		case '.':
			return token.Period, end
		case '?':
			return token.QuestionMark, end
		case '&':
			if isPrefixPosition(start, end) {
				return token.PrefixAmpersand, end
			}
			return classifyRun(start, end), end
		default:
			return classifyRun(start, end), end
		}
	case 2:
		if string(run) == "->" {
			return token.Arrow, end
		}
		if string(run) == "*/" {
			return token.Unknown, end
		}
		return classifyRun(start, end), end
	default:
		if bytes.Contains(run, []byte("*/")) {
			return token.Unknown, end
		}
		return classifyRun(start, end), end
	}
}

// firstCommentStart returns the index of the first "//" or "/*" occurring
// at index >= 1 within run, or -1 if none (spec.md §4.6: "the comment
// belongs to trivia").
func firstCommentStart(run []byte) int {
	for i := 1; i < len(run)-1; i++ {
		if run[i] == '/' && (run[i+1] == '/' || run[i+1] == '*') {
			return i
		}
	}
	return -1
}

// hasLaterPoundCloseOnLine reports whether `#>` occurs before the next
// LF/CR starting from c (used to decide whether `<#` begins an editor
// placeholder rather than an operator run containing `<`).
func hasLaterPoundCloseOnLine(c Cursor) bool {
	probe := c
	for {
		b, ok := probe.Peek(0)
		if !ok || b == '\n' || b == '\r' {
			return false
		}
		if b == '#' {
			if n, ok := probe.Peek(1); ok && n == '>' {
				return true
			}
		}
		probe.Advance()
	}
}

func isPrefixPosition(start, end Cursor) bool {
	return !leftBound(start) && rightBound(end)
}

func classifyRun(start, end Cursor) token.Kind {
	lb := leftBound(start)
	rb := rightBound(end)
	if next, ok := end.Peek(0); ok && next == '.' {
		// A following `.` binds to the operator only when the operator is
		// not left-bound: `x^.y` is postfix `^`, `^.y` is prefix `^`.
		rb = !lb
	}
	switch {
	case lb == rb:
		return token.BinaryOperator
	case lb:
		return token.PostfixOperator
	default:
		return token.PrefixOperator
	}
}
