package lexer

import "github.com/swiftcore/lexer/internal/token"

// Lexeme is one produced value of the driver (spec.md §3). Its four byte
// ranges partition a contiguous slice of the buffer; concatenating them
// across a whole stream reproduces the buffer exactly (spec.md §8,
// "Coverage").
type Lexeme struct {
	Kind  token.Kind
	Flags token.Flags
	Err   *LexError

	LeadingTriviaStart  int
	LeadingTriviaLength int
	TextLength          int
	TrailingTriviaLength int
}

// TextStart is the offset where this lexeme's token text begins.
func (l Lexeme) TextStart() int { return l.LeadingTriviaStart + l.LeadingTriviaLength }

// TrailingTriviaStart is the offset where this lexeme's trailing trivia
// begins.
func (l Lexeme) TrailingTriviaStart() int { return l.TextStart() + l.TextLength }

// End is the offset one past this lexeme's trailing trivia — equal to
// the next lexeme's LeadingTriviaStart (spec.md §8, "Monotonicity").
func (l Lexeme) End() int { return l.TrailingTriviaStart() + l.TrailingTriviaLength }

// Text returns the lexeme's token text (excluding trivia) from buf.
func (l Lexeme) Text(buf []byte) []byte {
	start := l.TextStart()
	return buf[start : start+l.TextLength]
}

// IsAtStartOfLine reports the flag of the same name (spec.md §3, §8).
func (l Lexeme) IsAtStartOfLine() bool { return l.Flags.Has(token.AtStartOfLine) }
