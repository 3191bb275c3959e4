package token

// Flags is a bit set of classification flags attached to a lexeme
// (spec.md §3).
type Flags uint8

const (
	// AtStartOfLine is set iff the lexeme's leading trivia contains at
	// least one newline, or the lexeme begins at buffer offset 0
	// (spec.md §8, "Start-of-line flag").
	AtStartOfLine Flags = 1 << iota
	// IsRaw is set on string-related lexemes produced while n > 0 raw
	// delimiter hashes are in effect.
	IsRaw
	// IsMultiline is set on string/regex lexemes produced in multi-line
	// mode.
	IsMultiline
)

// Has reports whether all bits in mask are set.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
