package lexer

// StringKind distinguishes the three string-literal bodies spec.md §3
// names for the InStringLiteral state.
type StringKind int

const (
	SingleLineString StringKind = iota
	MultiLineString
	SingleQuoteString
)

// stateTag is the discriminant of the State sum type (spec.md §3).
type stateTag int

const (
	stateNormal stateTag = iota
	stateAfterRawStringDelimiter
	stateInStringLiteral
	stateAfterStringLiteral
	stateAfterClosingStringQuote
)

// State is the scanner-state sum type: a tagged struct generalizing the
// teacher's LexerState snapshot (lexer.go's save/restore pattern) from
// "resumable position" into "scanning mode with payload". Only the
// fields relevant to the active tag are meaningful; equality is
// structural, matching spec.md §3's "same position + previous + state"
// cursor-equality invariant.
type State struct {
	tag        stateTag
	hashCount  int
	stringKind StringKind
	isRaw      bool
}

// Normal returns the default scanner state.
func Normal() State { return State{tag: stateNormal} }

// AfterRawStringDelimiter returns the state awaiting an opening quote
// after n leading `#` characters.
func AfterRawStringDelimiter(n int) State {
	return State{tag: stateAfterRawStringDelimiter, hashCount: n}
}

// InStringLiteral returns the state scanning a string body of the given
// kind with n raw delimiter hashes.
func InStringLiteral(kind StringKind, n int) State {
	return State{tag: stateInStringLiteral, stringKind: kind, hashCount: n}
}

// AfterStringLiteral returns the state awaiting the closing quote once a
// string body has been fully scanned.
func AfterStringLiteral(isRaw bool) State {
	return State{tag: stateAfterStringLiteral, isRaw: isRaw}
}

// AfterClosingStringQuote returns the state awaiting trailing `#`s after
// the closing quote of a raw string has been seen.
func AfterClosingStringQuote() State {
	return State{tag: stateAfterClosingStringQuote}
}

func (s State) IsNormal() bool                   { return s.tag == stateNormal }
func (s State) IsAfterRawStringDelimiter() bool  { return s.tag == stateAfterRawStringDelimiter }
func (s State) IsInStringLiteral() bool          { return s.tag == stateInStringLiteral }
func (s State) IsAfterStringLiteral() bool       { return s.tag == stateAfterStringLiteral }
func (s State) IsAfterClosingStringQuote() bool  { return s.tag == stateAfterClosingStringQuote }

// HashCount returns the raw-delimiter count carried by
// AfterRawStringDelimiter or InStringLiteral states.
func (s State) HashCount() int { return s.hashCount }

// StringKind returns the body kind carried by an InStringLiteral state.
func (s State) StringKind() StringKind { return s.stringKind }

// IsRaw returns the raw-ness carried by an AfterStringLiteral state.
func (s State) IsRaw() bool { return s.isRaw }

// admitsLeadingTrivia and admitsTrailingTrivia implement spec.md §4.4's
// "Trivia gating by state": trivia scanning is only attempted when the
// current state allows it.
func (s State) admitsLeadingTrivia() bool {
	switch s.tag {
	case stateNormal:
		return true
	case stateInStringLiteral:
		// Only at a newline, so the newline can terminate a single-line
		// literal cleanly; multi-line bodies never admit trivia.
		return s.stringKind == SingleLineString
	default:
		return false
	}
}

func (s State) admitsTrailingTrivia() bool {
	return s.admitsLeadingTrivia()
}
