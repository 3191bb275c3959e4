package token

// keywords is the hard-keyword catalogue. spec.md §1 treats the keyword
// enumeration as an opaque external catalogue; this table supplies just
// enough of it (grounded on common Swift-like surface syntax) to make
// spec.md §8's scenarios and this repo's own tests concrete. Every
// keyword still lexes as Identifier — this module never re-tags a lexeme
// by keyword-ness, matching spec.md §1's "resolving token semantics" and
// "contextual keywords" non-goals. The parser this core feeds is expected
// to do that lookup itself; IsKeyword exists only for callers that want
// to annotate output for readability.
var keywords = map[string]struct{}{
	"let": {}, "var": {}, "func": {}, "return": {},
	"if": {}, "else": {}, "while": {}, "for": {}, "in": {},
	"true": {}, "false": {}, "nil": {},
	"class": {}, "struct": {}, "enum": {}, "protocol": {},
	"import": {}, "init": {}, "self": {}, "guard": {}, "switch": {},
	"case": {}, "default": {}, "break": {}, "continue": {},
	"throw": {}, "throws": {}, "try": {}, "catch": {}, "do": {},
}

// poundKeywords is the fixed vocabulary of spec.md §4.9: ASCII-letter
// runs after `#` that resolve to a pound-directive kind instead of the
// generic Pound fallback.
var poundKeywords = map[string]Kind{
	"assert":         PoundAssert,
	"sourceLocation": PoundSourceLocation,
	"warning":        PoundWarning,
	"error":          PoundError,
	"if":             PoundIf,
	"else":           PoundElse,
	"elseif":         PoundElseif,
	"endif":          PoundEndif,
	"available":      PoundAvailable,
	"unavailable":    PoundUnavailable,
	"_hasSymbol":     PoundHasSymbol,
}

// IsKeyword reports whether text names a hard keyword. It does not change
// how the lexer classifies text — every keyword is still lexed as
// Identifier — it exists for callers (CLI, tests) that want to annotate
// identifier lexemes.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}

// LookupPound resolves the ASCII-letter run following `#` to a
// pound-directive kind, or (Pound, false) if text names no recognized
// directive (spec.md §4.9: unrecognized names collapse to the bare
// `pound` token without consuming the trailing identifier).
func LookupPound(text string) (Kind, bool) {
	k, ok := poundKeywords[text]
	if !ok {
		return Pound, false
	}
	return k, true
}

// Wildcard sentinel: `_` alone lexes as Wildcard (spec.md §4.6), never as
// Identifier, so it is not part of the keywords table.
const wildcardText = "_"

// IsWildcard reports whether text is the lone wildcard identifier.
func IsWildcard(text string) bool { return text == wildcardText }
