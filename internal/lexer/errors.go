package lexer

// ErrorKind tags the fault recorded on a malformed lexeme (spec.md §3).
// Lexing never aborts on these; each attaches to the lexeme that
// contains the fault and lexing continues (spec.md §7).
type ErrorKind int

const (
	ErrNone ErrorKind = iota
	ErrInvalidOctalDigit
	ErrInvalidBinaryDigit
	ErrInvalidHexDigit
	ErrInvalidDecimalDigit
	ErrExpectedDigitInFloat
	ErrInvalidFloatingPointExponentCharacter
	ErrInvalidFloatingPointExponentDigit
	ErrExpectedBinaryExponentInHexFloat
	ErrUnterminatedString
	ErrUnterminatedBlockComment
	ErrInvalidUTF8
	ErrInvalidEscape
	ErrInvalidUnicodeEscape
)

var errorNames = map[ErrorKind]string{
	ErrNone:                              "none",
	ErrInvalidOctalDigit:                 "invalidOctalDigit",
	ErrInvalidBinaryDigit:                "invalidBinaryDigit",
	ErrInvalidHexDigit:                   "invalidHexDigit",
	ErrInvalidDecimalDigit:               "invalidDecimalDigit",
	ErrExpectedDigitInFloat:              "expectedDigitInFloat",
	ErrInvalidFloatingPointExponentCharacter: "invalidFloatingPointExponentCharacter",
	ErrInvalidFloatingPointExponentDigit: "invalidFloatingPointExponentDigit",
	ErrExpectedBinaryExponentInHexFloat:  "expectedBinaryExponentInHexFloat",
	ErrUnterminatedString:                "unterminatedString",
	ErrUnterminatedBlockComment:          "unterminatedBlockComment",
	ErrInvalidUTF8:                       "invalidUTF8",
	ErrInvalidEscape:                     "invalidEscape",
	ErrInvalidUnicodeEscape:              "invalidUnicodeEscape",
}

func (k ErrorKind) String() string {
	if name, ok := errorNames[k]; ok {
		return name
	}
	return "unknown"
}

// LexError is a typed fault plus the byte offset, relative to the
// lexeme's text start, at which it begins (spec.md §3, §7).
type LexError struct {
	Kind   ErrorKind
	Offset int
}

func (e *LexError) Error() string {
	return e.Kind.String()
}
