package lexer

import (
	"testing"

	"github.com/swiftcore/lexer/internal/token"
)

func lexAll(src string) []Lexeme {
	lx := New([]byte(src))
	var out []Lexeme
	for {
		lm := lx.Next()
		out = append(out, lm)
		if lm.Kind == token.EOF {
			return out
		}
	}
}

func TestLexerBasicDeclaration(t *testing.T) {
	lexemes := lexAll("let x = 42")
	var kinds []token.Kind
	for _, lm := range lexemes {
		kinds = append(kinds, lm.Kind)
	}
	want := []token.Kind{
		token.Identifier, // let
		token.Identifier, // x
		token.Equal,
		token.IntegerLiteral,
		token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d lexemes %v, want %d %v", len(kinds), kinds, len(want), want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("lexeme[%d] kind = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerCoverageReconstructsBuffer(t *testing.T) {
	src := "let x = 42 + y  // trailing\n"
	buf := []byte(src)
	lx := New(buf)
	pos := 0
	for {
		lm := lx.Next()
		if lm.LeadingTriviaStart != pos {
			t.Fatalf("gap in coverage at %d: lexeme starts at %d", pos, lm.LeadingTriviaStart)
		}
		pos = lm.End()
		if lm.Kind == token.EOF {
			break
		}
	}
	if pos != len(buf) {
		t.Fatalf("coverage ended at %d, want %d (full buffer)", pos, len(buf))
	}
}

func TestLexerMonotonicity(t *testing.T) {
	lexemes := lexAll("a + b * (c - d)")
	prevEnd := 0
	for _, lm := range lexemes {
		if lm.LeadingTriviaStart < prevEnd {
			t.Fatalf("lexeme starts at %d, before previous end %d", lm.LeadingTriviaStart, prevEnd)
		}
		prevEnd = lm.End()
	}
}

func TestLexerEOFIsStableAndZeroLength(t *testing.T) {
	lx := New([]byte("x"))
	lx.Next() // consume 'x'
	first := lx.Next()
	second := lx.Next()
	if first.Kind != token.EOF || second.Kind != token.EOF {
		t.Fatal("repeated calls past end of input should keep returning EOF")
	}
	if first.TextLength != 0 || second.TextLength != 0 {
		t.Fatal("EOF lexeme must have zero text length")
	}
}

func TestLexerStartOfLineFlag(t *testing.T) {
	lexemes := lexAll("a\nb c")
	if !lexemes[0].IsAtStartOfLine() {
		t.Fatal("first lexeme in the buffer should be flagged start-of-line")
	}
	if !lexemes[1].IsAtStartOfLine() {
		t.Fatal("lexeme right after a newline should be flagged start-of-line")
	}
	if lexemes[2].IsAtStartOfLine() {
		t.Fatal("lexeme not preceded by a newline should not be flagged start-of-line")
	}
}

func TestLexerPunctuationAndOperators(t *testing.T) {
	lexemes := lexAll("f(a, b)")
	var kinds []token.Kind
	for _, lm := range lexemes {
		kinds = append(kinds, lm.Kind)
	}
	want := []token.Kind{
		token.Identifier, token.LeftParen, token.Identifier, token.Comma,
		token.Identifier, token.RightParen, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("lexeme[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestLexerStringLiteralThreeLexemes(t *testing.T) {
	lexemes := lexAll(`"hi"`)
	want := []token.Kind{token.StringQuote, token.StringLiteralContents, token.StringQuote, token.EOF}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes, want %d", len(lexemes), len(want))
	}
	for i := range want {
		if lexemes[i].Kind != want[i] {
			t.Errorf("lexeme[%d] = %v, want %v", i, lexemes[i].Kind, want[i])
		}
	}
}

func TestLexerRawStringDelimiters(t *testing.T) {
	lexemes := lexAll(`#"hi"#`)
	want := []token.Kind{
		token.RawStringDelimiter, token.StringQuote, token.StringLiteralContents,
		token.StringQuote, token.RawStringDelimiter, token.EOF,
	}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes, want %d", len(lexemes), len(want))
	}
	for i := range want {
		if lexemes[i].Kind != want[i] {
			t.Errorf("lexeme[%d] = %v, want %v", i, lexemes[i].Kind, want[i])
		}
	}
	if !lexemes[0].Flags.Has(token.IsRaw) {
		t.Error("opening RawStringDelimiter should carry IsRaw")
	}
}

func TestLexerStringInterpolationScenario(t *testing.T) {
	lexemes := lexAll(`"a` + `\(b)` + `c"`)
	want := []token.Kind{token.StringQuote, token.StringLiteralContents, token.StringQuote, token.EOF}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes %v, want %d %v", len(lexemes), lexemes, len(want), want)
	}
	contentLen := lexemes[1].TextLength
	wantLen := len(`a` + `\(b)` + `c`)
	if contentLen != wantLen {
		t.Fatalf("interpolated body length = %d, want %d", contentLen, wantLen)
	}
}

func TestLexerPlaceholderScenario(t *testing.T) {
	lexemes := lexAll("<#T#>")
	want := []token.Kind{token.Identifier, token.EOF}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes, want %d", len(lexemes), len(want))
	}
	if lexemes[0].TextLength != len("<#T#>") {
		t.Fatalf("placeholder text length = %d, want %d", lexemes[0].TextLength, len("<#T#>"))
	}
}

func TestLexerBoundnessScenario(t *testing.T) {
	// x.y is a single postfix member access: Identifier, Period, Identifier.
	lexemes := lexAll("x.y")
	want := []token.Kind{token.Identifier, token.Period, token.Identifier, token.EOF}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes, want %d", len(lexemes), len(want))
	}
	for i := range want {
		if lexemes[i].Kind != want[i] {
			t.Errorf("lexeme[%d] = %v, want %v", i, lexemes[i].Kind, want[i])
		}
	}
}

func TestLexerRegexScenario(t *testing.T) {
	lexemes := lexAll("x = /ab/")
	want := []token.Kind{token.Identifier, token.Equal, token.RegexLiteral, token.EOF}
	if len(lexemes) != len(want) {
		t.Fatalf("got %d lexemes %v, want %d %v", len(lexemes), lexemes, len(want), want)
	}
	for i := range want {
		if lexemes[i].Kind != want[i] {
			t.Errorf("lexeme[%d] = %v, want %v", i, lexemes[i].Kind, want[i])
		}
	}
}
