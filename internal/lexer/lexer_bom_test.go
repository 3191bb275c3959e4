package lexer

import (
	"testing"

	"github.com/swiftcore/lexer/internal/token"
)

func TestLexerBOMConsumedAsLeadingTrivia(t *testing.T) {
	buf := append([]byte{0xEF, 0xBB, 0xBF}, []byte("let")...)
	lx := New(buf)
	lm := lx.Next()
	if lm.Kind != token.Identifier {
		t.Fatalf("kind = %v, want Identifier", lm.Kind)
	}
	if lm.LeadingTriviaLength != 3 {
		t.Fatalf("LeadingTriviaLength = %d, want 3 (BOM)", lm.LeadingTriviaLength)
	}
	if lm.TextStart() != 3 {
		t.Fatalf("TextStart() = %d, want 3", lm.TextStart())
	}
	if !lm.IsAtStartOfLine() {
		t.Fatal("first lexeme after a BOM should still be start-of-line")
	}
}

func TestLexerBOMOnlyRecognizedAtBufferStart(t *testing.T) {
	// A stray BOM-looking byte sequence mid-buffer is not special: it is
	// just invalid/unusual UTF-8 trivia at that position, not a BOM.
	buf := []byte("x")
	buf = append(buf, 0xEF, 0xBB, 0xBF)
	buf = append(buf, []byte("y")...)
	lexemes := lexAll(string(buf))
	if lexemes[0].Kind != token.Identifier || lexemes[0].TextLength != 1 {
		t.Fatalf("first lexeme = %+v, want single-byte Identifier 'x'", lexemes[0])
	}
}

func TestLexerShebangConsumedOnlyAtStart(t *testing.T) {
	src := "#!/usr/bin/env swift\nlet x = 1"
	lexemes := lexAll(src)
	if lexemes[0].Kind != token.Identifier {
		t.Fatalf("first lexeme kind = %v, want Identifier ('let')", lexemes[0].Kind)
	}
	if lexemes[0].LeadingTriviaLength != len("#!/usr/bin/env swift\n") {
		t.Fatalf("leading trivia length = %d, want %d", lexemes[0].LeadingTriviaLength, len("#!/usr/bin/env swift\n"))
	}
}
