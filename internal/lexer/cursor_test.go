package lexer

import "testing"

func TestCursorAdvanceAndPrevious(t *testing.T) {
	c := NewCursor([]byte("ab"))
	if c.Previous() != nulSentinel {
		t.Fatalf("initial Previous() = %x, want NUL sentinel", c.Previous())
	}
	b, ok := c.Advance()
	if !ok || b != 'a' {
		t.Fatalf("Advance() = (%q, %v), want ('a', true)", b, ok)
	}
	if c.Previous() != 'a' {
		t.Fatalf("Previous() = %q, want 'a'", c.Previous())
	}
	b, ok = c.Advance()
	if !ok || b != 'b' {
		t.Fatalf("Advance() = (%q, %v), want ('b', true)", b, ok)
	}
	if _, ok = c.Advance(); ok {
		t.Fatal("Advance() at EOF should report false")
	}
}

func TestCursorPeekBounds(t *testing.T) {
	c := NewCursor([]byte("xyz"))
	if b, ok := c.Peek(0); !ok || b != 'x' {
		t.Errorf("Peek(0) = (%q, %v), want ('x', true)", b, ok)
	}
	if b, ok := c.Peek(2); !ok || b != 'z' {
		t.Errorf("Peek(2) = (%q, %v), want ('z', true)", b, ok)
	}
	if _, ok := c.Peek(3); ok {
		t.Error("Peek(3) past EOF should report false")
	}
	if _, ok := c.Peek(-1); ok {
		t.Error("Peek(-1) before start should report false")
	}
}

func TestCursorIsValueType(t *testing.T) {
	c := NewCursor([]byte("abc"))
	snapshot := c
	c.Advance()
	c.Advance()
	if snapshot.Pos() != 0 {
		t.Fatalf("snapshot.Pos() = %d after mutating the copy, want 0", snapshot.Pos())
	}
	if c.Pos() != 2 {
		t.Fatalf("c.Pos() = %d, want 2", c.Pos())
	}
}

func TestCursorAdvanceMatching(t *testing.T) {
	c := NewCursor([]byte("=="))
	if !c.AdvanceMatching('=') {
		t.Fatal("AdvanceMatching('=') should succeed")
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() = %d, want 1", c.Pos())
	}
	if c.AdvanceMatching('x') {
		t.Fatal("AdvanceMatching('x') should fail without consuming")
	}
	if c.Pos() != 1 {
		t.Fatalf("Pos() = %d after failed match, want unchanged 1", c.Pos())
	}
}

func TestCursorAdvanceIfAndWhile(t *testing.T) {
	c := NewCursor([]byte("abc123"))
	c.AdvanceWhile(isIdentifierStart)
	if c.Pos() != 3 {
		t.Fatalf("Pos() after AdvanceWhile = %d, want 3", c.Pos())
	}
	// digits are identifier-continue too, so the whole run is consumed.
	c2 := NewCursor([]byte("abc123"))
	c2.AdvanceWhile(isIdentifierContinue)
	if c2.Pos() != len("abc123") {
		t.Fatalf("Pos() = %d, want %d", c2.Pos(), len("abc123"))
	}
}

func TestCursorPeekBack(t *testing.T) {
	c := NewCursor([]byte("abc"))
	c.Advance()
	c.Advance()
	if b, ok := c.PeekBack(1); !ok || b != 'b' {
		t.Errorf("PeekBack(1) = (%q, %v), want ('b', true)", b, ok)
	}
	if _, ok := c.PeekBack(5); ok {
		t.Error("PeekBack before buffer start should report false")
	}
}

func TestCursorBackUpPanicsPastStart(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("backUp before buffer start should panic")
		}
	}()
	c := NewCursor([]byte("a"))
	c.backUp(1)
}
