package lexer

// Cursor is a bounds-checked, cheaply-copyable view into an immutable
// byte buffer plus one byte of look-behind and the current scanner
// state (spec.md §3, §4.1). Cursors borrow from the buffer; nothing here
// allocates per-token heap storage. A saved Cursor value is a rollback
// point — no method ever needs to un-do a mutation, because nothing is
// shared: copying the struct is the entire "save" operation.
type Cursor struct {
	buf   []byte
	pos   int
	prev  byte
	state State
}

// nulSentinel is the previous-byte value before the buffer's first byte
// (spec.md §4.1 contract).
const nulSentinel byte = 0x00

// NewCursor returns a Cursor positioned at the start of buf, in Normal
// state, with the NUL sentinel as previous-byte.
func NewCursor(buf []byte) Cursor {
	return Cursor{buf: buf, pos: 0, prev: nulSentinel, state: Normal()}
}

// Pos returns the cursor's current byte offset.
func (c Cursor) Pos() int { return c.pos }

// AtEnd reports whether the cursor has consumed the entire buffer.
func (c Cursor) AtEnd() bool { return c.pos >= len(c.buf) }

// Len returns the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.buf) - c.pos }

// State returns the cursor's current scanner state.
func (c Cursor) State() State { return c.state }

// WithState returns a copy of c with its scanner state replaced. Cursors
// are value types, so this never mutates c.
func (c Cursor) WithState(s State) Cursor {
	c.state = s
	return c
}

// Previous returns the last byte consumed, or the NUL sentinel at buffer
// start.
func (c Cursor) Previous() byte { return c.prev }

// Peek returns the byte at pos+offset, or (0, false) past EOF.
func (c Cursor) Peek(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

// Slice returns the raw bytes between two cursors over the same buffer,
// from c (inclusive) to end (exclusive).
func (c Cursor) Slice(end Cursor) []byte {
	return c.buf[c.pos:end.pos]
}

// Advance consumes and returns one byte, or (0, false) at EOF (in which
// case the cursor is left unchanged).
func (c *Cursor) Advance() (byte, bool) {
	if c.AtEnd() {
		return 0, false
	}
	b := c.buf[c.pos]
	c.pos++
	c.prev = b
	return b, true
}

// AdvanceMatching consumes one byte if it equals b, and reports whether
// it did.
func (c *Cursor) AdvanceMatching(b byte) bool {
	cur, ok := c.Peek(0)
	if !ok || cur != b {
		return false
	}
	c.Advance()
	return true
}

// AdvanceMatching2 consumes one byte if it equals a or b.
func (c *Cursor) AdvanceMatching2(a, b byte) bool {
	cur, ok := c.Peek(0)
	if !ok || (cur != a && cur != b) {
		return false
	}
	c.Advance()
	return true
}

// AdvanceMatching3 consumes one byte if it equals a, b, or d.
func (c *Cursor) AdvanceMatching3(a, b, d byte) bool {
	cur, ok := c.Peek(0)
	if !ok || (cur != a && cur != b && cur != d) {
		return false
	}
	c.Advance()
	return true
}

// AdvanceIf consumes one validated UTF-8 scalar if pred holds for it,
// leaving the cursor unchanged otherwise.
func (c *Cursor) AdvanceIf(pred func(rune) bool) bool {
	snapshot := *c
	r, ok := c.advanceValidatingUTF8Character()
	if !ok || !pred(r) {
		*c = snapshot
		return false
	}
	return true
}

// AdvanceWhile repeatedly consumes validated UTF-8 scalars satisfying
// pred.
func (c *Cursor) AdvanceWhile(pred func(rune) bool) {
	for c.AdvanceIf(pred) {
	}
}

// PeekBack returns the byte n positions before pos, or (0, false) if that
// would fall before bufferBegin (spec.md §4.1: "safe look-behind anywhere
// in buffer").
func (c Cursor) PeekBack(n int) (byte, bool) {
	i := c.pos - n
	if i < 0 || i >= len(c.buf) {
		return 0, false
	}
	return c.buf[i], true
}

// backUp decrements the cursor's position by n bytes. Documented in
// SPEC_FULL.md open question #1 as narrow and unsafe: no lexer code calls
// it (the lookahead paths roll back by keeping a Cursor copy instead),
// and it panics if n would move the cursor before the buffer start — a
// programmer error, never a user-triggerable one.
func (c *Cursor) backUp(n int) {
	if c.pos-n < 0 {
		panic("lexer: backUp would move cursor before buffer start")
	}
	c.pos -= n
	if c.pos == 0 {
		c.prev = nulSentinel
	} else {
		c.prev = c.buf[c.pos-1]
	}
}
