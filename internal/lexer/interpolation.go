package lexer

// Interpolation Skip-Scan (spec.md §4.7.1). A purpose-built forward scan
// over raw bytes that finds the `)` matching a string interpolation's
// `\(`, tracking paren depth and any nested string literals it passes
// through. This has no teacher analogue (DWScript has no string
// interpolation) — it is new, built to the byte-walking, parallel-stack
// shape spec.md §4.7.1 describes, kept as a standalone forward scan
// (rather than threading an explicit stack through the cursor's State)
// so the rest of the engine stays a flat, five-state automaton.

// interpNestedQuote is one entry of the "open delimiters" stack spec.md
// describes: a string literal opened from inside the interpolated
// expression, together with the bits needed to recognize its close.
type interpNestedQuote struct {
	quote     byte
	multiline bool
	hashCount int
}

// findInterpolationEnd walks forward from c (positioned just past the
// interpolation's opening `(`) and returns the cursor positioned just
// past the matching `)`. Reaching EOF, an illegal newline inside a
// single-line nested literal, or a `/*` block comment opened directly in
// expression context all end the scan early, leaving the cursor for the
// outer scanner to deal with (spec.md §4.7.1).
func findInterpolationEnd(c Cursor) Cursor {
	parenDepth := 1
	var quotes []interpNestedQuote

	for {
		if c.AtEnd() {
			return c
		}

		if len(quotes) > 0 {
			top := quotes[len(quotes)-1]
			b, _ := c.Peek(0)

			switch {
			case b == '\\':
				if ok, plen := escapePrefixLength(c, top.hashCount); ok {
					if nb, hasNb := c.Peek(plen); hasNb && nb == '(' {
						for i := 0; i < plen; i++ {
							c.Advance()
						}
						c.Advance() // '('
						parenDepth++
						continue
					}
					for i := 0; i < plen; i++ {
						c.Advance()
					}
					if !c.AtEnd() {
						c.Advance()
					}
					continue
				}
				c.Advance()
				continue
			case b == top.quote:
				if top.multiline {
					if tripleQuoteAt(c) && matchesTrailingHashes(c, 3, top.hashCount) {
						c.Advance()
						c.Advance()
						c.Advance()
						for i := 0; i < top.hashCount; i++ {
							c.Advance()
						}
						quotes = quotes[:len(quotes)-1]
						continue
					}
					c.Advance()
					continue
				}
				if matchesTrailingHashes(c, 1, top.hashCount) {
					c.Advance()
					for i := 0; i < top.hashCount; i++ {
						c.Advance()
					}
					quotes = quotes[:len(quotes)-1]
					continue
				}
				c.Advance()
				continue
			case (b == '\n' || b == '\r') && !top.multiline:
				// Unterminated nested single-line literal: recover by
				// leaving the newline for the outer scanner.
				return c
			default:
				c.Advance()
				continue
			}
		}

		b, ok := c.Peek(0)
		if !ok {
			return c
		}

		switch {
		case b == '(':
			parenDepth++
			c.Advance()
		case b == ')':
			parenDepth--
			c.Advance()
			if parenDepth == 0 {
				return c
			}
		case b == '"' || b == '\'':
			quotes = append(quotes, openNestedQuote(&c, b, 0))
		case b == '#':
			hashRun := 0
			probe := c
			for {
				bb, probeOk := probe.Peek(0)
				if !probeOk || bb != '#' {
					break
				}
				probe.Advance()
				hashRun++
			}
			if qb, probeOk := probe.Peek(0); probeOk && (qb == '"' || qb == '\'') {
				c = probe
				quotes = append(quotes, openNestedQuote(&c, qb, hashRun))
			} else {
				c.Advance()
			}
		case b == '/':
			if n, peekOk := c.Peek(1); peekOk && n == '/' {
				for {
					bb, lineOk := c.Peek(0)
					if !lineOk || bb == '\n' {
						break
					}
					c.Advance()
				}
			} else if n, peekOk := c.Peek(1); peekOk && n == '*' {
				// Forbidden inside a single-line literal's interpolation;
				// bail and let the outer scanner report unterminated.
				return c
			} else {
				c.Advance()
			}
		default:
			c.Advance()
		}
	}
}

// openNestedQuote consumes the opening quote (1 byte, or 3 for
// multi-line) at c and returns the tracking entry for it.
func openNestedQuote(c *Cursor, quote byte, hashCount int) interpNestedQuote {
	multiline := quote == '"' && tripleQuoteAt(*c)
	if multiline {
		c.Advance()
		c.Advance()
		c.Advance()
	} else {
		c.Advance()
	}
	return interpNestedQuote{quote: quote, multiline: multiline, hashCount: hashCount}
}
