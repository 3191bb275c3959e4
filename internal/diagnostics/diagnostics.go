// Package diagnostics renders a lexer.LexError, plus the lexeme it was
// attached to, against the original source buffer. This is ambient CLI
// plumbing: the lexical core never produces or consumes line/column
// information (spec.md §1's non-goals), so the offset-to-line/column
// translation below is strictly one-way and exists only to make
// `swiftlex lex` output readable.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/swiftcore/lexer/internal/lexer"
)

// Diagnostic is one renderable fault: a LexError anchored at an absolute
// byte offset into Source, optionally attributed to File.
type Diagnostic struct {
	Err    *lexer.LexError
	Offset int
	Source []byte
	File   string
}

// FromLexeme builds a Diagnostic for lm's error, if any, anchoring the
// error's lexeme-relative offset to an absolute buffer offset. Returns
// nil if lm carries no error.
func FromLexeme(lm lexer.Lexeme, buf []byte, file string) *Diagnostic {
	if lm.Err == nil {
		return nil
	}
	return &Diagnostic{
		Err:    lm.Err,
		Offset: lm.TextStart() + lm.Err.Offset,
		Source: buf,
		File:   file,
	}
}

// line and column are 1-indexed, re-derived from Offset by scanning
// Source for newlines, the way the teacher's CompilerError.getSourceLine
// does it from a stored line number — except here there is no stored
// line number to start from, only a byte offset, so we count newlines
// up to it.
func (d *Diagnostic) line() int {
	line := 1
	for _, b := range d.Source[:clamp(d.Offset, 0, len(d.Source))] {
		if b == '\n' {
			line++
		}
	}
	return line
}

func (d *Diagnostic) column() int {
	lineStart := d.Offset
	for lineStart > 0 && lineStart <= len(d.Source) && d.Source[lineStart-1] != '\n' {
		lineStart--
	}
	return d.Offset - lineStart + 1
}

func (d *Diagnostic) sourceLine() string {
	off := clamp(d.Offset, 0, len(d.Source))
	start := off
	for start > 0 && d.Source[start-1] != '\n' {
		start--
	}
	end := off
	for end < len(d.Source) && d.Source[end] != '\n' {
		end++
	}
	return string(d.Source[start:end])
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

// Format renders the diagnostic as an "Error in file:line:column" header
// (or "Error at offset N (line L:C)" when File is empty), followed by a
// source-context line, a caret line and the error message, mirroring the
// teacher's CompilerError.Format two-mode header (with file / without
// file) and lineNum " | " source + caret layout.
func (d *Diagnostic) Format(color bool) string {
	var sb strings.Builder

	line, col := d.line(), d.column()

	if d.File != "" {
		sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", d.File, line, col))
	} else {
		sb.WriteString(fmt.Sprintf("Error at offset %d (line %d:%d)\n", d.Offset, line, col))
	}

	src := d.sourceLine()
	lineNumStr := fmt.Sprintf("%4d | ", line)
	sb.WriteString(lineNumStr)
	sb.WriteString(src)
	sb.WriteString("\n")

	sb.WriteString(strings.Repeat(" ", len(lineNumStr)+col-1))
	if color {
		sb.WriteString("\033[1;31m")
	}
	sb.WriteString("^")
	if color {
		sb.WriteString("\033[0m")
	}
	sb.WriteString("\n")

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString(d.Err.Error())
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// FormatAll renders a sequence of diagnostics, separated the way the
// teacher's FormatErrors separates multiple CompilerErrors.
func FormatAll(diags []*Diagnostic, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	if len(diags) == 1 {
		return diags[0].Format(color)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("lexing produced %d error(s):\n\n", len(diags)))
	for i, d := range diags {
		sb.WriteString(fmt.Sprintf("[error %d of %d]\n", i+1, len(diags)))
		sb.WriteString(d.Format(color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
