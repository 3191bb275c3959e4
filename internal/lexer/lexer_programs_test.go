package lexer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/swiftcore/lexer/internal/token"
)

// renderLexemes is a stable, deterministic textual rendering of a whole
// lexeme stream: one line per lexeme, kind + flags + error + text.
// Byte offsets are intentionally omitted so the snapshot stays readable
// and does not churn on every whitespace tweak to a fixture below.
func renderLexemes(src []byte) string {
	lx := New(src)
	var sb strings.Builder
	for {
		lm := lx.Next()
		fmt.Fprintf(&sb, "%-22s %q", lm.Kind, lm.Text(src))
		if lm.Flags.Has(token.AtStartOfLine) {
			sb.WriteString(" bol")
		}
		if lm.Flags.Has(token.IsRaw) {
			sb.WriteString(" raw")
		}
		if lm.Flags.Has(token.IsMultiline) {
			sb.WriteString(" multiline")
		}
		if lm.Err != nil {
			fmt.Fprintf(&sb, " error=%s", lm.Err.Kind)
		}
		sb.WriteString("\n")
		if lm.Kind == token.EOF {
			break
		}
	}
	return sb.String()
}

// Each fixture below is a small, whole program fragment exercising a
// distinct cluster of spec.md §8 scenarios end to end, snapshotted with
// go-snaps the way the teacher snapshots whole-fixture interpreter
// output.
func TestLexerProgramFixtures(t *testing.T) {
	fixtures := []struct {
		name string
		src  string
	}{
		{
			name: "function_declaration",
			src: `func add(_ lhs: Int, _ rhs: Int) -> Int {
    return lhs + rhs
}
`,
		},
		{
			name: "string_interpolation_and_raw",
			src: "let greeting = \"Hello, \\(name)!\"\n" +
				`let path = #"C:\Users\name"#` + "\n",
		},
		{
			name: "optional_chaining_and_boundness",
			src: "let length = value?.count ?? 0\nx!.foo()\n",
		},
		{
			name: "multiline_string",
			src: "let text = \"\"\"\n    indented\n    body\n    \"\"\"\n",
		},
		{
			name: "regex_and_division",
			src: "let pattern = /[a-z]+/\nlet ratio = a / b / c\n",
		},
		{
			name: "editor_placeholder_and_pound_directive",
			src:  "func foo(_ x: <#Type#>) {}\n#if DEBUG\nlet flag = true\n#endif\n",
		},
	}

	for _, f := range fixtures {
		t.Run(f.name, func(t *testing.T) {
			out := renderLexemes([]byte(f.src))
			snaps.MatchSnapshot(t, fmt.Sprintf("%s_lexemes", f.name), out)
		})
	}
}
