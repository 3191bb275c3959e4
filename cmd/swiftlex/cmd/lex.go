package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/swiftcore/lexer/internal/config"
	"github.com/swiftcore/lexer/internal/diagnostics"
	"github.com/swiftcore/lexer/internal/lexer"
	"github.com/swiftcore/lexer/internal/token"
)

var (
	evalExpr   string
	configPath string
	showTrivia bool
	asJSON     bool
	jsonFilter string
	onlyErrors bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a Swift-like source file or expression",
	Long: `Tokenize (lex) a Swift-like program and print the resulting lexemes.

This command is useful for debugging the lexer and understanding how
source code is broken into lexemes, trivia, and errors.

Examples:
  # Tokenize a source file
  swiftlex lex script.swift

  # Tokenize an inline expression
  swiftlex lex -e "let x = 42"

  # Include trivia ranges in the output
  swiftlex lex --show-trivia script.swift

  # Emit JSON and query it with a gjson path
  swiftlex lex --json --json-filter "#(kind==\"integerLiteral\")" script.swift

  # Show only lexemes with an attached error
  swiftlex lex --only-errors script.swift`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showTrivia, "show-trivia", false, "show leading/trailing trivia ranges")
	lexCmd.Flags().BoolVar(&asJSON, "json", false, "emit the lexeme stream as JSON")
	lexCmd.Flags().StringVar(&jsonFilter, "json-filter", "", "gjson path to query the emitted JSON (implies --json)")
	lexCmd.Flags().BoolVar(&onlyErrors, "only-errors", false, "show only lexemes with an attached error")
}

func lexScript(cmd *cobra.Command, args []string) error {
	var input string
	var filename string

	if evalExpr != "" {
		input = evalExpr
		filename = "<eval>"
	} else if len(args) == 1 {
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	} else {
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", configPath, err)
	}
	if !cmd.Flags().Changed("show-trivia") {
		showTrivia = cfg.ShowTrivia
	}
	if !cmd.Flags().Changed("json") && cfg.OutputFormat == config.FormatJSON {
		asJSON = true
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fmt.Printf("Tokenizing: %s\n", filename)
		fmt.Printf("Input length: %d bytes\n", len(input))
		fmt.Println("---")
	}

	buf := []byte(input)
	lx := lexer.New(buf)

	var lexemes []lexer.Lexeme
	for {
		lm := lx.Next()
		lexemes = append(lexemes, lm)
		if lm.Kind == token.EOF {
			break
		}
	}

	if jsonFilter != "" {
		asJSON = true
	}

	var printErr error
	if asJSON {
		printErr = printJSON(lexemes, buf, filename)
	} else {
		printErr = printText(lexemes, buf, filename)
	}

	if verbose {
		errorCount := 0
		for _, lm := range lexemes {
			if lm.Err != nil {
				errorCount++
			}
		}
		fmt.Println("---")
		fmt.Printf("Total lexemes: %d\n", len(lexemes))
		if errorCount > 0 {
			fmt.Printf("Errors: %d\n", errorCount)
		}
	}

	return printErr
}

func printText(lexemes []lexer.Lexeme, buf []byte, filename string) error {
	errorCount := 0
	for _, lm := range lexemes {
		if onlyErrors && lm.Err == nil {
			continue
		}
		if lm.Err != nil {
			errorCount++
		}
		printLexeme(lm, buf)
	}

	var diags []*diagnostics.Diagnostic
	for _, lm := range lexemes {
		if d := diagnostics.FromLexeme(lm, buf, filename); d != nil {
			diags = append(diags, d)
		}
	}
	if len(diags) > 0 {
		fmt.Println("---")
		fmt.Print(diagnostics.FormatAll(diags, false))
		fmt.Println()
	}

	if onlyErrors && errorCount > 0 {
		return fmt.Errorf("found %d lexeme(s) with errors", errorCount)
	}
	return nil
}

func printLexeme(lm lexer.Lexeme, buf []byte) {
	output := fmt.Sprintf("[%-22s]", lm.Kind)

	if lm.Kind == token.EOF {
		output += " EOF"
	} else {
		output += fmt.Sprintf(" %q", lm.Text(buf))
	}

	output += fmt.Sprintf(" @%d..%d", lm.TextStart(), lm.TextStart()+lm.TextLength)

	if showTrivia {
		output += fmt.Sprintf(" leading=[%d,%d) trailing=[%d,%d)",
			lm.LeadingTriviaStart, lm.TextStart(),
			lm.TrailingTriviaStart(), lm.End())
	}

	if lm.Err != nil {
		output += fmt.Sprintf(" ERROR:%s", lm.Err.Kind)
	}

	fmt.Println(output)
}

// printJSON builds the lexeme stream as a JSON array with sjson
// (appending each lexeme via the "-1" append-index path), then, if a
// --json-filter path was given, queries the result back with gjson
// instead of printing the whole array.
func printJSON(lexemes []lexer.Lexeme, buf []byte, filename string) error {
	doc := "[]"
	var err error
	for _, lm := range lexemes {
		entry := map[string]any{
			"kind":        lm.Kind.String(),
			"text":        string(lm.Text(buf)),
			"start":       lm.TextStart(),
			"end":         lm.TextStart() + lm.TextLength,
			"atLineStart": lm.IsAtStartOfLine(),
		}
		if lm.Err != nil {
			entry["error"] = lm.Err.Kind.String()
		}
		if showTrivia {
			entry["leadingTriviaStart"] = lm.LeadingTriviaStart
			entry["trailingTriviaEnd"] = lm.End()
		}

		doc, err = sjson.Set(doc, "-1", entry)
		if err != nil {
			return fmt.Errorf("failed to build JSON output: %w", err)
		}
	}

	if jsonFilter != "" {
		result := gjson.Get(doc, jsonFilter)
		fmt.Println(result.String())
		return nil
	}

	fmt.Println(doc)
	return nil
}
