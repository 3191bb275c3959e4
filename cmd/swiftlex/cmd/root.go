package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "swiftlex",
	Short: "A byte-level lexer for a Swift-like language",
	Long: `swiftlex tokenizes Swift-like source files and prints the
resulting lexeme stream.

It scans a UTF-8 source buffer in a single pass, producing lexemes with
leading/trailing trivia ranges, classification flags, and any lexical
errors attached in place — it never stops at the first malformed token.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".swiftlex.yaml", "path to swiftlex config file")
}
