// Command swiftlex tokenizes Swift-like source files and prints the
// resulting lexeme stream.
package main

import (
	"fmt"
	"os"

	"github.com/swiftcore/lexer/cmd/swiftlex/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
