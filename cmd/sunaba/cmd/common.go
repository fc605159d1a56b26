package cmd

import (
	"fmt"
	"io"
	"os"
)

// readInput resolves a subcommand's source text from, in priority order,
// an inline -e/--expression flag, a file path argument, or stdin — the
// same three-way precedence `cmd/dwscript/cmd/parse.go`'s runParse uses.
func readInput(expr string, args []string) (input, name string, err error) {
	switch {
	case expr != "":
		return expr, "<expression>", nil
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("error reading file: %w", err)
		}
		return string(data), args[0], nil
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("error reading stdin: %w", err)
		}
		return string(data), "<stdin>", nil
	}
}

// validFormat reports whether format is one of the two dump formats the
// CLI supports.
func validFormat(format string) bool {
	return format == "json" || format == "yaml"
}
