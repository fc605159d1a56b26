package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "sunaba",
	Short: "Sunaba front-end toolkit",
	Long: `sunaba is the tokeniser and parser for the Sunaba language: a
small, indentation-sensitive imperative language over integer arithmetic,
function calls, and indexed memory access.

Use the lex/parse/compile subcommands to run either pipeline stage on a
source file or inline expression and inspect the resulting tokens or AST.`,
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
}
