package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunabalang/sunaba/pkg/sunaba"
)

var (
	compileExpr     string
	compileFormat   string
	compileDumpTree bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Run the full tokenise+parse pipeline over Sunaba source",
	Long: `Compile runs Tokenise followed by Parse in one step and displays the
resulting Program AST, exactly like "sunaba parse" but named for the
pipeline convenience function the pkg/sunaba package exposes.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&compileExpr, "expression", "e", "", "compile inline source instead of reading from a file")
	compileCmd.Flags().StringVar(&compileFormat, "format", "json", "dump format: json or yaml")
	compileCmd.Flags().BoolVar(&compileDumpTree, "dump-ast", false, "print an indented AST tree instead of the structured dump")
}

func runCompile(cmd *cobra.Command, args []string) error {
	if !validFormat(compileFormat) {
		return fmt.Errorf("invalid --format %q: must be json or yaml", compileFormat)
	}

	input, _, err := readInput(compileExpr, args)
	if err != nil {
		return err
	}

	program, err := sunaba.Compile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Compile error: %v\n", err)
		return err
	}

	return renderProgram(program, compileDumpTree, compileFormat)
}
