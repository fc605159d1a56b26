package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunabalang/sunaba/pkg/sunaba"
)

var (
	parseExpr     string
	parseFormat   string
	parseDumpTree bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse Sunaba source and display the resulting Program AST",
	Long: `Parse Sunaba source code (tokenising it first) and display the AST.

If no file is provided, reads from stdin. Use -e to parse inline source.
Use --dump-ast to print an indented tree instead of the JSON/YAML dump.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseExpr, "expression", "e", "", "parse inline source instead of reading from a file")
	parseCmd.Flags().StringVar(&parseFormat, "format", "json", "dump format: json or yaml")
	parseCmd.Flags().BoolVar(&parseDumpTree, "dump-ast", false, "print an indented AST tree instead of the structured dump")
}

func runParse(cmd *cobra.Command, args []string) error {
	if !validFormat(parseFormat) {
		return fmt.Errorf("invalid --format %q: must be json or yaml", parseFormat)
	}

	input, _, err := readInput(parseExpr, args)
	if err != nil {
		return err
	}

	program, err := sunaba.Compile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		return err
	}

	return renderProgram(program, parseDumpTree, parseFormat)
}

func renderProgram(program *sunaba.Program, dumpTree bool, format string) error {
	if dumpTree {
		fmt.Println("Abstract Syntax Tree:")
		fmt.Println("=====================")
		dumpASTNode(program, 0)
		return nil
	}

	var dump []byte
	var err error
	if format == "yaml" {
		dump, err = sunaba.DumpProgramYAML(program)
	} else {
		dump, err = sunaba.DumpProgramJSON(program)
	}
	if err != nil {
		return fmt.Errorf("rendering dump: %w", err)
	}
	fmt.Println(string(dump))
	return nil
}
