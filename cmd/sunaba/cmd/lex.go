package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sunabalang/sunaba/pkg/sunaba"
)

var (
	lexExpr   string
	lexFormat string
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenise a Sunaba file or expression",
	Long: `Tokenise a Sunaba program and print the resulting line-tokens.

Examples:
  # Tokenise a script file
  sunaba lex script.sunaba

  # Tokenise inline source
  sunaba lex -e "x -> 1 + 2"

  # Dump as YAML instead of JSON
  sunaba lex --format yaml script.sunaba`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&lexExpr, "expression", "e", "", "tokenise inline source instead of reading from a file")
	lexCmd.Flags().StringVar(&lexFormat, "format", "json", "dump format: json or yaml")
}

func runLex(cmd *cobra.Command, args []string) error {
	if !validFormat(lexFormat) {
		return fmt.Errorf("invalid --format %q: must be json or yaml", lexFormat)
	}

	input, _, err := readInput(lexExpr, args)
	if err != nil {
		return err
	}

	lines, err := sunaba.Tokenise(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Tokenise error: %v\n", err)
		return err
	}

	var dump []byte
	if lexFormat == "yaml" {
		dump, err = sunaba.DumpTokensYAML(lines)
	} else {
		dump, err = sunaba.DumpTokensJSON(lines)
	}
	if err != nil {
		return fmt.Errorf("rendering dump: %w", err)
	}

	fmt.Println(string(dump))
	return nil
}
