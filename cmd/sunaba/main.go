// Command sunaba is the CLI front end for tokenising, parsing, and
// compiling Sunaba source: thin cobra subcommands over pkg/sunaba.
package main

import (
	"fmt"
	"os"

	"github.com/sunabalang/sunaba/cmd/sunaba/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
