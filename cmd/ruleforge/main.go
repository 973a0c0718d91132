// Command ruleforge learns categorical filter rules from a labeled
// training set and applies them to classify, slice, strip, or compare
// record files. See the commands package for the subcommand surface.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/ruleforge/cmd/ruleforge/commands"
)

func main() {
	if err := commands.NewRoot().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ruleforge:", err)
		os.Exit(1)
	}
}
