// Command akso is the external-collaborator CLI of §6.6: it reads a
// definition layer as JSON from standard input and either evaluates or
// analyzes every top-level identifier in it, following cue-lang-cue's
// cmd/cue convention of one cobra subcommand per top-level operation.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

// run is main's body, factored out so testscript's RunMain can drive the
// CLI in-process as the "akso" script command (cmd/akso/main_test.go)
// instead of exec'ing a built binary.
func run() int {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "akso",
		Short:         "evaluate and analyze akso-script definition graphs",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newAnalyzeCmd())
	return root
}
