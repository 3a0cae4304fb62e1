package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/calculator"
)

var multiplyCmd = &cobra.Command{
	Use:     "multiply <a> <b>",
	Aliases: []string{"mul"},
	Short:   "Multiply two integers",
	Long: `Multiply two integers.

The operation is recorded in the session log and the result is checked
against the alert threshold.

Examples:
  tally multiply 5 3
  tally mul 5 3 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runMultiply,
}

var multiplyJSON bool

func init() {
	multiplyCmd.Flags().BoolVar(&multiplyJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(multiplyCmd)
}

func runMultiply(cmd *cobra.Command, args []string) error {
	return runBinaryOp(cmd, calculator.OpMultiply, args, multiplyJSON)
}
