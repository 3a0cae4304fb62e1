package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/calculator"
)

var subtractCmd = &cobra.Command{
	Use:     "subtract <a> <b>",
	Aliases: []string{"sub"},
	Short:   "Subtract one integer from another",
	Long: `Subtract one integer from another.

The operation is recorded in the session log and the result is checked
against the alert threshold.

Examples:
  tally subtract 5 3
  tally sub 5 3 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runSubtract,
}

var subtractJSON bool

func init() {
	subtractCmd.Flags().BoolVar(&subtractJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(subtractCmd)
}

func runSubtract(cmd *cobra.Command, args []string) error {
	return runBinaryOp(cmd, calculator.OpSubtract, args, subtractJSON)
}
