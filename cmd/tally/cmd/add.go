package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/calculator"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Add two integers",
	Long: `Add two integers.

The operation is recorded in the session log and the result is checked
against the alert threshold. Prefix negative operands with -- so they are
not parsed as flags.

Examples:
  tally add 2 3
  tally add -- -2 3
  tally add 2 3 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runAdd,
}

var addJSON bool

func init() {
	addCmd.Flags().BoolVar(&addJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	return runBinaryOp(cmd, calculator.OpAdd, args, addJSON)
}
