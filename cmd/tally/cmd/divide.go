package cmd

import (
	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/calculator"
)

var divideCmd = &cobra.Command{
	Use:     "divide <a> <b>",
	Aliases: []string{"div"},
	Short:   "Divide one integer by another",
	Long: `Divide one integer by another.

Division truncates toward zero. Dividing by zero is an error and is not
recorded in the session log.

Examples:
  tally divide 12 4
  tally div 5 2
  tally divide 12 4 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runDivide,
}

var divideJSON bool

func init() {
	divideCmd.Flags().BoolVar(&divideJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(divideCmd)
}

func runDivide(cmd *cobra.Command, args []string) error {
	return runBinaryOp(cmd, calculator.OpDivide, args, divideJSON)
}
