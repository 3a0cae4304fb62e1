package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/session"
	"github.com/pengelbrecht/tally/internal/tui"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive calculator session",
	Long: `Start an interactive calculator session.

Expressions are evaluated as you enter them, every result is added to the
session log, and results above the threshold are highlighted. Quit with
esc or ctrl+c.

Examples:
  tally repl
  tally repl --threshold 100`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command, args []string) error {
	threshold, err := resolveThreshold(cmd)
	if err != nil {
		return err
	}

	if err := tui.Run(session.New(threshold)); err != nil {
		return fmt.Errorf("failed to run repl: %w", err)
	}
	return nil
}
