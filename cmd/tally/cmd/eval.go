package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/session"
	"github.com/pengelbrecht/tally/internal/styles"
)

var evalCmd = &cobra.Command{
	Use:   "eval <expression>...",
	Short: "Evaluate one or more expressions in a single session",
	Long: `Evaluate one or more expressions in a single session.

Each expression has the form "<a> <op> <b>" with operators +, -, * and /.
Division truncates toward zero and reports division by zero as an error.
Quote expressions so the shell does not expand *, and prefix expressions
starting with a negative operand with -- so they are not parsed as flags.

Examples:
  tally eval "5 * 3"
  tally eval "2 + 3" "12 / 4" --log
  tally eval -- "-6 / 3"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runEval,
}

var (
	evalJSON bool
	evalLog  bool
)

func init() {
	evalCmd.Flags().BoolVar(&evalJSON, "json", false, "output as JSON")
	evalCmd.Flags().BoolVar(&evalLog, "log", false, "print the session log after evaluating")

	rootCmd.AddCommand(evalCmd)
}

func runEval(cmd *cobra.Command, args []string) error {
	threshold, err := resolveThreshold(cmd)
	if err != nil {
		return err
	}

	sess := session.New(threshold)
	outcomes := make([]session.Outcome, 0, len(args))
	for _, raw := range args {
		outcome, err := sess.EvalLine(raw)
		if err != nil {
			return fmt.Errorf("failed to evaluate %q: %w", raw, err)
		}
		outcomes = append(outcomes, outcome)
	}

	w := cmd.OutOrStdout()

	if evalJSON {
		payload := map[string]any{
			"results": outcomes,
			"log":     sess.History(),
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(payload); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	for _, outcome := range outcomes {
		fmt.Fprintf(w, "%s = %d\n", outcome.Expr, outcome.Value)
		if outcome.Alert {
			fmt.Fprintln(w, styles.RenderAlert(outcome.Message))
		}
	}

	if evalLog {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Session log:")
		for _, entry := range sess.History() {
			fmt.Fprintf(w, "  %s\n", entry)
		}
	}
	return nil
}
