package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/calculator"
	"github.com/pengelbrecht/tally/internal/config"
	"github.com/pengelbrecht/tally/internal/session"
	"github.com/pengelbrecht/tally/internal/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Integer calculator with an operation log and threshold alerts",
	Long: `tally evaluates integer arithmetic, keeps an ordered log of every
operation performed, and raises an alert whenever a result exceeds a
configurable threshold.

Examples:
  # One-off operations
  tally add 2 3
  tally multiply 5 3

  # Expressions (quote them so the shell leaves * alone)
  tally eval "5 * 3" "12 / 4" --log

  # Interactive session
  tally repl --threshold 100`,
	SilenceUsage: true,
}

var rootThreshold int

func init() {
	rootCmd.PersistentFlags().IntVarP(&rootThreshold, "threshold", "t", config.DefaultThreshold, "alert threshold")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveThreshold picks the effective alert threshold: the --threshold
// flag wins, then the TALLY_THRESHOLD environment variable, then the
// config file default.
func resolveThreshold(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("threshold") {
		return rootThreshold, nil
	}

	if raw := strings.TrimSpace(os.Getenv("TALLY_THRESHOLD")); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("invalid TALLY_THRESHOLD %q: %w", raw, err)
		}
		return value, nil
	}

	path, err := config.Path()
	if err != nil {
		return config.DefaultThreshold, nil
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return 0, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.GetThreshold(), nil
}

// runBinaryOp backs the add, subtract, multiply, and divide commands,
// which differ only in their operator.
func runBinaryOp(cmd *cobra.Command, op calculator.Op, args []string, jsonOutput bool) error {
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid operand %q", args[0])
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid operand %q", args[1])
	}

	threshold, err := resolveThreshold(cmd)
	if err != nil {
		return err
	}

	sess := session.New(threshold)
	outcome, err := sess.Eval(calculator.Expr{A: a, Op: op, B: b})
	if err != nil {
		return fmt.Errorf("failed to evaluate %d %s %d: %w", a, op, b, err)
	}

	return printOutcome(cmd, outcome, jsonOutput)
}

// printOutcome writes one outcome in plain or JSON form. Plain form is the
// log entry line, plus the notifier message when the threshold is exceeded.
func printOutcome(cmd *cobra.Command, outcome session.Outcome, jsonOutput bool) error {
	w := cmd.OutOrStdout()

	if jsonOutput {
		enc := json.NewEncoder(w)
		if err := enc.Encode(outcome); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}

	fmt.Fprintf(w, "%s = %d\n", outcome.Expr, outcome.Value)
	if outcome.Alert {
		fmt.Fprintln(w, styles.RenderAlert(outcome.Message))
	}
	return nil
}
