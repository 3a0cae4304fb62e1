package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/config"
)

var thresholdCmd = &cobra.Command{
	Use:   "threshold [value]",
	Short: "Show or set the default alert threshold",
	Long: `Show or set the default alert threshold.

Without arguments, prints the threshold commands use when --threshold is
not given. With a value, stores it in the config file as the new default.

Examples:
  tally threshold
  tally threshold 100
  tally threshold --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runThreshold,
}

var thresholdJSON bool

func init() {
	thresholdCmd.Flags().BoolVar(&thresholdJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(thresholdCmd)
}

func runThreshold(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	if len(args) == 0 {
		threshold, err := resolveThreshold(cmd)
		if err != nil {
			return err
		}

		if thresholdJSON {
			enc := json.NewEncoder(w)
			if err := enc.Encode(map[string]int{"threshold": threshold}); err != nil {
				return fmt.Errorf("failed to encode json: %w", err)
			}
			return nil
		}
		fmt.Fprintf(w, "Threshold: %d\n", threshold)
		return nil
	}

	value, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid threshold %q", args[0])
	}

	path, err := config.Path()
	if err != nil {
		return fmt.Errorf("failed to locate config: %w", err)
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Threshold = &value
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	if thresholdJSON {
		enc := json.NewEncoder(w)
		if err := enc.Encode(map[string]int{"threshold": value}); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	}
	fmt.Fprintf(w, "Default threshold set to %d\n", value)
	return nil
}
