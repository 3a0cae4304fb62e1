package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pengelbrecht/tally/internal/update"
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade tally to the latest version",
	Long:  `Upgrade tally to the latest version by downloading and installing the newest release.`,
	Args:  cobra.NoArgs,
	RunE:  runUpgrade,
}

func init() {
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()

	fmt.Fprintf(w, "Current version: %s\n", Version)

	if Version == "dev" {
		fmt.Fprintln(w, "Development build, skipping upgrade check.")
		return nil
	}

	if update.DetectInstallMethod() == update.InstallHomebrew {
		fmt.Fprintln(w, "\ntally was installed via Homebrew.")
		fmt.Fprintln(w, "Run: brew upgrade tally")
		return nil
	}

	fmt.Fprintln(w, "Checking for updates...")

	release, hasUpdate, err := update.CheckForUpdate(Version)
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}

	if !hasUpdate {
		fmt.Fprintln(w, "Already at latest version.")
		return nil
	}

	fmt.Fprintf(w, "Updating to %s...\n", release.Version)

	if err := update.Update(Version); err != nil {
		return fmt.Errorf("failed to update: %w", err)
	}

	fmt.Fprintf(w, "Successfully updated to %s\n", release.Version)
	return nil
}
