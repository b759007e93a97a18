package main

import (
	"fmt"
	"os"

	"github.com/nvaldez/pulse/internal/server"
	"github.com/nvaldez/pulse/internal/updater"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update pulse to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	fmt.Fprintln(os.Stderr, "Checking for updates...")

	result := updater.CheckVersion(server.Version)
	if !result.UpdateAvailable {
		fmt.Fprintf(os.Stderr, "Already at the latest version (v%s)\n", result.CurrentVersion)
		return nil
	}

	fmt.Fprintf(os.Stderr, "New version available: v%s -> v%s\n", result.CurrentVersion, result.LatestVersion)
	fmt.Fprintln(os.Stderr, "Downloading...")

	if err := updater.SelfUpdate(server.Version); err != nil {
		return fmt.Errorf("update failed: %w\nYou can download manually from %s", err, result.ReleaseURL)
	}

	fmt.Fprintf(os.Stderr, "Updated to v%s. Restart pulse to use the new version.\n", result.LatestVersion)
	return nil
}

// checkForUpdates runs a non-blocking version check and prints a notice to
// stderr if an update is available. Network failures are silently ignored.
func checkForUpdates() {
	result := updater.CheckVersion(server.Version)
	if result.UpdateAvailable {
		fmt.Fprintf(os.Stderr,
			"\n  Update available: v%s -> v%s\n"+
				"  Run: pulse update\n"+
				"  Release: %s\n\n",
			result.CurrentVersion, result.LatestVersion, result.ReleaseURL,
		)
	}
}
