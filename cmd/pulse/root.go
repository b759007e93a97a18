package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/nvaldez/pulse/internal/config"
	"github.com/nvaldez/pulse/internal/journal"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pulse",
	Short: "Pulse – a personal wellbeing journal",
	Long: `pulse records energy ratings (1-5) and sleep over time.
Data is stored in a SQLite database under ~/.pulse/.

Run "pulse serve" to expose the journal to AI assistants over MCP,
or use the direct commands (energy, sleep, history, summary).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(energyCmd)
	rootCmd.AddCommand(sleepCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// confirmReplace asks on stderr whether a conflicting entry should be
// replaced and reads the answer from stdin. Anything but y/yes keeps the
// existing entry; so does a closed stdin.
func confirmReplace(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s Replace it? [y/N]: ", prompt)
	var answer string
	if _, err := fmt.Fscanln(os.Stdin, &answer); err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// openJournal loads the user configuration and opens the journal.
// Callers must Close() the returned journal.
func openJournal() (*journal.Journal, config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("loading config: %w", err)
	}
	j, err := journal.New(cfg.Journal())
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("opening journal: %w", err)
	}
	return j, cfg, nil
}
