package main

import (
	"fmt"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:       "summary <energy|sleep>",
	Short:     "Show rolling statistics for the last 7 days",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"energy", "sleep"},
	RunE:      runSummary,
}

func runSummary(cmd *cobra.Command, args []string) error {
	j, cfg, err := openJournal()
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	var (
		s    journal.Summary
		unit string
	)
	switch args[0] {
	case "energy":
		s, err = j.EnergySummary()
		unit = "rating"
	case "sleep":
		s, err = j.SleepSummary()
		unit = "hours"
	default:
		return fmt.Errorf("kind must be energy or sleep, got %q", args[0])
	}
	if err != nil {
		return err
	}

	fmt.Printf("Last %d days (%s)\n", cfg.SummaryWindowDays, args[0])
	fmt.Println("--------------------------------")
	fmt.Printf("%-12s%d\n", "Entries", s.Count)
	fmt.Printf("%-12s%.2f %s\n", "Mean", s.Mean, unit)
	fmt.Printf("%-12s%s\n", "Band", s.Band)

	if len(s.Trend) > 0 {
		fmt.Println("--------------------------------")
		for _, p := range s.Trend {
			fmt.Printf("%-12s%.2f\n", p.Day.Format("2006-01-02"), p.Mean)
		}
	}
	return nil
}
