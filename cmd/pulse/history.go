package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:       "history <energy|sleep>",
	Short:     "Browse logged entries grouped by day, most recent first",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"energy", "sleep"},
	RunE:      runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	switch args[0] {
	case "energy":
		buckets, err := j.EnergyHistory()
		if err != nil {
			return err
		}
		if len(buckets) == 0 {
			fmt.Println("No energy entries logged yet.")
			return nil
		}
		for _, bucket := range buckets {
			fmt.Println(bucket.Label)
			for _, rec := range bucket.Records {
				fmt.Printf("  %s  energy %d/5\n", rec.LoggedAt.Local().Format("15:04"), rec.Rating)
			}
		}
		return nil

	case "sleep":
		buckets, err := j.SleepHistory()
		if err != nil {
			return err
		}
		if len(buckets) == 0 {
			fmt.Println("No sleep entries logged yet.")
			return nil
		}
		for _, bucket := range buckets {
			fmt.Println(bucket.Label)
			for _, rec := range bucket.Records {
				fmt.Printf("  %s  %s\n", rec.LoggedAt.Local().Format("15:04"), sleepLine(rec))
			}
		}
		return nil

	default:
		return fmt.Errorf("kind must be energy or sleep, got %q", args[0])
	}
}
