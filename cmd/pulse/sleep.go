package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/spf13/cobra"
)

var (
	sleepInterrupted   bool
	sleepUninterrupted bool
	sleepBedtime       string
	sleepReplace       bool
	sleepKeep          bool
)

var sleepCmd = &cobra.Command{
	Use:   "sleep <hours>",
	Short: "Log a night of sleep (hours, 0-24)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSleep,
}

func init() {
	sleepCmd.Flags().BoolVar(&sleepInterrupted, "interrupted", false, "Mark the sleep as interrupted")
	sleepCmd.Flags().BoolVar(&sleepUninterrupted, "uninterrupted", false, "Mark the sleep as uninterrupted")
	sleepCmd.Flags().StringVar(&sleepBedtime, "bedtime", "", "Bedtime as HH:MM, e.g. 22:45")
	sleepCmd.Flags().BoolVar(&sleepReplace, "replace", false, "Replace a conflicting entry logged within the window")
	sleepCmd.Flags().BoolVar(&sleepKeep, "keep", false, "Keep the existing entry and discard this one on conflict")
}

func runSleep(cmd *cobra.Command, args []string) error {
	hours, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("hours must be a number 0-24, got %q", args[0])
	}
	if sleepReplace && sleepKeep {
		return fmt.Errorf("--replace and --keep are mutually exclusive")
	}
	if sleepInterrupted && sleepUninterrupted {
		return fmt.Errorf("--interrupted and --uninterrupted are mutually exclusive")
	}

	request := journal.SleepRequest{HoursSlept: hours}
	switch {
	case sleepInterrupted:
		request.Interrupted = journal.InterruptedYes
	case sleepUninterrupted:
		request.Interrupted = journal.InterruptedNo
	default:
		request.Interrupted = journal.InterruptedUnspecified
	}

	if sleepBedtime != "" {
		parsed, err := time.ParseInLocation("15:04", sleepBedtime, time.Local)
		if err != nil {
			return fmt.Errorf("bedtime must be HH:MM, got %q", sleepBedtime)
		}
		now := time.Now()
		bedtime := time.Date(now.Year(), now.Month(), now.Day(), parsed.Hour(), parsed.Minute(), 0, 0, time.Local)
		request.Bedtime = &bedtime
	}

	j, cfg, err := openJournal()
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	out, err := j.ProposeSleep(request)
	if err != nil {
		return err
	}

	if out.Conflict == nil {
		fmt.Printf("%s saved at %s\n", sleepLine(*out.Inserted), out.Inserted.LoggedAt.Local().Format("15:04"))
		return nil
	}

	replace := sleepReplace
	if !replace && !sleepKeep {
		replace = confirmReplace(fmt.Sprintf(
			"%s was already logged at %s (within the last %d hours).",
			sleepLine(*out.Conflict), out.Conflict.LoggedAt.Local().Format("15:04"), cfg.SleepWindowHours))
	}

	if !replace {
		fmt.Printf("Kept existing entry: %s at %s\n",
			sleepLine(*out.Conflict), out.Conflict.LoggedAt.Local().Format("15:04"))
		return nil
	}

	rec, err := j.ReplaceSleep(out.Conflict.ID, request)
	if err != nil {
		return err
	}
	fmt.Printf("Replaced: %s saved at %s\n", sleepLine(*rec), rec.LoggedAt.Local().Format("15:04"))
	return nil
}

// sleepLine renders a one-line description of a sleep record.
func sleepLine(rec journal.SleepRecord) string {
	s := fmt.Sprintf("Sleep %.1fh", rec.HoursSlept)
	switch rec.Interrupted {
	case journal.InterruptedYes:
		s += " (interrupted)"
	case journal.InterruptedNo:
		s += " (uninterrupted)"
	}
	if rec.Bedtime != nil {
		s += fmt.Sprintf(", bedtime %s", rec.Bedtime.Local().Format("15:04"))
	}
	return s
}
