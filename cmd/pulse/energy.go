package main

import (
	"fmt"
	"strconv"

	"github.com/nvaldez/pulse/internal/journal"
	"github.com/spf13/cobra"
)

var (
	energyReplace bool
	energyKeep    bool
)

var energyCmd = &cobra.Command{
	Use:   "energy <rating>",
	Short: "Log an energy rating (1-5)",
	Args:  cobra.ExactArgs(1),
	RunE:  runEnergy,
}

func init() {
	energyCmd.Flags().BoolVar(&energyReplace, "replace", false, "Replace a conflicting entry logged within the window")
	energyCmd.Flags().BoolVar(&energyKeep, "keep", false, "Keep the existing entry and discard this one on conflict")
}

func runEnergy(cmd *cobra.Command, args []string) error {
	rating, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("rating must be an integer 1-5, got %q", args[0])
	}
	if energyReplace && energyKeep {
		return fmt.Errorf("--replace and --keep are mutually exclusive")
	}

	j, cfg, err := openJournal()
	if err != nil {
		return err
	}
	defer func() { _ = j.Close() }()

	request := journal.EnergyRequest{Rating: rating}

	out, err := j.ProposeEnergy(request)
	if err != nil {
		return err
	}

	if out.Conflict == nil {
		fmt.Printf("Energy %d/5 saved at %s\n", out.Inserted.Rating, out.Inserted.LoggedAt.Local().Format("15:04"))
		return nil
	}

	replace := energyReplace
	if !replace && !energyKeep {
		replace = confirmReplace(fmt.Sprintf(
			"Energy %d/5 was already logged at %s (within the last %d minutes).",
			out.Conflict.Rating, out.Conflict.LoggedAt.Local().Format("15:04"), cfg.EnergyWindowMinutes))
	}

	if !replace {
		fmt.Printf("Kept existing entry: energy %d/5 at %s\n",
			out.Conflict.Rating, out.Conflict.LoggedAt.Local().Format("15:04"))
		return nil
	}

	rec, err := j.ReplaceEnergy(out.Conflict.ID, request)
	if err != nil {
		return err
	}
	fmt.Printf("Replaced: energy %d/5 saved at %s\n", rec.Rating, rec.LoggedAt.Local().Format("15:04"))
	return nil
}
