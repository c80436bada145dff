package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show the recent activity feed",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		entries, err := a.Activities.Recent(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(entries)
		}

		for _, e := range entries {
			fmt.Printf("%d\t%s\t%s (%s)\n", e.ID, e.Action, e.Details, e.Time)
		}
		return nil
	},
}
