package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the dashboard overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		ov, err := a.Stats.Compute(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(ov)
		}

		fmt.Printf("Clients:          %d\n", ov.TotalClients)
		fmt.Printf("Projects:         %d\n", ov.TotalProjects)
		fmt.Printf("  completed:      %d\n", ov.CompletedProjects)
		fmt.Printf("  in progress:    %d\n", ov.InProgressProjects)
		fmt.Printf("  delayed:        %d\n", ov.DelayedProjects)
		fmt.Printf("Pending feedback: %d\n", ov.PendingFeedback)
		fmt.Printf("Total revenue:    $%.2f\n", ov.TotalRevenue)
		return nil
	},
}
