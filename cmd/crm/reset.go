package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the persisted snapshot and empty the store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Reset(cmd.Context()); err != nil {
			return err
		}
		fmt.Println("All data has been reset!")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm the reset")
}
