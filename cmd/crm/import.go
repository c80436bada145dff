package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the dataset from a JSON export",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()

		if err := a.Import(cmd.Context(), f); err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitUserError)
		}
		fmt.Println("Data imported successfully!")
		return nil
	},
}
