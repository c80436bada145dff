package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full dataset as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if exportOut == "" {
			return a.Export(os.Stdout)
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()

		if err := a.Export(f); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "exported to %s\n", exportOut)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to file instead of stdout")
}
