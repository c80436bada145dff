// Feedback commands for the crm CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/accessarch/crm/internal/domain/feedback"
)

var (
	feedbackClient   string
	feedbackProject  string
	feedbackRating   string
	feedbackComments string
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Manage project feedback",
}

var feedbackAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Submit feedback for a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := feedback.Form{
			ClientID:  feedbackClient,
			ProjectID: feedbackProject,
			Rating:    feedbackRating,
			Comments:  feedbackComments,
		}
		req, err := form.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, "feedback add:", err)
			os.Exit(exitUserError)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := a.Feedback.Add(cmd.Context(), req)
		if err != nil {
			os.Exit(exitUserError)
		}
		if flagJSON {
			return printJSON(f)
		}
		return nil
	},
}

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var entries []feedback.Feedback
		if cmd.Flags().Changed("project") {
			projectID, convErr := strconv.Atoi(feedbackProject)
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "invalid project id %q\n", feedbackProject)
				os.Exit(exitUserError)
			}
			entries, err = a.Feedback.ByProject(cmd.Context(), projectID)
		} else {
			entries, err = a.Feedback.List(cmd.Context())
		}
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(entries)
		}
		for _, f := range entries {
			fmt.Printf("%d\t%s\t%s\t%d/5\t%s\n", f.ID, f.ClientName, f.ProjectName, f.Rating, f.Date)
		}
		return nil
	},
}

var feedbackDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a feedback record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Feedback.Delete(cmd.Context(), parseIDArg(args[0])); err != nil {
			os.Exit(exitUserError)
		}
		return nil
	},
}

func init() {
	feedbackAddCmd.Flags().StringVar(&feedbackClient, "client", "", "client id")
	feedbackAddCmd.Flags().StringVar(&feedbackProject, "project", "", "project id")
	feedbackAddCmd.Flags().StringVar(&feedbackRating, "rating", "", "rating (1-5)")
	feedbackAddCmd.Flags().StringVar(&feedbackComments, "comments", "", "feedback comments")
	feedbackListCmd.Flags().StringVar(&feedbackProject, "project", "", "filter by project id")

	feedbackCmd.AddCommand(feedbackAddCmd)
	feedbackCmd.AddCommand(feedbackListCmd)
	feedbackCmd.AddCommand(feedbackDeleteCmd)
}
