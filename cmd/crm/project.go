// Project commands for the crm CLI.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/accessarch/crm/internal/domain/project"
)

var (
	projectName        string
	projectClient      string
	projectDueDate     string
	projectStatus      string
	projectProgress    string
	projectBudget      string
	projectDescription string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project for a client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := project.Form{
			Name:        projectName,
			ClientID:    projectClient,
			DueDate:     projectDueDate,
			Status:      projectStatus,
			Progress:    projectProgress,
			Budget:      projectBudget,
			Description: projectDescription,
		}
		req, err := form.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, "project add:", err)
			os.Exit(exitUserError)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Projects.Add(cmd.Context(), req)
		if err != nil {
			os.Exit(exitUserError)
		}
		if flagJSON {
			return printJSON(p)
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var (
			projects []project.Project
		)
		if cmd.Flags().Changed("client") {
			clientID, convErr := strconv.Atoi(projectClient)
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "invalid client id %q\n", projectClient)
				os.Exit(exitUserError)
			}
			projects, err = a.Projects.ByClient(cmd.Context(), clientID)
		} else {
			projects, err = a.Projects.List(cmd.Context())
		}
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(projects)
		}
		for _, p := range projects {
			fmt.Printf("%d\t%s\t%s\t%s\t%d%%\t$%.0f\n", p.ID, p.Name, p.ClientName, p.Status, p.Progress, p.Budget)
		}
		return nil
	},
}

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Projects.Get(cmd.Context(), parseIDArg(args[0]))
		if err != nil {
			fmt.Fprintln(os.Stderr, "project show:", err)
			os.Exit(exitUserError)
		}
		return printJSON(p)
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req project.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &projectName
		}
		if cmd.Flags().Changed("due-date") {
			req.DueDate = &projectDueDate
		}
		if cmd.Flags().Changed("status") {
			status := project.Status(projectStatus)
			req.Status = &status
		}
		if cmd.Flags().Changed("progress") {
			progress, convErr := strconv.Atoi(projectProgress)
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "invalid progress %q\n", projectProgress)
				os.Exit(exitUserError)
			}
			req.Progress = &progress
		}
		if cmd.Flags().Changed("budget") {
			budget, convErr := strconv.ParseFloat(projectBudget, 64)
			if convErr != nil {
				fmt.Fprintf(os.Stderr, "invalid budget %q\n", projectBudget)
				os.Exit(exitUserError)
			}
			req.Budget = &budget
		}
		if cmd.Flags().Changed("description") {
			req.Description = &projectDescription
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		p, err := a.Projects.Update(cmd.Context(), parseIDArg(args[0]), req)
		if err != nil {
			os.Exit(exitUserError)
		}
		if flagJSON {
			return printJSON(p)
		}
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Projects.Delete(cmd.Context(), parseIDArg(args[0])); err != nil {
			os.Exit(exitUserError)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{projectAddCmd, projectUpdateCmd} {
		c.Flags().StringVar(&projectName, "name", "", "project name")
		c.Flags().StringVar(&projectDueDate, "due-date", "", "due date (YYYY-MM-DD)")
		c.Flags().StringVar(&projectStatus, "status", "", "status (planning|in-progress|delayed|completed|on-hold)")
		c.Flags().StringVar(&projectProgress, "progress", "", "progress percentage (0-100)")
		c.Flags().StringVar(&projectBudget, "budget", "", "project budget")
		c.Flags().StringVar(&projectDescription, "description", "", "project description")
	}
	projectAddCmd.Flags().StringVar(&projectClient, "client", "", "owning client id")
	projectListCmd.Flags().StringVar(&projectClient, "client", "", "filter by client id")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectShowCmd)
	projectCmd.AddCommand(projectUpdateCmd)
	projectCmd.AddCommand(projectDeleteCmd)
}
