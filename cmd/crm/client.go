// Client commands for the crm CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/accessarch/crm/internal/domain/client"
)

var (
	clientName    string
	clientEmail   string
	clientCompany string
	clientPhone   string
	clientStatus  string
)

var clientCmd = &cobra.Command{
	Use:   "client",
	Short: "Manage clients",
}

var clientAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a client",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		form := client.Form{
			Name:    clientName,
			Email:   clientEmail,
			Company: clientCompany,
			Phone:   clientPhone,
			Status:  clientStatus,
		}
		req, err := form.Parse()
		if err != nil {
			fmt.Fprintln(os.Stderr, "client add:", err)
			os.Exit(exitUserError)
		}

		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.Clients.Add(cmd.Context(), req)
		if err != nil {
			os.Exit(exitUserError)
		}
		if flagJSON {
			return printJSON(c)
		}
		return nil
	},
}

var clientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clients",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		clients, err := a.Clients.List(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(clients)
		}
		for _, c := range clients {
			fmt.Printf("%d\t%s\t%s\t%s\t%d projects\n", c.ID, c.Name, c.Company, c.Status, c.Projects)
		}
		return nil
	},
}

var clientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		c, err := a.Clients.Get(cmd.Context(), parseIDArg(args[0]))
		if err != nil {
			fmt.Fprintln(os.Stderr, "client show:", err)
			os.Exit(exitUserError)
		}
		return printJSON(c)
	},
}

var clientUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a client",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		var req client.UpdateRequest
		if cmd.Flags().Changed("name") {
			req.Name = &clientName
		}
		if cmd.Flags().Changed("email") {
			req.Email = &clientEmail
		}
		if cmd.Flags().Changed("company") {
			req.Company = &clientCompany
		}
		if cmd.Flags().Changed("phone") {
			req.Phone = &clientPhone
		}
		if cmd.Flags().Changed("status") {
			status := client.Status(clientStatus)
			req.Status = &status
		}

		c, err := a.Clients.Update(cmd.Context(), parseIDArg(args[0]), req)
		if err != nil {
			os.Exit(exitUserError)
		}
		if flagJSON {
			return printJSON(c)
		}
		return nil
	},
}

var clientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a client and its projects",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Clients.Delete(cmd.Context(), parseIDArg(args[0])); err != nil {
			os.Exit(exitUserError)
		}
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{clientAddCmd, clientUpdateCmd} {
		c.Flags().StringVar(&clientName, "name", "", "client name")
		c.Flags().StringVar(&clientEmail, "email", "", "contact email")
		c.Flags().StringVar(&clientCompany, "company", "", "company name")
		c.Flags().StringVar(&clientPhone, "phone", "", "contact phone")
		c.Flags().StringVar(&clientStatus, "status", "", "status (active|pending|inactive)")
	}

	clientCmd.AddCommand(clientAddCmd)
	clientCmd.AddCommand(clientListCmd)
	clientCmd.AddCommand(clientShowCmd)
	clientCmd.AddCommand(clientUpdateCmd)
	clientCmd.AddCommand(clientDeleteCmd)
}
