// Notification commands for the crm CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "Manage notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		list, err := a.Notifications.List(cmd.Context())
		if err != nil {
			return err
		}
		if flagJSON {
			return printJSON(list)
		}

		unread, err := a.Notifications.UnreadCount(cmd.Context())
		if err != nil {
			return err
		}
		for _, n := range list {
			marker := " "
			if !n.Read {
				marker = "*"
			}
			fmt.Printf("%s %d\t[%s]\t%s — %s (%s)\n", marker, n.ID, n.Type, n.Title, n.Message, n.Time)
		}
		fmt.Printf("%d unread\n", unread)
		return nil
	},
}

var notificationsReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark a notification as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Notifications.MarkRead(cmd.Context(), parseIDArg(args[0])); err != nil {
			fmt.Fprintln(os.Stderr, "notifications read:", err)
			os.Exit(exitUserError)
		}
		return nil
	},
}

var notificationsReadAllCmd = &cobra.Command{
	Use:   "read-all",
	Short: "Mark all notifications as read",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		return a.Notifications.MarkAllRead(cmd.Context())
	},
}

var notificationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a notification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.Notifications.Delete(cmd.Context(), parseIDArg(args[0])); err != nil {
			fmt.Fprintln(os.Stderr, "notifications delete:", err)
			os.Exit(exitUserError)
		}
		return nil
	},
}

func init() {
	notificationsCmd.AddCommand(notificationsListCmd)
	notificationsCmd.AddCommand(notificationsReadCmd)
	notificationsCmd.AddCommand(notificationsReadAllCmd)
	notificationsCmd.AddCommand(notificationsDeleteCmd)
}
