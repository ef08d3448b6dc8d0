package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}
	cmd.AddCommand(userGetCmd())
	cmd.AddCommand(userAddCmd())
	cmd.AddCommand(userRemoveCmd())
	return cmd
}

func userGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Show one user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := client.GetUser(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Name:      %s\n", user.Name)
			fmt.Printf("Full name: %s\n", user.FullName)
			fmt.Printf("Email:     %s\n", user.Email)
			fmt.Printf("URL:       %s\n", user.URL)
			return nil
		},
	}
}

func userAddCmd() *cobra.Command {
	var (
		fullName string
		email    string
		password string
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a user account",
		Long: `Create a user account. Without --password the account gets a random
generated password; reset it through the server before handing the account
over.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			user, err := client.AddUser(cmd.Context(), args[0], fullName, email, password)
			if err != nil {
				return err
			}

			fmt.Printf("Created user %s (%s)\n", user.Name, user.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&fullName, "full-name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	cmd.Flags().StringVar(&password, "password", "", "Initial password (generated when omitted)")
	return cmd
}

func userRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := client.RemoveUser(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed user %s\n", args[0])
			return nil
		},
	}
}
