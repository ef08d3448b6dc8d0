package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func groupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "Manage groups",
	}
	cmd.AddCommand(groupListCmd())
	cmd.AddCommand(groupGetCmd())
	cmd.AddCommand(groupAddCmd())
	cmd.AddCommand(groupRemoveCmd())
	return cmd
}

func groupListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			groups, err := client.Groups(cmd.Context())
			if err != nil {
				return err
			}

			for _, g := range groups {
				fmt.Println(g.Name)
			}
			return nil
		},
	}
}

func groupGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <name>",
		Short: "Check that a group exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			group, err := client.GetGroup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(group.Name)
			return nil
		},
	}
}

func groupAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>",
		Short: "Create a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			group, err := client.AddGroup(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Created group %s\n", group.Name)
			return nil
		},
	}
}

func groupRemoveCmd() *cobra.Command {
	var defaultGroup string

	cmd := &cobra.Command{
		Use:   "rm <name>",
		Short: "Delete a group",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := client.RemoveGroup(cmd.Context(), args[0], defaultGroup); err != nil {
				return err
			}

			fmt.Printf("Removed group %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&defaultGroup, "default-group", "", "Move members to this group instead of dropping them")
	return cmd
}
