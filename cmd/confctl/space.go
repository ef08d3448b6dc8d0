package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func spaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "space",
		Short: "Manage spaces",
	}
	cmd.AddCommand(spaceListCmd())
	cmd.AddCommand(spaceGetCmd())
	cmd.AddCommand(spaceAddCmd())
	cmd.AddCommand(spaceRemoveCmd())
	return cmd
}

func spaceListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all spaces visible to the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			spaces, err := client.Spaces(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tNAME\tTYPE\tURL")
			for _, s := range spaces {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Key, s.Name, s.Type, s.URL)
			}
			return w.Flush()
		},
	}
}

func spaceGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Show one space",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			space, err := client.GetSpace(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("Key:         %s\n", space.Key)
			fmt.Printf("Name:        %s\n", space.Name)
			fmt.Printf("Description: %s\n", space.Description)
			fmt.Printf("URL:         %s\n", space.URL)
			return nil
		},
	}
}

func spaceAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <key> <name>",
		Short: "Create a space",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			space, err := client.AddSpace(cmd.Context(), args[0], args[1], description)
			if err != nil {
				return err
			}

			fmt.Printf("Created space %s (%s)\n", space.Key, space.URL)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "Space description")
	return cmd
}

func spaceRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <key>",
		Short: "Delete a space and all of its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			if err := client.RemoveSpace(cmd.Context(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Removed space %s\n", args[0])
			return nil
		},
	}
}
