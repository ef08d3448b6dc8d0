package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shhac/confluence/internal/profile"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved connection profiles",
	}
	cmd.AddCommand(profileListCmd())
	cmd.AddCommand(profileSetCmd())
	cmd.AddCommand(profileUseCmd())
	return cmd
}

func profilePath() (string, error) {
	if flagConfig != "" {
		return flagConfig, nil
	}
	return profile.DefaultPath()
}

func profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profilePath()
			if err != nil {
				return err
			}
			file, err := profile.Load(path)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tURL\tUSER")
			for name, p := range file.Profiles {
				marker := ""
				if name == file.Default {
					marker = " (default)"
				}
				fmt.Fprintf(w, "%s%s\t%s\t%s\n", name, marker, p.URL, p.User)
			}
			return w.Flush()
		},
	}
}

func profileSetCmd() *cobra.Command {
	var namespace string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "Create or update a profile from the connection flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagURL == "" {
				return fmt.Errorf("--url is required")
			}

			path, err := profilePath()
			if err != nil {
				return err
			}
			file, err := profile.Load(path)
			if err != nil {
				return err
			}

			file.Profiles[args[0]] = profile.Profile{
				URL:       flagURL,
				User:      flagUser,
				Namespace: namespace,
				Timeout:   profile.Duration(flagTimeout),
			}
			if file.Default == "" {
				file.Default = args[0]
			}

			if err := profile.Save(path, file); err != nil {
				return err
			}
			fmt.Printf("Saved profile %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&namespace, "namespace", "", "RPC API namespace (default confluence2)")
	return cmd
}

func profileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <name>",
		Short: "Make a profile the default",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := profilePath()
			if err != nil {
				return err
			}
			file, err := profile.Load(path)
			if err != nil {
				return err
			}

			if _, ok := file.Profiles[args[0]]; !ok {
				return fmt.Errorf("profile %q not found", args[0])
			}
			file.Default = args[0]

			if err := profile.Save(path, file); err != nil {
				return err
			}
			fmt.Printf("Default profile is now %s\n", args[0])
			return nil
		},
	}
}
