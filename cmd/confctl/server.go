package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server version and base URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, cleanup, err := newClient(cmd.Context())
			if err != nil {
				return err
			}
			defer cleanup()

			info, err := client.ServerInfo(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Version:  %d.%d.%d (build %s)\n",
				info.MajorVersion, info.MinorVersion, info.PatchLevel, info.BuildID)
			fmt.Printf("Base URL: %s\n", info.BaseURL)
			return nil
		},
	}
}

func methodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the RPC operations the endpoint exposes",
		Long: `List the RPC operations the endpoint exposes, via standard XML-RPC
introspection. This needs no login.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newAnonymousClient()
			if err != nil {
				return err
			}
			defer client.Close()

			methods, err := client.Methods(cmd.Context())
			if err != nil {
				return err
			}

			for _, m := range methods {
				fmt.Println(m)
			}
			return nil
		},
	}
}
