package main

import (
	"time"

	"github.com/spf13/cobra"
)

var (
	flagConfig  string
	flagProfile string
	flagURL     string
	flagUser    string
	flagTimeout time.Duration
	flagDebug   bool
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "confctl",
		Short: "confctl administers a Confluence-style wiki over its RPC API",
		Long: `confctl manages spaces, users, and groups on a Confluence-style wiki
server through its XML-RPC administration API.

The server and login come from flags, the CONFCTL_URL / CONFCTL_USER /
CONFCTL_PASSWORD environment variables, or a profile file
(~/.config/confctl/config.yaml). The password is prompted interactively
when not provided. Sessions are never persisted; every run logs in fresh.`,
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the profile file (default ~/.config/confctl/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Named profile to use")
	rootCmd.PersistentFlags().StringVar(&flagURL, "url", "", "Server base URL (overrides the profile)")
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "Login name (overrides the profile)")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 0, "Connection timeout (default 15s)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	// subcommands
	rootCmd.AddCommand(spaceCmd())
	rootCmd.AddCommand(userCmd())
	rootCmd.AddCommand(groupCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(methodsCmd())
	rootCmd.AddCommand(profileCmd())

	return rootCmd
}
