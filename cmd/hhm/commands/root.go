// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the hhm CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hhm",
		Short: "Scale a labelled fleet of Hetzner Cloud servers",
		// Errors are printed once by main.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.AddCommand(Spin())
	cmd.AddCommand(List())
	cmd.AddCommand(Version())

	return cmd
}

// addConfigFlag registers the config file flag shared by all fleet commands.
func addConfigFlag(cmd *cobra.Command, configPath *string) {
	cmd.Flags().StringVarP(configPath, "config", "c", "config.toml", "Path to the fleet configuration file (TOML or YAML)")
}
