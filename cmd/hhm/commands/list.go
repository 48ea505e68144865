package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hhm/cmd/hhm/handlers"
)

// List returns the list command.
func List() *cobra.Command {
	var (
		configPath string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List servers",
		Long: `List prints the name, public IPv4, ID and status of every server
carrying the configured labels. Nothing is modified.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.List(cmd.Context(), configPath, jsonOutput, cmd.OutOrStdout())
		},
	}

	addConfigFlag(cmd, &configPath)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}
