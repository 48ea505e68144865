package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/imamik/hhm/cmd/hhm/handlers"
)

// Spin returns the spin command.
//
// The spin command reconciles the fleet to the requested number of servers.
// It creates servers with fresh identities or deletes the first servers in
// listing order, after the operator confirms the plan.
func Spin() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "spin <amount>",
		Short: "Spin up/down to the specified number of instances",
		Long: `Spin creates or deletes servers until exactly <amount> servers carry the
configured labels.

New servers are named {prefix}-{id}, where id is a random 8 character
token that also replaces every %HHM_ID% in the cloud_init template.
When scaling down, the first servers in API listing order are deleted.

The planned change is printed and nothing is modified until you press enter.
Answer "n" to abort.

Example:
  hhm spin 5 -c config.toml

WARNING: Deleted servers and their disks cannot be recovered.`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return fmt.Errorf("accepts 1 arg, received %d", len(args))
			}
			_, err := parseAmount(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			return handlers.Spin(cmd.Context(), configPath, amount, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addConfigFlag(cmd, &configPath)

	return cmd
}

// parseAmount parses a server count in the range 0..65535.
func parseAmount(s string) (uint16, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: must be a whole number between 0 and 65535", s)
	}
	return uint16(n), nil
}
