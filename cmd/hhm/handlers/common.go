// Package handlers implements the execution logic behind each CLI command.
package handlers

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/imamik/hhm/internal/config"
	"github.com/imamik/hhm/internal/fleet"
	"github.com/imamik/hhm/internal/platform/hcloud"
)

// Factory function variables - can be replaced in tests.
var (
	// loadConfig loads and validates the fleet configuration.
	loadConfig = config.Load

	// newFleetClient creates the cloud provider client.
	newFleetClient = func(token string) fleet.Provider {
		return hcloud.NewRealClient(token)
	}

	// newConfirmer creates the operator confirmation gate.
	newConfirmer = func(in io.Reader, out io.Writer) fleet.Confirmer {
		return &fleet.LineConfirmer{In: in, Out: out}
	}
)

// isInteractiveTTY reports whether out is a terminal.
func isInteractiveTTY(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// withHint appends operator guidance for well-known API failures.
func withHint(err error) error {
	if hint := hcloud.Hint(err); hint != "" {
		return fmt.Errorf("%w (%s)", err, hint)
	}
	return err
}
