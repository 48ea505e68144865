package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/imamik/hhm/internal/fleet"
	"github.com/imamik/hhm/internal/util/labels"
)

// List handles the list command.
//
// It prints the managed servers without modifying anything. Output is a
// styled table on a terminal, a plain table otherwise, or JSON.
func List(ctx context.Context, configPath string, jsonOutput bool, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	managed, err := fleet.Snapshot(ctx, newFleetClient(cfg.APIKey), cfg.Labels)
	if err != nil {
		return withHint(err)
	}

	if jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(managed)
	}

	if len(managed) == 0 {
		fmt.Fprintf(out, "No servers match %s\n", labels.Selector(cfg.Labels))
		return nil
	}

	fmt.Fprintln(out, renderInstanceTable(managed, isInteractiveTTY(out)))
	return nil
}
