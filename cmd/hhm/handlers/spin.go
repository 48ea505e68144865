package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/imamik/hhm/internal/fleet"
	"github.com/imamik/hhm/internal/util/labels"
)

// Spin handles the spin command.
//
// It loads the configuration, takes one snapshot of the fleet and, after
// the operator confirms, creates or deletes servers until amount remain.
// Declining at the prompt is not an error.
func Spin(ctx context.Context, configPath string, amount uint16, in io.Reader, out io.Writer) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	for _, w := range cfg.Warnings() {
		log.Printf("Warning: %s", w)
	}

	fmt.Fprintf(out, "Spinning to %d instances\n", amount)
	log.Printf("Fleet selector: %s", labels.Selector(cfg.Labels))

	plan, err := fleet.Spin(ctx, fleet.SpinOptions{
		Desired:   amount,
		Config:    cfg,
		Provider:  newFleetClient(cfg.APIKey),
		Confirmer: newConfirmer(in, out),
		Out:       out,
	})
	if errors.Is(err, fleet.ErrDeclined) {
		fmt.Fprintln(out, "Aborted, no changes made")
		return nil
	}
	if err != nil {
		return withHint(err)
	}

	if plan.Action != fleet.NoOp {
		fmt.Fprintf(out, "Fleet now has %d instances\n", amount)
	}
	return nil
}
