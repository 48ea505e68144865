package fleet

import (
	"context"
	"fmt"
	"io"

	"github.com/imamik/hhm/internal/config"
)

// SpinOptions holds the collaborators of one reconciliation.
type SpinOptions struct {
	Desired   uint16
	Config    *config.Config
	Provider  Provider
	Confirmer Confirmer
	// Out receives operator-facing messages.
	Out io.Writer
	// Provisioner options, e.g. WithIdentityFunc.
	ProvisionerOptions []ProvisionerOption
}

// Spin reconciles the fleet toward opts.Desired servers.
// The returned plan is valid whenever the snapshot succeeded.
func Spin(ctx context.Context, opts SpinOptions) (Plan, error) {
	managed, err := Snapshot(ctx, opts.Provider, opts.Config.Labels)
	if err != nil {
		return Plan{}, err
	}

	plan := Reconcile(opts.Desired, managed)
	fmt.Fprintln(opts.Out, plan.String())
	if plan.Action == NoOp {
		return plan, nil
	}

	if err := opts.Confirmer.Confirm(); err != nil {
		return plan, err
	}

	switch plan.Action {
	case ScaleUp:
		p := NewProvisioner(opts.Provider, opts.Config, opts.ProvisionerOptions...)
		for i := 0; i < plan.Count; i++ {
			if _, err := p.Provision(ctx); err != nil {
				return plan, err
			}
		}
	case ScaleDown:
		victims, err := SelectVictims(managed, plan.Count)
		if err != nil {
			return plan, err
		}
		d := NewDecommissioner(opts.Provider)
		for _, victim := range victims {
			if err := d.Decommission(ctx, victim); err != nil {
				return plan, err
			}
		}
	}
	return plan, nil
}
