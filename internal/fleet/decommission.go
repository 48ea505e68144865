package fleet

import (
	"context"
	"fmt"
	"log"
)

// SelectVictims returns the first n managed servers in listing order.
func SelectVictims(managed []Instance, n int) ([]Instance, error) {
	if n < 0 || n > len(managed) {
		return nil, fmt.Errorf("cannot select %d of %d managed servers", n, len(managed))
	}
	return managed[:n:n], nil
}

// Decommissioner deletes fleet servers.
type Decommissioner struct {
	provider Provider
}

// NewDecommissioner creates a Decommissioner that deletes through provider.
func NewDecommissioner(provider Provider) *Decommissioner {
	return &Decommissioner{provider: provider}
}

// Decommission deletes one server by its provider ID.
func (d *Decommissioner) Decommission(ctx context.Context, victim Instance) error {
	log.Printf("Deleting server %s", victim.Name)
	if err := d.provider.DeleteInstance(ctx, victim.ID); err != nil {
		return &ProviderError{Op: OpDelete, Target: fmt.Sprintf("%s (id %d)", victim.Name, victim.ID), Err: err}
	}
	return nil
}
