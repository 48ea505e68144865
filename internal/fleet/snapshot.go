package fleet

import (
	"context"

	"github.com/imamik/hhm/internal/util/labels"
)

// Snapshot lists all servers once and returns those matching required,
// preserving the provider's listing order.
func Snapshot(ctx context.Context, p Provider, required map[string]string) ([]Instance, error) {
	all, err := p.ListInstances(ctx)
	if err != nil {
		return nil, &ProviderError{Op: OpList, Err: err}
	}

	managed := make([]Instance, 0, len(all))
	for _, inst := range all {
		if labels.Matches(inst.Labels, required) {
			managed = append(managed, inst)
		}
	}
	return managed, nil
}
