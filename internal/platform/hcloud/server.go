package hcloud

import (
	"context"
	"fmt"

	"github.com/hetznercloud/hcloud-go/v2/hcloud"

	"github.com/imamik/hhm/internal/fleet"
)

// ListInstances returns every server in the project in API listing order.
func (c *RealClient) ListInstances(ctx context.Context) ([]fleet.Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.List)
	defer cancel()

	servers, err := c.client.Server.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list servers: %w", err)
	}

	instances := make([]fleet.Instance, 0, len(servers))
	for _, s := range servers {
		instances = append(instances, toInstance(s))
	}
	return instances, nil
}

// CreateInstance creates a server and waits for its create action.
func (c *RealClient) CreateInstance(ctx context.Context, spec fleet.InstanceSpec, name string) (fleet.Instance, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.ServerCreate)
	defer cancel()

	opts, err := c.buildServerCreateOpts(ctx, spec, name)
	if err != nil {
		return fleet.Instance{}, err
	}

	result, _, err := c.client.Server.Create(ctx, opts)
	if err != nil {
		return fleet.Instance{}, fmt.Errorf("failed to create server: %w", err)
	}

	if result.Action != nil {
		if err := c.client.Action.WaitFor(ctx, result.Action); err != nil {
			return fleet.Instance{}, fmt.Errorf("failed to wait for server creation: %w", err)
		}
	}

	return toInstance(result.Server), nil
}

// DeleteInstance deletes the server with the given ID and waits for the delete action.
func (c *RealClient) DeleteInstance(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeouts.Delete)
	defer cancel()

	result, _, err := c.client.Server.DeleteWithResult(ctx, &hcloud.Server{ID: id})
	if err != nil {
		return fmt.Errorf("failed to delete server: %w", err)
	}

	if result != nil && result.Action != nil {
		if err := c.client.Action.WaitFor(ctx, result.Action); err != nil {
			return fmt.Errorf("failed to wait for server deletion: %w", err)
		}
	}
	return nil
}
