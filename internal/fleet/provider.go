package fleet

import (
	"context"
	"fmt"
)

// Provider is the cloud capability the reconciler depends on.
type Provider interface {
	// ListInstances returns every server visible to the credential,
	// in the provider's listing order.
	ListInstances(ctx context.Context) ([]Instance, error)
	// CreateInstance creates a server and waits for the create action.
	CreateInstance(ctx context.Context, spec InstanceSpec, name string) (Instance, error)
	// DeleteInstance deletes the server with the given ID and waits for the delete action.
	DeleteInstance(ctx context.Context, id int64) error
}

// Provider operations named in a ProviderError.
const (
	OpList   = "list"
	OpCreate = "create"
	OpDelete = "delete"
)

// ProviderError reports a failed provider call.
type ProviderError struct {
	Op     string
	Target string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("failed to %s servers: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s server %s: %v", e.Op, e.Target, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }
