package fleet

import (
	"context"
	"log"

	"github.com/imamik/hhm/internal/config"
	"github.com/imamik/hhm/internal/util/labels"
	"github.com/imamik/hhm/internal/util/naming"
	"github.com/imamik/hhm/internal/util/userdata"
)

// Provisioner creates fleet servers from a configuration.
type Provisioner struct {
	provider    Provider
	cfg         *config.Config
	newIdentity func() string
}

// ProvisionerOption configures a Provisioner.
type ProvisionerOption func(*Provisioner)

// WithIdentityFunc replaces the identity generator.
func WithIdentityFunc(fn func() string) ProvisionerOption {
	return func(p *Provisioner) {
		p.newIdentity = fn
	}
}

// NewProvisioner creates a Provisioner that submits servers to provider.
func NewProvisioner(provider Provider, cfg *config.Config, opts ...ProvisionerOption) *Provisioner {
	p := &Provisioner{
		provider:    provider,
		cfg:         cfg,
		newIdentity: naming.NewIdentity,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Spec builds the server specification for the given identity.
func (p *Provisioner) Spec(identity string) InstanceSpec {
	return InstanceSpec{
		Image:      p.cfg.Image,
		ServerType: p.cfg.InstanceType,
		Location:   p.cfg.Zone,
		SSHKeys:    append([]string(nil), p.cfg.SSHKeys...),
		UserData:   userdata.Render(p.cfg.CloudInit, identity),
		Labels:     labels.Clone(p.cfg.Labels),
	}
}

// Provision creates one server with a fresh identity.
func (p *Provisioner) Provision(ctx context.Context) (Instance, error) {
	identity := p.newIdentity()
	name := naming.Server(p.cfg.Prefix, identity)

	log.Printf("Creating server %s", name)
	inst, err := p.provider.CreateInstance(ctx, p.Spec(identity), name)
	if err != nil {
		return Instance{}, &ProviderError{Op: OpCreate, Target: name, Err: err}
	}
	return inst, nil
}
