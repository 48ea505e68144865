package config

import (
	"errors"
	"fmt"

	"github.com/imamik/hhm/internal/util/userdata"
)

// Config is the desired configuration of a fleet.
type Config struct {
	// Prefix is the naming base; servers are named {prefix}-{identity}.
	Prefix string `yaml:"prefix" toml:"prefix"`
	// APIKey is the Hetzner Cloud API token. Falls back to HCLOUD_TOKEN.
	APIKey string `yaml:"api_key" toml:"api_key"`
	// SSHKeys are names or IDs of SSH keys already registered in the project.
	SSHKeys []string `yaml:"ssh_keys" toml:"ssh_keys"`

	Image        string `yaml:"image" toml:"image"`
	InstanceType string `yaml:"instance_type" toml:"instance_type"`
	Zone         string `yaml:"zone" toml:"zone"`

	// CloudInit is the user data template. Every occurrence of
	// userdata.Placeholder is replaced with the server identity.
	CloudInit string `yaml:"cloud_init" toml:"cloud_init"`

	// Labels define fleet membership and are attached to every new server.
	Labels map[string]string `yaml:"labels" toml:"labels"`
}

// Error reports a missing or malformed configuration.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}
	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Validate checks the configuration for missing required fields.
func (c *Config) Validate() error {
	var errs []error

	if c.Prefix == "" {
		errs = append(errs, fmt.Errorf("prefix is required"))
	}
	if c.APIKey == "" {
		errs = append(errs, fmt.Errorf("api_key is required (or set HCLOUD_TOKEN)"))
	}
	if c.Image == "" {
		errs = append(errs, fmt.Errorf("image is required"))
	}
	if c.InstanceType == "" {
		errs = append(errs, fmt.Errorf("instance_type is required"))
	}
	// Without labels every server in the project would be treated as managed.
	if len(c.Labels) == 0 {
		errs = append(errs, fmt.Errorf("labels must contain at least one entry"))
	}
	for k := range c.Labels {
		if k == "" {
			errs = append(errs, fmt.Errorf("labels must not contain an empty key"))
			break
		}
	}

	if len(errs) > 0 {
		return &Error{Err: errors.Join(errs...)}
	}
	return nil
}

// Warnings returns non-fatal observations about the configuration.
func (c *Config) Warnings() []string {
	var warnings []string
	if c.CloudInit != "" && userdata.Count(c.CloudInit) == 0 {
		warnings = append(warnings, fmt.Sprintf("cloud_init does not reference %s; all servers receive identical user data", userdata.Placeholder))
	}
	if len(c.SSHKeys) == 0 {
		warnings = append(warnings, "no ssh_keys configured; Hetzner will email a root password for every new server")
	}
	return warnings
}
