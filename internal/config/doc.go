// Package config loads the fleet configuration.
//
// A configuration describes one fleet: the server name prefix, the image,
// server type and location new servers are created with, the SSH keys
// and cloud-init template they boot with, and the label set that defines
// fleet membership. It is read once per invocation from a YAML or TOML
// file and treated as immutable afterwards.
package config
