// Package hcloud adapts the Hetzner Cloud API client to the fleet.Provider
// capability used by the reconciler.
//
// # Architecture
//
//   - client.go: RealClient construction and functional options
//   - server.go: list, create and delete of servers
//   - server_helpers.go: server type, image, SSH key and location resolution
//   - errors.go: classification of hcloud API errors
//
// # Timeouts
//
// Each request runs under its own deadline, configurable via environment
// variables (see config.LoadTimeouts):
//
//   - HCLOUD_TIMEOUT_LIST: server listing (default: 1m)
//   - HCLOUD_TIMEOUT_SERVER_CREATE: create request and its action (default: 10m)
//   - HCLOUD_TIMEOUT_DELETE: delete request and its action (default: 5m)
//
// Requests are never retried. A failed call is returned to the caller as is.
//
// # Example Usage
//
//	client := hcloud.NewRealClient(token)
//	servers, err := client.ListInstances(ctx)
package hcloud
