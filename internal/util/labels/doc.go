// Package labels provides label-set helpers for Hetzner Cloud servers.
//
// A fleet is defined by a required label set: a server belongs to the fleet
// when it carries every required key with the same value. Additional labels
// on the server never disqualify it.
package labels
