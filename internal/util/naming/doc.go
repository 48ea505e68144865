// Package naming provides consistent naming functions for fleet servers.
//
// Servers are named {prefix}-{identity} where identity is an 8 character
// random token from [a-z0-9]. The same identity is embedded into the
// server's user data so the machine can discover its own name at boot.
package naming
