package naming

import (
	"fmt"
	"math/rand/v2"
)

// IdentityAlphabet is the set of symbols an identity is drawn from.
const IdentityAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// IdentityLength is the number of symbols in an identity.
const IdentityLength = 8

// NewIdentity returns a fresh identity drawn from the global random source.
// Identities are a naming aid and are not checked for uniqueness.
func NewIdentity() string {
	return newIdentity(rand.IntN)
}

// NewIdentityFrom returns an identity drawn from r.
func NewIdentityFrom(r *rand.Rand) string {
	return newIdentity(r.IntN)
}

func newIdentity(intN func(int) int) string {
	b := make([]byte, IdentityLength)
	for i := range b {
		b[i] = IdentityAlphabet[intN(len(IdentityAlphabet))]
	}
	return string(b)
}

// Server returns the name of a fleet server.
func Server(prefix, identity string) string {
	return fmt.Sprintf("%s-%s", prefix, identity)
}
