// Package userdata renders cloud-init user data for fleet servers.
package userdata

import "strings"

// Placeholder is replaced with the server identity when user data is rendered.
const Placeholder = "%HHM_ID%"

// Render substitutes every Placeholder in template with identity.
// Templates that never reference the placeholder are returned unchanged.
func Render(template, identity string) string {
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, Placeholder, identity)
}

// Count returns how many placeholders template contains.
func Count(template string) int {
	return strings.Count(template, Placeholder)
}
