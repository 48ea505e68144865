package labels

import (
	"maps"
	"slices"
	"strings"
)

// Matches reports whether every key in required is present in candidate with
// an identical value. An empty requirement matches any label set.
func Matches(candidate, required map[string]string) bool {
	for k, want := range required {
		got, ok := candidate[k]
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Selector converts a label set to a Hetzner Cloud label selector string.
// Keys are sorted so the result is stable across calls.
func Selector(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(labels))
	for _, k := range slices.Sorted(maps.Keys(labels)) {
		pairs = append(pairs, k+"="+labels[k])
	}
	return strings.Join(pairs, ",")
}

// Clone returns a copy of the label set.
// A nil input yields an empty, non-nil map.
func Clone(labels map[string]string) map[string]string {
	result := make(map[string]string, len(labels))
	maps.Copy(result, labels)
	return result
}
