// ABOUTME: List/string coercion helpers backing tag and credit fields
// ABOUTME: Splits separator-delimited input and de-duplicates preserving order

package strutil

import "strings"

// SplitUnique splits each value on sep, trims whitespace, and returns the
// distinct non-empty entries in first-seen order. Callers may pass a slice
// of single entries, one separator-delimited string, or a mix.
func SplitUnique(sep string, values ...string) []string {
	seen := make(map[string]struct{})
	var out []string

	for _, value := range values {
		for _, part := range strings.Split(value, sep) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, ok := seen[part]; ok {
				continue
			}
			seen[part] = struct{}{}
			out = append(out, part)
		}
	}

	return out
}

// JoinUnique is SplitUnique re-joined with the same separator.
func JoinUnique(sep string, values ...string) string {
	return strings.Join(SplitUnique(sep, values...), sep)
}
