// Package substitute replaces {{KEY}} placeholders in template text.
//
// Matching is literal and case-sensitive: the key between the braces must
// equal a mapping key exactly, with no trimming. Placeholders without a
// mapping entry are left in the output verbatim so partially configured
// templates stay readable.
package substitute

import (
	"sort"
	"strings"
)

// Placeholder returns the placeholder text for key, e.g. "{{PROJECT_NAME}}".
func Placeholder(key string) string {
	return "{{" + key + "}}"
}

// Replace returns template with every occurrence of each known placeholder
// replaced by its value. The scan is a single left-to-right pass, so
// substituted values are never re-expanded.
func Replace(template string, vars map[string]string) string {
	if template == "" || len(vars) == 0 {
		return template
	}

	// Sorted keys keep the result independent of map iteration order when
	// two placeholders could match at the same offset.
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, Placeholder(k), vars[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
