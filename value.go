package consts

import (
	"regexp"
	"strings"
)

// refMarker is the cheap containment probe run before the regexp scan.
const refMarker = "var("

// refPattern matches var(--NAME) references. The name is any run of
// characters up to the closing parenthesis; an unterminated reference
// simply fails to match and passes through unchanged.
var refPattern = regexp.MustCompile(`var\(--([^)]*)\)`)

// Substitute replaces every var(--NAME) reference in value whose NAME is a
// key of table with the table's value for it. References to unknown names
// are kept verbatim. The replacement text is not re-scanned, so resolution
// depth is bounded by how many times Substitute runs over a value, not by
// recursion.
func Substitute(value string, table Table) string {
	if !strings.Contains(value, refMarker) {
		return value
	}
	return refPattern.ReplaceAllStringFunc(value, func(ref string) string {
		name := ref[len("var(--") : len(ref)-1]
		if resolved, ok := table[name]; ok {
			return resolved
		}
		return ref
	})
}
