package nbt

import (
	"regexp"
	"strings"
)

// countRe matches a Count key with a bare integer, with or without the
// byte suffix already present.
var countRe = regexp.MustCompile(`Count:(\d+)b?`)

// Normalize undoes one layer of spreadsheet quote-escaping and canonicalizes
// the informal SNBT the sheet authors write:
//
//   - doubled quotes collapse to single quotes,
//   - a lowercase "count:" key becomes "Count:",
//   - a bare integer after "Count:" gains the "b" byte suffix,
//   - an outer "equipment:{...}" envelope is stripped to its content.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, `""`, `"`)
	s = strings.ReplaceAll(s, "count:", "Count:")
	s = countRe.ReplaceAllString(s, "Count:${1}b")

	trimmed := strings.TrimSpace(s)
	if strings.HasPrefix(trimmed, "equipment:{") {
		inner, ok := ScanBalanced(trimmed, len("equipment:"), '{', '}')
		// Only strip when the envelope spans the entire string.
		if ok && len("equipment:{")+len(inner)+1 == len(trimmed) {
			return inner
		}
	}
	return s
}
