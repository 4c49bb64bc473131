// Package nbt normalizes the semi-structured SNBT fragments found in the
// spreadsheet (quote-escaped, loosely cased) and extracts balanced-brace
// sub-objects from them, most notably per-slot equipment entries.
package nbt

// ScanBalanced returns the content strictly between the delimiter at
// s[start] and its depth-matching counterpart, accounting for nesting.
// ok is false when s[start] is not the opener or the string ends before
// the depth returns to zero.
func ScanBalanced(s string, start int, opener, closer byte) (string, bool) {
	if start < 0 || start >= len(s) || s[start] != opener {
		return "", false
	}
	depth := 1
	for i := start + 1; i < len(s); i++ {
		switch s[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return s[start+1 : i], true
			}
		}
	}
	return "", false
}
