package utils

// Truncate shortens s to at most max runes. Error messages surfaced to
// clients are capped so upstream bodies don't leak wholesale.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
