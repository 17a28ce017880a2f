package format

// Truncate shortens s to at most maxLen characters, replacing the tail
// with "..." when it is cut. Keeps very long inputs from blowing up
// table columns.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
