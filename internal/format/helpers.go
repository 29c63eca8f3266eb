package format

import "strings"

// Truncate shortens s to maxLen runes, appending "..." if truncated.
func Truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Reminders joins reminders for a single table cell.
func Reminders(rs []string) string {
	return strings.Join(rs, "; ")
}
