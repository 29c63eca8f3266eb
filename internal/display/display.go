// Package display provides human-readable words for stored values.
//
// Rule: values are for machines, words are for humans.
// Use these functions in CLI output, tables and spreadsheets. Keep raw
// booleans and integers for JSON fields and comparisons.
package display

import (
	"fmt"
	"strings"
)

// DefaultCurrency is the symbol printed before money amounts.
const DefaultCurrency = "₹"

// Status returns "Occupied" or "Vacant".
func Status(occupied bool) string {
	if occupied {
		return "Occupied"
	}
	return "Vacant"
}

// ParseStatus accepts the words Status produces (any case) plus yes/no.
func ParseStatus(s string) (occupied bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "occupied", "yes", "y", "true":
		return true, nil
	case "vacant", "no", "n", "false":
		return false, nil
	default:
		return false, fmt.Errorf("unknown status %q (want occupied or vacant)", s)
	}
}

// YesNo returns "Yes" for true and "No" for false.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

// Money formats an amount with its currency symbol, e.g. "₹1120".
// Empty currency prints the bare number.
func Money(currency string, amount int) string {
	return fmt.Sprintf("%s%d", currency, amount)
}

// Holder returns the holder name, or "-" when the room has none.
func Holder(name string) string {
	if strings.TrimSpace(name) == "" {
		return "-"
	}
	return name
}
