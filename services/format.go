package services

import (
	"fmt"
	"strings"
)

// FormatRand formats an amount in South African Rand notation with a fixed
// "R " prefix, thousands separators and exactly 2 decimal places, e.g.
// "R 12,345.67". Formatting is the only place amounts are rounded.
func FormatRand(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	result := "R " + groupThousands(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupThousands inserts commas into an integer string every 3 digits
// from the right.
func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}

	result := s[n-3:]
	remaining := s[:n-3]

	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "," + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "," + result
}

// formatQty renders a quantity without trailing zeros (3 → "3", 2.5 → "2.5").
func formatQty(qty float64) string {
	s := fmt.Sprintf("%.2f", qty)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}

// formatMM renders a millimetre dimension, e.g. "1200 mm".
func formatMM(v float64) string {
	return formatQty(v) + " mm"
}
