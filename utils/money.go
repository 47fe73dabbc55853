package utils

import (
	"fmt"
	"math"
	"strings"
)

// Round2 rounds to cents. All monetary computation goes through this so
// persisted values never carry float residue past two decimals.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatUSD formats an amount as a dollar string with thousands separators.
// Example: 1535.5 -> "$1,535.50"
func FormatUSD(amount float64) string {
	formatted := fmt.Sprintf("%.2f", Round2(amount))

	sign := ""
	if strings.HasPrefix(formatted, "-") {
		sign = "-"
		formatted = formatted[1:]
	}

	parts := strings.Split(formatted, ".")
	integerPart := parts[0]
	decimalPart := parts[1]

	var groups []string
	for i := len(integerPart); i > 0; i -= 3 {
		start := i - 3
		if start < 0 {
			start = 0
		}
		groups = append([]string{integerPart[start:i]}, groups...)
	}

	return sign + "$" + strings.Join(groups, ",") + "." + decimalPart
}
