// Package format renders money amounts for people.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	return withSign(amount, "$"+formatPositive(decimal.NewFromFloat(amount).Abs(), 2))
}

// WholeCurrency returns a currency string rounded to whole dollars (e.g., "$1,249").
func WholeCurrency(amount float64) string {
	return withSign(amount, "$"+formatPositive(decimal.NewFromFloat(amount).Abs(), 0))
}

func withSign(amount float64, formatted string) string {
	if amount < 0 && strings.Trim(formatted, "$0.,") != "" {
		return "-" + formatted
	}
	return formatted
}

func formatPositive(value decimal.Decimal, places int32) string {
	formatted := value.StringFixed(places)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	if len(parts) == 2 {
		return intPart + "." + parts[1]
	}
	return intPart
}
