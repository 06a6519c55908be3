package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses a locale formatted number such as "1 234,5".
// Spaces are dropped and a comma is read as the decimal separator.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")
	return decimal.NewFromString(s)
}
