package pricing

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// DiscountLabel is the short code printed on work orders for a discount
func DiscountLabel(discount int) string {
	switch discount {
	case 0:
		return ""
	case 10:
		return "1"
	case 15:
		return "2"
	case 20:
		return "3"
	}
	return strconv.Itoa(discount) + "%"
}

// DimensionsLabel renders a width and height as "<height>x<width> cm"
func DimensionsLabel(width, height float64) string {
	return fmt.Sprintf("%sx%s cm", strconv.FormatFloat(height, 'f', -1, 64), strconv.FormatFloat(width, 'f', -1, 64))
}

// PriceString renders the price of an entry for listings, e.g. "12.50€ / m2".
// Bracket formulas render the cheapest and dearest bracket.
func PriceString(entry *entity.ListPrice) string {
	var prices []decimal.Decimal
	switch entry.Formula {
	case enum.PricingFormulaFitArea:
		for _, a := range entry.Areas {
			prices = append(prices, a.Price)
		}
	case enum.PricingFormulaFitAreaM2:
		for _, a := range entry.AreasM2 {
			prices = append(prices, a.Price)
		}
	default:
		return entry.Price.StringFixed(2) + "€" + entry.Formula.Suffix()
	}
	if len(prices) == 0 {
		return ""
	}
	return decimal.Min(prices[0], prices[1:]...).StringFixed(2) + "€ - " +
		decimal.Max(prices[0], prices[1:]...).StringFixed(2) + "€"
}
