package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Subtotals splits the sum of price*quantity into discountable and
// non-discountable amounts.
func Subtotals(parts []entity.CalculatedItemPart) (eligible, nonEligible decimal.Decimal) {
	for _, p := range parts {
		line := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		if p.DiscountAllowed {
			eligible = eligible.Add(line)
		} else {
			nonEligible = nonEligible.Add(line)
		}
	}
	return eligible, nonEligible
}

// TotalPrice returns quantity * (eligible * (1 - discount/100) + nonEligible),
// rounded up to the cent.
func TotalPrice(parts []entity.CalculatedItemPart, quantity, discount int) decimal.Decimal {
	eligible, nonEligible := Subtotals(parts)
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(discount)).Div(hundred))
	subtotal := eligible.Mul(factor).Add(nonEligible)
	return RoundUpCents(subtotal.Mul(decimal.NewFromInt(int64(quantity))))
}
