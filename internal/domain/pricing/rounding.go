package pricing

import "github.com/shopspring/decimal"

var (
	cmPerM     = decimal.NewFromInt(100)
	cm2PerM2   = decimal.NewFromInt(10000)
	leftoverX  = decimal.NewFromInt(5)
	leftoverPl = decimal.NewFromInt(2)
)

// RoundUpCents rounds x up to the next cent. Prices are never rounded down.
func RoundUpCents(x decimal.Decimal) decimal.Decimal {
	return x.RoundCeil(2)
}

// AreaM2 returns the size's area in square metres
func AreaM2(s Size) decimal.Decimal {
	return decimal.NewFromInt(int64(s.Area())).Div(cm2PerM2)
}

// PerimeterM returns the size's perimeter in metres
func PerimeterM(s Size) decimal.Decimal {
	return decimal.NewFromInt(int64(2 * (s.D1 + s.D2))).Div(cmPerM)
}
