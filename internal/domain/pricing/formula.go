package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// DefaultIVA is the VAT multiplier used by the leftover formula
var DefaultIVA = decimal.RequireFromString("1.21")

// Engine evaluates prices for list price entries
type Engine struct {
	iva decimal.Decimal
}

// NewEngine creates a pricing engine using the given VAT multiplier
func NewEngine(iva decimal.Decimal) *Engine {
	if iva.IsZero() {
		iva = DefaultIVA
	}
	return &Engine{iva: iva}
}

// IVA returns the VAT multiplier of the engine
func (e *Engine) IVA() decimal.Decimal {
	return e.iva
}

// Price validates s against the entry bounds and prices it according to
// the entry type. MOLD callers pass total dimensions, everyone else passes
// working dimensions. The result honours the entry's minimum price.
func (e *Engine) Price(entry *entity.ListPrice, s Size) (decimal.Decimal, error) {
	if err := CheckBounds(entry, s); err != nil {
		return decimal.Zero, err
	}

	var (
		price decimal.Decimal
		err   error
	)
	switch entry.Type {
	case enum.PricingTypeMold:
		price = MoldPrice(entry.Price, s)
	case enum.PricingTypeFabric:
		price = FabricPrice(entry, s)
	case enum.PricingTypeGlass, enum.PricingTypeBack, enum.PricingTypePP,
		enum.PricingTypeLabour, enum.PricingTypeOther:
		price, err = e.Evaluate(entry, s)
	default:
		return decimal.Zero, &InvalidTypeError{Type: entry.Type}
	}
	if err != nil {
		return decimal.Zero, err
	}

	if entry.MinPrice.IsPositive() && price.LessThan(entry.MinPrice) {
		price = entry.MinPrice
	}
	return price, nil
}

// Evaluate applies the entry's formula to a canonical size
func (e *Engine) Evaluate(entry *entity.ListPrice, s Size) (decimal.Decimal, error) {
	switch entry.Formula {
	case enum.PricingFormulaNone, "":
		return entry.Price, nil
	case enum.PricingFormulaArea:
		return RoundUpCents(entry.Price.Mul(AreaM2(s))), nil
	case enum.PricingFormulaLinear:
		return RoundUpCents(entry.Price.Mul(PerimeterM(s))), nil
	case enum.PricingFormulaLeftover:
		return LeftoverPrice(entry.Price, s, e.iva), nil
	case enum.PricingFormulaFitArea:
		return FitAreaPrice(entry, s)
	case enum.PricingFormulaFitAreaM2:
		return FitAreaM2Price(entry, s)
	}
	return decimal.Zero, &FormulaError{EntryID: entry.ID, Formula: entry.Formula, Reason: "formula not found"}
}

// MoldPrice prices molding by the linear metre of the frame perimeter
func MoldPrice(unitPrice decimal.Decimal, total Size) decimal.Decimal {
	return RoundUpCents(unitPrice.Mul(PerimeterM(total)))
}

// FabricPrice prices fabric stretching by working area at the entry's
// per-m2 rate.
func FabricPrice(entry *entity.ListPrice, working Size) decimal.Decimal {
	return RoundUpCents(entry.Price.Mul(AreaM2(working)))
}

// LeftoverPrice is m2 * price * IVA * 5 + 2, rounded up to the cent
func LeftoverPrice(unitPrice decimal.Decimal, s Size, iva decimal.Decimal) decimal.Decimal {
	raw := unitPrice.Mul(AreaM2(s)).Mul(iva).Mul(leftoverX).Add(leftoverPl)
	return RoundUpCents(raw)
}

// FitAreaPrice returns the price of the first bracket, in ascending order,
// that contains the size on both sides. Brackets must already be sorted.
func FitAreaPrice(entry *entity.ListPrice, s Size) (decimal.Decimal, error) {
	for _, b := range entry.Areas {
		if s.D1 <= b.D1 && s.D2 <= b.D2 {
			return b.Price, nil
		}
	}
	return decimal.Zero, &FormulaError{
		EntryID: entry.ID,
		Formula: enum.PricingFormulaFitArea,
		Reason:  "no bracket fits the requested size",
	}
}

// FitAreaM2Price returns the price of the smallest area bracket that is at
// least the requested area. Brackets must already be sorted.
func FitAreaM2Price(entry *entity.ListPrice, s Size) (decimal.Decimal, error) {
	area := AreaM2(s)
	for _, b := range entry.AreasM2 {
		if b.A.GreaterThanOrEqual(area) {
			return b.Price, nil
		}
	}
	return decimal.Zero, &FormulaError{
		EntryID: entry.ID,
		Formula: enum.PricingFormulaFitAreaM2,
		Reason:  "no bracket fits the requested area",
	}
}
