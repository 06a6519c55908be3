package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingFormula selects how a list price turns dimensions into a price
type PricingFormula string

const (
	PricingFormulaNone      PricingFormula = "NONE"
	PricingFormulaArea      PricingFormula = "AREA"
	PricingFormulaFitArea   PricingFormula = "FIT_AREA"
	PricingFormulaFitAreaM2 PricingFormula = "FIT_AREA_M2"
	PricingFormulaLinear    PricingFormula = "LINEAR"
	PricingFormulaLeftover  PricingFormula = "LEFTOVER"
)

// AllPricingFormulas lists every known formula in display order
var AllPricingFormulas = []PricingFormula{
	PricingFormulaNone,
	PricingFormulaArea,
	PricingFormulaFitArea,
	PricingFormulaFitAreaM2,
	PricingFormulaLinear,
	PricingFormulaLeftover,
}

var pricingFormulaLabels = map[PricingFormula]string{
	PricingFormulaNone:      "Precio unitario sin cálculos",
	PricingFormulaArea:      "Precio por m2",
	PricingFormulaFitArea:   "Precio por trozos",
	PricingFormulaFitAreaM2: "Precio por trozos de m2",
	PricingFormulaLinear:    "Precio por metro lineal",
	PricingFormulaLeftover:  "Precio con fórmula m2 * precio * IVA * 5 + 2",
}

var pricingFormulaSuffixes = map[PricingFormula]string{
	PricingFormulaNone:      "",
	PricingFormulaArea:      " / m2",
	PricingFormulaFitArea:   "",
	PricingFormulaFitAreaM2: "",
	PricingFormulaLinear:    " / m",
	PricingFormulaLeftover:  " * m2 * IVA * 5 + 2",
}

func (f PricingFormula) String() string {
	return string(f)
}

// IsValid reports whether f is a known formula
func (f PricingFormula) IsValid() bool {
	_, ok := pricingFormulaLabels[f]
	return ok
}

// IsFit reports whether the formula is bracket driven
func (f PricingFormula) IsFit() bool {
	return f == PricingFormulaFitArea || f == PricingFormulaFitAreaM2
}

// Label returns the human label for the formula
func (f PricingFormula) Label() string {
	return pricingFormulaLabels[f]
}

// Suffix returns the unit suffix appended to a unit price
func (f PricingFormula) Suffix() string {
	return pricingFormulaSuffixes[f]
}

func (f PricingFormula) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func (f *PricingFormula) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*f = PricingFormula(str)
	return nil
}

func (f PricingFormula) Value() (driver.Value, error) {
	return string(f), nil
}

func (f *PricingFormula) Scan(value interface{}) error {
	if value == nil {
		*f = PricingFormulaNone
		return nil
	}
	switch v := value.(type) {
	case string:
		*f = PricingFormula(v)
	case []byte:
		*f = PricingFormula(string(v))
	}
	return nil
}
