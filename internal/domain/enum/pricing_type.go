package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PricingType represents the family of a priced component
type PricingType string

const (
	PricingTypeMold   PricingType = "MOLD"
	PricingTypeGlass  PricingType = "GLASS"
	PricingTypeBack   PricingType = "BACK"
	PricingTypePP     PricingType = "PP"
	PricingTypeLabour PricingType = "LABOUR"
	PricingTypeFabric PricingType = "FABRIC"
	PricingTypeOther  PricingType = "OTHER"
)

// AllPricingTypes lists every known pricing type
var AllPricingTypes = []PricingType{
	PricingTypeMold,
	PricingTypeGlass,
	PricingTypeBack,
	PricingTypePP,
	PricingTypeLabour,
	PricingTypeFabric,
	PricingTypeOther,
}

var pricingTypeLabels = map[PricingType]string{
	PricingTypeGlass:  "Cristal",
	PricingTypePP:     "PP",
	PricingTypeOther:  "Otro",
	PricingTypeBack:   "Trasera",
	PricingTypeLabour: "Montajes",
	PricingTypeMold:   "Molduras",
	PricingTypeFabric: "Estirar tela",
}

func (t PricingType) String() string {
	return string(t)
}

// IsValid reports whether t is a known pricing type
func (t PricingType) IsValid() bool {
	_, ok := pricingTypeLabels[t]
	return ok
}

// IsEditable reports whether entries of this type are managed by hand.
// MOLD entries are written by the spreadsheet loader and FABRIC is built in.
func (t PricingType) IsEditable() bool {
	switch t {
	case PricingTypeGlass, PricingTypePP, PricingTypeBack, PricingTypeOther, PricingTypeLabour:
		return true
	}
	return false
}

// Label returns the human label for the type
func (t PricingType) Label() string {
	return pricingTypeLabels[t]
}

func (t PricingType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *PricingType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = PricingType(str)
	return nil
}

func (t PricingType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *PricingType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = PricingType(v)
	case []byte:
		*t = PricingType(string(v))
	}
	return nil
}
