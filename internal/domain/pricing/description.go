package pricing

import (
	"fmt"
	"strings"

	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// FabricDescription is the fixed description of fabric stretching
const FabricDescription = "Estirar tela"

// Describe resolves the description of a priced part. A non blank catalog
// description wins for every type except MOLD and FABRIC.
func Describe(t enum.PricingType, id, description string) (string, error) {
	switch t {
	case enum.PricingTypeMold:
		return MoldDescription(id), nil
	case enum.PricingTypeGlass:
		return defaultDescription("Cristal "+id, description), nil
	case enum.PricingTypeBack:
		return defaultDescription("Trasera "+id, description), nil
	case enum.PricingTypePP:
		return defaultDescription("Passepartout "+id, description), nil
	case enum.PricingTypeLabour:
		return defaultDescription("Montaje "+id, description), nil
	case enum.PricingTypeFabric:
		return FabricDescription, nil
	case enum.PricingTypeOther:
		return defaultDescription(id, description), nil
	}
	return "", &InvalidTypeError{Type: t}
}

// MoldDescription renders a "location_moldId" id
func MoldDescription(id string) string {
	location, moldID, _ := strings.Cut(id, "_")
	return fmt.Sprintf("Ubi: %s - Moldura: %s", location, moldID)
}

func defaultDescription(fallback, description string) string {
	if strings.TrimSpace(description) == "" {
		return fallback
	}
	return description
}
