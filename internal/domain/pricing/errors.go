package pricing

import (
	"fmt"
	"net/http"

	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// NotFoundError reports a catalog lookup with no entry
type NotFoundError struct {
	Type enum.PricingType
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Price not found: %s %s", e.Type, e.ID)
}

// HTTPStatus returns the HTTP status code for the error
func (e *NotFoundError) HTTPStatus() int { return http.StatusNotFound }

// SizeError reports dimensions outside an entry's limits or below the global minimum
type SizeError struct {
	EntryID     string
	Description string
	Requested   Size
	Limit       Size
	BelowMin    bool
}

func (e *SizeError) Error() string {
	if e.BelowMin {
		return fmt.Sprintf("Dimensiones mínimas no alcanzadas para %s (%s). Min: %dx%d",
			e.Description, e.EntryID, e.Limit.D1, e.Limit.D2)
	}
	return fmt.Sprintf("Dimensiones máximas superadas para %s (%s). Max: %dx%d",
		e.Description, e.EntryID, e.Limit.D1, e.Limit.D2)
}

// HTTPStatus returns the HTTP status code for the error
func (e *SizeError) HTTPStatus() int { return http.StatusUnprocessableEntity }

// FormulaError reports that a formula could not produce a price
type FormulaError struct {
	EntryID string
	Formula enum.PricingFormula
	Reason  string
}

func (e *FormulaError) Error() string {
	return fmt.Sprintf("Formula %s failed for %s: %s", e.Formula, e.EntryID, e.Reason)
}

// HTTPStatus returns the HTTP status code for the error
func (e *FormulaError) HTTPStatus() int { return http.StatusUnprocessableEntity }

// InvalidTypeError reports a pricing type that cannot be priced or described
type InvalidTypeError struct {
	Type enum.PricingType
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("Invalid pricing type: %q", string(e.Type))
}

// HTTPStatus returns the HTTP status code for the error
func (e *InvalidTypeError) HTTPStatus() int { return http.StatusBadRequest }
