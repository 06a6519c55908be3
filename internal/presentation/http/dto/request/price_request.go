package request

import (
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// AreaBracketRequest is one FIT_AREA bracket
type AreaBracketRequest struct {
	D1    int             `json:"d1" binding:"min=1"`
	D2    int             `json:"d2" binding:"min=1"`
	Price decimal.Decimal `json:"price"`
}

// AreaM2BracketRequest is one FIT_AREA_M2 bracket
type AreaM2BracketRequest struct {
	A     decimal.Decimal `json:"a"`
	Price decimal.Decimal `json:"price"`
}

// ListPriceRequest represents a list price create or update request
type ListPriceRequest struct {
	ID              string                 `json:"id" binding:"required,max=255"`
	Type            enum.PricingType       `json:"type" binding:"required"`
	Formula         enum.PricingFormula    `json:"formula" binding:"required"`
	Price           decimal.Decimal        `json:"price"`
	MinPrice        decimal.Decimal        `json:"min_price"`
	Description     string                 `json:"description" binding:"required,max=255"`
	Areas           []AreaBracketRequest   `json:"areas" binding:"omitempty,dive"`
	AreasM2         []AreaM2BracketRequest `json:"areas_m2"`
	MaxD1           *int                   `json:"max_d1" binding:"omitempty,min=0"`
	MaxD2           *int                   `json:"max_d2" binding:"omitempty,min=0"`
	Priority        int                    `json:"priority"`
	DiscountAllowed *bool                  `json:"discount_allowed"`
}

// ToInput converts the request into the service input
func (r *ListPriceRequest) ToInput() *service.ListPriceInput {
	input := &service.ListPriceInput{
		ID:              r.ID,
		Type:            r.Type,
		Formula:         r.Formula,
		Price:           r.Price,
		MinPrice:        r.MinPrice,
		Description:     r.Description,
		MaxD1:           r.MaxD1,
		MaxD2:           r.MaxD2,
		Priority:        r.Priority,
		DiscountAllowed: r.DiscountAllowed,
	}
	for _, a := range r.Areas {
		input.Areas = append(input.Areas, entity.AreaBracket{D1: a.D1, D2: a.D2, Price: a.Price})
	}
	for _, a := range r.AreasM2 {
		input.AreasM2 = append(input.AreasM2, entity.AreaM2Bracket{A: a.A, Price: a.Price})
	}
	return input
}

// ListPriceFilterRequest represents list price filter parameters
type ListPriceFilterRequest struct {
	Type    string `form:"type"`
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
}
