package request

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
)

// PartRequest is a catalog part to price
type PartRequest struct {
	ID        string           `json:"id" binding:"required"`
	Type      enum.PricingType `json:"type" binding:"required"`
	Quantity  int              `json:"quantity" binding:"min=0"`
	MoldID    string           `json:"mold_id"`
	ExtraInfo string           `json:"extra_info"`
}

// ExtraPartRequest is a user-entered part priced by hand
type ExtraPartRequest struct {
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity" binding:"min=0"`
	Description     string          `json:"description" binding:"max=255"`
	PriceID         string          `json:"price_id"`
	DiscountAllowed bool            `json:"discount_allowed"`
}

// ItemRequest represents the item being framed
type ItemRequest struct {
	Width          float64              `json:"width" binding:"required,gt=0"`
	Height         float64              `json:"height" binding:"required,gt=0"`
	PP             float64              `json:"pp" binding:"min=0"`
	PPDimensions   *entity.PPDimensions `json:"pp_dimensions"`
	ExteriorWidth  *float64             `json:"exterior_width" binding:"omitempty,min=0"`
	ExteriorHeight *float64             `json:"exterior_height" binding:"omitempty,min=0"`
	Quantity       int                  `json:"quantity" binding:"min=0"`
	Description    string               `json:"description"`
	Observations   string               `json:"observations"`
	DeliveryDate   string               `json:"delivery_date"`
	Parts          []PartRequest        `json:"parts" binding:"dive"`
}

// QuoteRequest represents a price-only request
type QuoteRequest struct {
	Item       ItemRequest        `json:"item"`
	Discount   int                `json:"discount" binding:"min=0,max=100"`
	ExtraParts []ExtraPartRequest `json:"extra_parts" binding:"dive"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	CustomerName  string `json:"customer_name" binding:"required,max=255"`
	CustomerPhone string `json:"customer_phone" binding:"max=50"`
	QuoteRequest
}

// RecalculateRequest represents a recalculation of a stored item
type RecalculateRequest struct {
	Discount   int                `json:"discount" binding:"min=0,max=100"`
	ExtraParts []ExtraPartRequest `json:"extra_parts" binding:"dive"`
}

// ToItemInput converts the request into the service input. An unparseable
// delivery date (YYYY-MM-DD) is ignored.
func (r *ItemRequest) ToItemInput() service.ItemInput {
	input := service.ItemInput{
		Width:          r.Width,
		Height:         r.Height,
		PP:             r.PP,
		PPDimensions:   r.PPDimensions,
		ExteriorWidth:  r.ExteriorWidth,
		ExteriorHeight: r.ExteriorHeight,
		Quantity:       r.Quantity,
		Description:    r.Description,
		Observations:   r.Observations,
	}
	if r.DeliveryDate != "" {
		if d, err := time.Parse("2006-01-02", r.DeliveryDate); err == nil {
			input.DeliveryDate = &d
		}
	}
	for _, p := range r.Parts {
		input.PartsToCalculate = append(input.PartsToCalculate, entity.PartToCalculate{
			ID:        p.ID,
			Type:      p.Type,
			Quantity:  p.Quantity,
			MoldID:    p.MoldID,
			ExtraInfo: p.ExtraInfo,
		})
	}
	return input
}

// ToExtraParts converts extra part requests into calculated parts
func ToExtraParts(extras []ExtraPartRequest) []entity.CalculatedItemPart {
	parts := make([]entity.CalculatedItemPart, 0, len(extras))
	for _, e := range extras {
		parts = append(parts, entity.CalculatedItemPart{
			Price:           e.Price,
			Quantity:        e.Quantity,
			Description:     e.Description,
			PriceID:         e.PriceID,
			DiscountAllowed: e.DiscountAllowed,
		})
	}
	return parts
}

// ToQuoteInput converts the request into the service input
func (r *QuoteRequest) ToQuoteInput() service.QuoteInput {
	return service.QuoteInput{
		Item:       r.Item.ToItemInput(),
		Discount:   r.Discount,
		ExtraParts: ToExtraParts(r.ExtraParts),
	}
}

// ToInput converts the request into the service input
func (r *CreateOrderRequest) ToInput() *service.CreateOrderInput {
	return &service.CreateOrderInput{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		QuoteInput:    r.QuoteRequest.ToQuoteInput(),
	}
}
