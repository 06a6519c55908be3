package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OtherExtraID is the price id given to user-entered extra parts
const OtherExtraID = "other_extra"

// CalculatedItemPart is one priced line of a calculated item
type CalculatedItemPart struct {
	Price           decimal.Decimal `json:"price"`
	Quantity        int             `json:"quantity"`
	Description     string          `json:"description"`
	PriceID         string          `json:"price_id"`
	DiscountAllowed bool            `json:"discount_allowed"`
}

// CalculatedItem is the priced snapshot of an order item, keyed by item id
type CalculatedItem struct {
	ItemID    uuid.UUID            `gorm:"type:uuid;primary_key" json:"item_id"`
	OrderID   uuid.UUID            `gorm:"type:uuid;not null;index" json:"order_id"`
	Discount  int                  `gorm:"default:0" json:"discount"`
	Parts     []CalculatedItemPart `gorm:"serializer:json" json:"parts"`
	Total     decimal.Decimal      `gorm:"type:numeric(12,2);not null" json:"total"`
	CreatedAt time.Time            `json:"created_at"`
}

// TableName returns the table name for the CalculatedItem model
func (CalculatedItem) TableName() string {
	return "calculated_items"
}

// ExtraDescriptions returns the descriptions of user-entered extra parts
func (c *CalculatedItem) ExtraDescriptions() []string {
	var out []string
	for _, p := range c.Parts {
		if p.PriceID == OtherExtraID {
			out = append(out, p.Description)
		}
	}
	return out
}
