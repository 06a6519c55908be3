package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order represents a customer framing order
type Order struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShortID       string         `gorm:"size:20;unique;not null" json:"short_id"`
	CustomerName  string         `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone string         `gorm:"size:50" json:"customer_phone"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []Item `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// PPDimensions holds a per-edge passe-partout width in cm
type PPDimensions struct {
	Up    float64 `json:"up"`
	Down  float64 `json:"down"`
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// PartToCalculate requests the price of one component of an item
type PartToCalculate struct {
	ID        string           `json:"id"`
	Type      enum.PricingType `json:"type"`
	Quantity  int              `json:"quantity"`
	MoldID    string           `json:"mold_id,omitempty"`
	ExtraInfo string           `json:"extra_info,omitempty"`
}

// Item represents the physical piece to be framed within an order
type Item struct {
	ID               uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"order_id"`
	Description      string            `gorm:"type:text" json:"description"`
	Observations     string            `gorm:"type:text" json:"observations"`
	Width            float64           `gorm:"not null" json:"width"`
	Height           float64           `gorm:"not null" json:"height"`
	PP               float64           `gorm:"default:0" json:"pp"`
	PPDimensions     *PPDimensions     `gorm:"serializer:json" json:"pp_dimensions,omitempty"`
	ExteriorWidth    *float64          `json:"exterior_width,omitempty"`
	ExteriorHeight   *float64          `json:"exterior_height,omitempty"`
	Quantity         int               `gorm:"default:1" json:"quantity"`
	DeliveryDate     *time.Time        `gorm:"type:date" json:"delivery_date,omitempty"`
	PartsToCalculate []PartToCalculate `gorm:"serializer:json" json:"parts_to_calculate"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new item
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}
