package entity

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// AreaBracket is one step of a FIT_AREA price table, dimensions in cm
type AreaBracket struct {
	D1    int             `json:"d1"`
	D2    int             `json:"d2"`
	Price decimal.Decimal `json:"price"`
}

// AreaM2Bracket is one step of a FIT_AREA_M2 price table, area in m2
type AreaM2Bracket struct {
	A     decimal.Decimal `json:"a"`
	Price decimal.Decimal `json:"price"`
}

// ListPrice represents a priced offering of the price list
type ListPrice struct {
	InternalID      uuid.UUID           `gorm:"type:uuid;primary_key" json:"internal_id"`
	ID              string              `gorm:"size:255;not null;uniqueIndex:idx_list_prices_type_id,where:deleted_at IS NULL" json:"id"`
	Type            enum.PricingType    `gorm:"size:20;not null;uniqueIndex:idx_list_prices_type_id;index" json:"type"`
	Formula         enum.PricingFormula `gorm:"size:20;not null" json:"formula"`
	Price           decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"price"`
	MinPrice        decimal.Decimal     `gorm:"type:numeric(12,2);not null" json:"min_price"`
	Description     string              `gorm:"size:255" json:"description"`
	Areas           []AreaBracket       `gorm:"serializer:json" json:"areas"`
	AreasM2         []AreaM2Bracket     `gorm:"serializer:json" json:"areas_m2"`
	MaxD1           *int                `json:"max_d1,omitempty"`
	MaxD2           *int                `json:"max_d2,omitempty"`
	Priority        int                 `gorm:"not null" json:"priority"`
	DiscountAllowed bool                `gorm:"not null" json:"discount_allowed"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	DeletedAt       gorm.DeletedAt      `gorm:"index" json:"-"`
}

// BeforeCreate generates the internal UUID before creating a new list price
func (p *ListPrice) BeforeCreate(tx *gorm.DB) error {
	if p.InternalID == uuid.Nil {
		p.InternalID = uuid.New()
	}
	return nil
}

// AfterFind sorts brackets once when the entry is loaded
func (p *ListPrice) AfterFind(tx *gorm.DB) error {
	p.SortBrackets()
	return nil
}

// TableName returns the table name for the ListPrice model
func (ListPrice) TableName() string {
	return "list_prices"
}

// SortBrackets orders each bracket's sides larger first and sorts the
// tables ascending (areas by d1 then d2, areasM2 by a).
func (p *ListPrice) SortBrackets() {
	for i := range p.Areas {
		if p.Areas[i].D2 > p.Areas[i].D1 {
			p.Areas[i].D1, p.Areas[i].D2 = p.Areas[i].D2, p.Areas[i].D1
		}
	}
	sort.SliceStable(p.Areas, func(i, j int) bool {
		if p.Areas[i].D1 != p.Areas[j].D1 {
			return p.Areas[i].D1 < p.Areas[j].D1
		}
		return p.Areas[i].D2 < p.Areas[j].D2
	})
	sort.SliceStable(p.AreasM2, func(i, j int) bool {
		return p.AreasM2[i].A.LessThan(p.AreasM2[j].A)
	})
}

// MaxDimensions returns the ordered max pair when both limits are declared
func (p *ListPrice) MaxDimensions() (d1, d2 int, ok bool) {
	if p.MaxD1 == nil || p.MaxD2 == nil {
		return 0, 0, false
	}
	d1, d2 = *p.MaxD1, *p.MaxD2
	if d2 > d1 {
		d1, d2 = d2, d1
	}
	return d1, d2, true
}
