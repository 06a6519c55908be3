package repository

import (
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PricingTypeScope returns a GORM scope that filters by pricing type.
// A nil type leaves the query untouched.
func PricingTypeScope(pricingType *enum.PricingType) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pricingType == nil {
			return db
		}
		return db.Where("type = ?", *pricingType)
	}
}

// SearchScope returns a GORM scope matching the search term against id and description
func SearchScope(search string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		like := "%" + search + "%"
		return db.Where("id ILIKE ? OR description ILIKE ?", like, like)
	}
}
