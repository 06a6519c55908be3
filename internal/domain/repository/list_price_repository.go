package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/pkg/pagination"
)

// ListPriceRepository defines the interface for list price data operations.
// Getters return nil, nil when no entry exists.
type ListPriceRepository interface {
	GetByTypeAndID(ctx context.Context, pricingType enum.PricingType, id string) (*entity.ListPrice, error)
	GetByInternalID(ctx context.Context, internalID uuid.UUID) (*entity.ListPrice, error)
	List(ctx context.Context, params *ListPriceFilterParams) ([]entity.ListPrice, int64, error)
	Create(ctx context.Context, price *entity.ListPrice) error
	Update(ctx context.Context, price *entity.ListPrice) error
	Delete(ctx context.Context, internalID uuid.UUID) error
	// ReplaceByType makes prices the full set of entries of a type in one
	// transaction: entries of that type missing from prices are deleted and
	// the rest are upserted by (type, id). It returns how many were deleted.
	ReplaceByType(ctx context.Context, pricingType enum.PricingType, prices []entity.ListPrice) (int, error)
}

// ListPriceFilterParams contains filtering parameters for list price queries
type ListPriceFilterParams struct {
	Pagination *pagination.PaginationParams
	Type       *enum.PricingType
	Search     string
}
