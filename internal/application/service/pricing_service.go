package service

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/infrastructure/metrics"
)

// FabricID is the id of the built-in fabric stretching entry
const FabricID = "fabric"

// PriceResult is the outcome of pricing one catalog entry for a size
type PriceResult struct {
	Price           decimal.Decimal
	Description     string
	DiscountAllowed bool
}

// PricingService prices single parts against the price list
type PricingService struct {
	listPriceRepo repository.ListPriceRepository
	engine        *pricing.Engine
	fabric        *entity.ListPrice
}

// NewPricingService creates a new pricing service
func NewPricingService(
	listPriceRepo repository.ListPriceRepository,
	engine *pricing.Engine,
	fabric *entity.ListPrice,
) *PricingService {
	return &PricingService{
		listPriceRepo: listPriceRepo,
		engine:        engine,
		fabric:        fabric,
	}
}

// FabricEntry builds the constant fabric stretching entry
func FabricEntry(pricePerM2, minPrice decimal.Decimal) *entity.ListPrice {
	maxD1, maxD2 := 300, 250
	return &entity.ListPrice{
		ID:              FabricID,
		Type:            enum.PricingTypeFabric,
		Formula:         enum.PricingFormulaNone,
		Price:           pricePerM2,
		MinPrice:        minPrice,
		Description:     pricing.FabricDescription,
		MaxD1:           &maxD1,
		MaxD2:           &maxD2,
		DiscountAllowed: true,
	}
}

// GetEntry resolves the catalog entry for a pricing type and id.
// FABRIC always resolves to the built-in entry.
func (s *PricingService) GetEntry(ctx context.Context, pricingType enum.PricingType, id string) (*entity.ListPrice, error) {
	if pricingType == enum.PricingTypeFabric {
		return s.fabric, nil
	}
	entry, err := s.listPriceRepo.GetByTypeAndID(ctx, pricingType, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, &pricing.NotFoundError{Type: pricingType, ID: id}
	}
	return entry, nil
}

// CalculatePrice prices the entry (pricingType, id) for the given dimensions
func (s *PricingService) CalculatePrice(ctx context.Context, pricingType enum.PricingType, width, height float64, id string) (*PriceResult, error) {
	if !pricingType.IsValid() {
		return nil, &pricing.InvalidTypeError{Type: pricingType}
	}

	entry, err := s.GetEntry(ctx, pricingType, id)
	if err != nil {
		return nil, err
	}

	price, err := s.engine.Price(entry, pricing.OrderDimensions(width, height))
	if err != nil {
		return nil, err
	}

	return &PriceResult{
		Price:           price,
		Description:     entry.Description,
		DiscountAllowed: entry.DiscountAllowed,
	}, nil
}

// CalculatePart prices one part of an item
func (s *PricingService) CalculatePart(ctx context.Context, part entity.PartToCalculate, width, height float64) (*entity.CalculatedItemPart, error) {
	result, err := s.CalculatePrice(ctx, part.Type, width, height, part.ID)
	metrics.ObservePart(part.Type.String(), err)
	if err != nil {
		return nil, err
	}

	description, err := pricing.Describe(part.Type, part.ID, result.Description)
	if err != nil {
		return nil, err
	}

	quantity := part.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return &entity.CalculatedItemPart{
		Price:           result.Price,
		Quantity:        quantity,
		Description:     description,
		PriceID:         part.ID,
		DiscountAllowed: result.DiscountAllowed,
	}, nil
}
