package service

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/pkg/apperror"
	"github.com/sonsardina/framing-api/pkg/pagination"
)

// ListPriceService handles price list administration
type ListPriceService struct {
	listPriceRepo repository.ListPriceRepository
}

// NewListPriceService creates a new list price service
func NewListPriceService(listPriceRepo repository.ListPriceRepository) *ListPriceService {
	return &ListPriceService{listPriceRepo: listPriceRepo}
}

// ListPriceInput represents the editable fields of a list price
type ListPriceInput struct {
	ID              string
	Type            enum.PricingType
	Formula         enum.PricingFormula
	Price           decimal.Decimal
	MinPrice        decimal.Decimal
	Description     string
	Areas           []entity.AreaBracket
	AreasM2         []entity.AreaM2Bracket
	MaxD1           *int
	MaxD2           *int
	Priority        int
	DiscountAllowed *bool
}

// CleanFormValues keeps only the fields meaningful for the chosen formula.
// Bracket formulas ignore the unit price, so it is forced to zero.
func CleanFormValues(input *ListPriceInput) {
	switch input.Formula {
	case enum.PricingFormulaFitArea:
		input.Price = decimal.Zero
		input.AreasM2 = nil
	case enum.PricingFormulaFitAreaM2:
		input.Price = decimal.Zero
		input.Areas = nil
	default:
		input.Areas = nil
		input.AreasM2 = nil
	}

	if input.MaxD1 == nil || input.MaxD2 == nil || *input.MaxD1 <= 0 || *input.MaxD2 <= 0 {
		input.MaxD1 = nil
		input.MaxD2 = nil
	}
}

func validateListPrice(input *ListPriceInput, allowMold bool) []apperror.FieldError {
	var errs []apperror.FieldError

	if input.ID == "" || strings.IndexFunc(input.ID, unicode.IsSpace) >= 0 {
		errs = append(errs, apperror.FieldError{Field: "id", Message: "id is required and should not contain spaces"})
	}
	if strings.TrimSpace(input.Description) == "" {
		errs = append(errs, apperror.FieldError{Field: "description", Message: "description is required"})
	}
	if !input.Type.IsEditable() && !(allowMold && input.Type == enum.PricingTypeMold) {
		errs = append(errs, apperror.FieldError{Field: "type", Message: fmt.Sprintf("type %q cannot be edited", input.Type)})
	}
	if !input.Formula.IsValid() {
		errs = append(errs, apperror.FieldError{Field: "formula", Message: fmt.Sprintf("unknown formula %q", input.Formula)})
	}
	if input.Price.IsNegative() {
		errs = append(errs, apperror.FieldError{Field: "price", Message: "price must be zero or positive"})
	}
	if input.MinPrice.IsNegative() {
		errs = append(errs, apperror.FieldError{Field: "min_price", Message: "min_price must be zero or positive"})
	}

	switch input.Formula {
	case enum.PricingFormulaFitArea:
		if len(input.Areas) == 0 {
			errs = append(errs, apperror.FieldError{Field: "areas", Message: "at least one bracket is required"})
		}
		for i, a := range input.Areas {
			if a.D1 < 1 || a.D2 < 1 || a.Price.IsNegative() {
				errs = append(errs, apperror.FieldError{Field: fmt.Sprintf("areas[%d]", i), Message: "bracket sides must be at least 1 and price zero or positive"})
			}
		}
	case enum.PricingFormulaFitAreaM2:
		if len(input.AreasM2) == 0 {
			errs = append(errs, apperror.FieldError{Field: "areas_m2", Message: "at least one bracket is required"})
		}
		for i, a := range input.AreasM2 {
			if !a.A.IsPositive() || a.Price.IsNegative() {
				errs = append(errs, apperror.FieldError{Field: fmt.Sprintf("areas_m2[%d]", i), Message: "bracket area must be positive and price zero or positive"})
			}
		}
	}

	return errs
}

func applyListPriceInput(price *entity.ListPrice, input *ListPriceInput) {
	price.ID = input.ID
	price.Type = input.Type
	price.Formula = input.Formula
	price.Price = input.Price
	price.MinPrice = input.MinPrice
	price.Description = strings.TrimSpace(input.Description)
	price.Areas = input.Areas
	price.AreasM2 = input.AreasM2
	price.MaxD1 = input.MaxD1
	price.MaxD2 = input.MaxD2
	price.Priority = input.Priority
	if input.DiscountAllowed != nil {
		price.DiscountAllowed = *input.DiscountAllowed
	}
	price.SortBrackets()
}

// CreateListPrice creates a new price list entry
func (s *ListPriceService) CreateListPrice(ctx context.Context, input *ListPriceInput) (*entity.ListPrice, error) {
	CleanFormValues(input)
	if errs := validateListPrice(input, false); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	existing, err := s.listPriceRepo.GetByTypeAndID(ctx, input.Type, input.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError(fmt.Sprintf("List price %s %s already exists", input.Type, input.ID))
	}

	price := &entity.ListPrice{DiscountAllowed: true}
	applyListPriceInput(price, input)

	if err := s.listPriceRepo.Create(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// UpdateListPrice replaces the editable fields of an entry
func (s *ListPriceService) UpdateListPrice(ctx context.Context, internalID uuid.UUID, input *ListPriceInput) (*entity.ListPrice, error) {
	price, err := s.GetListPrice(ctx, internalID)
	if err != nil {
		return nil, err
	}

	CleanFormValues(input)
	if errs := validateListPrice(input, true); len(errs) > 0 {
		return nil, apperror.NewValidationError(errs)
	}

	if input.Type != price.Type || input.ID != price.ID {
		existing, err := s.listPriceRepo.GetByTypeAndID(ctx, input.Type, input.ID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.InternalID != price.InternalID {
			return nil, apperror.NewConflictError(fmt.Sprintf("List price %s %s already exists", input.Type, input.ID))
		}
	}

	applyListPriceInput(price, input)
	if err := s.listPriceRepo.Update(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// GetListPrice returns an entry by its internal id
func (s *ListPriceService) GetListPrice(ctx context.Context, internalID uuid.UUID) (*entity.ListPrice, error) {
	price, err := s.listPriceRepo.GetByInternalID(ctx, internalID)
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, apperror.NewNotFoundError("List price")
	}
	return price, nil
}

// ListListPrices returns a page of entries
func (s *ListPriceService) ListListPrices(ctx context.Context, params *repository.ListPriceFilterParams) (*pagination.PaginatedResult[entity.ListPrice], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	prices, total, err := s.listPriceRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	p := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(prices, p), nil
}

// DeleteListPrice soft deletes an entry
func (s *ListPriceService) DeleteListPrice(ctx context.Context, internalID uuid.UUID) error {
	if _, err := s.GetListPrice(ctx, internalID); err != nil {
		return err
	}
	return s.listPriceRepo.Delete(ctx, internalID)
}
