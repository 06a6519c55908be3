package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/pkg/apperror"
	"github.com/sonsardina/framing-api/pkg/utils"
)

// OrderService handles order authoring and item pricing
type OrderService struct {
	orderRepo             repository.OrderRepository
	calculatedItemService *CalculatedItemService
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	calculatedItemService *CalculatedItemService,
) *OrderService {
	return &OrderService{
		orderRepo:             orderRepo,
		calculatedItemService: calculatedItemService,
	}
}

// ItemInput represents the item of a new order
type ItemInput struct {
	Width            float64
	Height           float64
	PP               float64
	PPDimensions     *entity.PPDimensions
	ExteriorWidth    *float64
	ExteriorHeight   *float64
	Quantity         int
	Description      string
	Observations     string
	DeliveryDate     *time.Time
	PartsToCalculate []entity.PartToCalculate
}

// QuoteInput represents a price request that is not stored
type QuoteInput struct {
	Item       ItemInput
	Discount   int
	ExtraParts []entity.CalculatedItemPart
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	CustomerName  string
	CustomerPhone string
	QuoteInput
}

// OrderDetails is an order with its item and calculated item
type OrderDetails struct {
	Order             *entity.Order          `json:"order"`
	Item              *entity.Item           `json:"item"`
	CalculatedItem    *entity.CalculatedItem `json:"calculated_item"`
	WorkingDimensions string                 `json:"working_dimensions"`
	DiscountLabel     string                 `json:"discount_label"`
	Extras            []string               `json:"extras"`
}

func newItem(orderID uuid.UUID, input *ItemInput) *entity.Item {
	quantity := input.Quantity
	if quantity < 1 {
		quantity = 1
	}
	return &entity.Item{
		ID:               uuid.New(),
		OrderID:          orderID,
		Description:      strings.TrimSpace(input.Description),
		Observations:     strings.TrimSpace(input.Observations),
		Width:            input.Width,
		Height:           input.Height,
		PP:               input.PP,
		PPDimensions:     input.PPDimensions,
		ExteriorWidth:    input.ExteriorWidth,
		ExteriorHeight:   input.ExteriorHeight,
		Quantity:         quantity,
		DeliveryDate:     input.DeliveryDate,
		PartsToCalculate: input.PartsToCalculate,
	}
}

func newOrderDetails(order *entity.Order, item *entity.Item, calculated *entity.CalculatedItem) *OrderDetails {
	totalWidth, totalHeight := pricing.ItemTotalSize(item)
	return &OrderDetails{
		Order:             order,
		Item:              item,
		CalculatedItem:    calculated,
		WorkingDimensions: pricing.DimensionsLabel(totalWidth, totalHeight),
		DiscountLabel:     pricing.DiscountLabel(calculated.Discount),
		Extras:            calculated.ExtraDescriptions(),
	}
}

// validateExtraParts rejects user-entered extras with a negative price
func validateExtraParts(extraParts []entity.CalculatedItemPart) error {
	var fieldErrors []apperror.FieldError
	for i, p := range extraParts {
		if p.Price.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{
				Field:   fmt.Sprintf("extra_parts[%d].price", i),
				Message: "price must be greater than or equal to 0",
			})
		}
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Quote prices an item without storing anything
func (s *OrderService) Quote(ctx context.Context, input *QuoteInput) (*entity.CalculatedItem, error) {
	if err := validateExtraParts(input.ExtraParts); err != nil {
		return nil, err
	}
	order := &entity.Order{ID: uuid.Nil}
	item := newItem(order.ID, &input.Item)
	return s.calculatedItemService.CreateCalculatedItem(ctx, order, item, input.Discount, input.ExtraParts)
}

// CreateOrder prices the item and, only when pricing succeeds, stores the
// order, its item and the calculated item together.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*OrderDetails, error) {
	if strings.TrimSpace(input.CustomerName) == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "customer_name", Message: "customer_name is required"},
		})
	}
	if err := validateExtraParts(input.ExtraParts); err != nil {
		return nil, err
	}

	order := &entity.Order{
		ID:            uuid.New(),
		ShortID:       utils.GenerateShortID(),
		CustomerName:  strings.TrimSpace(input.CustomerName),
		CustomerPhone: strings.TrimSpace(input.CustomerPhone),
	}
	item := newItem(order.ID, &input.Item)

	calculated, err := s.calculatedItemService.CreateCalculatedItem(ctx, order, item, input.Discount, input.ExtraParts)
	if err != nil {
		return nil, err
	}

	order.Items = []entity.Item{*item}
	if err := s.orderRepo.Create(ctx, order, calculated); err != nil {
		return nil, err
	}

	return newOrderDetails(order, item, calculated), nil
}

// GetOrder returns an order with its item and calculated item
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*OrderDetails, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil || len(order.Items) == 0 {
		return nil, apperror.NewNotFoundError("Order")
	}

	item := &order.Items[0]
	calculated, err := s.calculatedItemService.GetCalculatedItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}

	return newOrderDetails(order, item, calculated), nil
}

// RecalculateItem prices a stored item again and replaces its snapshot
func (s *OrderService) RecalculateItem(ctx context.Context, itemID uuid.UUID, discount int, extraParts []entity.CalculatedItemPart) (*entity.CalculatedItem, error) {
	if err := validateExtraParts(extraParts); err != nil {
		return nil, err
	}
	item, err := s.orderRepo.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	order := &entity.Order{ID: item.OrderID}
	calculated, err := s.calculatedItemService.CreateCalculatedItem(ctx, order, item, discount, extraParts)
	if err != nil {
		return nil, err
	}
	if err := s.calculatedItemService.SaveCalculatedItem(ctx, calculated); err != nil {
		return nil, err
	}
	return calculated, nil
}
