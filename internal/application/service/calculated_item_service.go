package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/domain/repository"
	"github.com/sonsardina/framing-api/internal/infrastructure/metrics"
	"github.com/sonsardina/framing-api/pkg/apperror"
	"golang.org/x/sync/errgroup"
)

const defaultMaxConcurrency = 8

// CalculatedItemService aggregates priced parts into calculated items
type CalculatedItemService struct {
	pricingService     *PricingService
	calculatedItemRepo repository.CalculatedItemRepository
	maxConcurrency     int
}

// NewCalculatedItemService creates a new calculated item service
func NewCalculatedItemService(
	pricingService *PricingService,
	calculatedItemRepo repository.CalculatedItemRepository,
	maxConcurrency int,
) *CalculatedItemService {
	if maxConcurrency < 1 {
		maxConcurrency = defaultMaxConcurrency
	}
	return &CalculatedItemService{
		pricingService:     pricingService,
		calculatedItemRepo: calculatedItemRepo,
		maxConcurrency:     maxConcurrency,
	}
}

// CreateCalculatedItem prices every part of the item concurrently, appends
// the extra parts as given and computes the discounted total. The first
// part failure is returned as is and no item is produced.
func (s *CalculatedItemService) CreateCalculatedItem(
	ctx context.Context,
	order *entity.Order,
	item *entity.Item,
	discount int,
	extraParts []entity.CalculatedItemPart,
) (*entity.CalculatedItem, error) {
	if discount < 0 || discount > 100 {
		return nil, apperror.NewBadRequestError("Discount must be between 0 and 100")
	}

	start := time.Now()
	defer metrics.ObserveItem(start)

	workingWidth, workingHeight := pricing.ItemWorkingSize(item)
	totalWidth, totalHeight := pricing.ItemTotalSize(item)

	parts := make([]entity.CalculatedItemPart, len(item.PartsToCalculate))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)
	for i, p := range item.PartsToCalculate {
		i, p := i, p
		g.Go(func() error {
			// a mold wraps the exterior, so it is bounded and priced on the
			// total size; every other part covers the aperture
			width, height := workingWidth, workingHeight
			if p.Type == enum.PricingTypeMold {
				width, height = totalWidth, totalHeight
			}
			part, err := s.pricingService.CalculatePart(gctx, p, width, height)
			if err != nil {
				return err
			}
			parts[i] = *part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	parts = append(parts, NormalizeExtraParts(extraParts)...)

	quantity := item.Quantity
	if quantity < 1 {
		quantity = 1
	}

	return &entity.CalculatedItem{
		ItemID:   item.ID,
		OrderID:  order.ID,
		Discount: discount,
		Parts:    parts,
		Total:    pricing.TotalPrice(parts, quantity, discount),
	}, nil
}

// NormalizeExtraParts fills the defaults of user-entered extra parts
func NormalizeExtraParts(extraParts []entity.CalculatedItemPart) []entity.CalculatedItemPart {
	out := make([]entity.CalculatedItemPart, 0, len(extraParts))
	for _, p := range extraParts {
		if p.PriceID == "" {
			p.PriceID = entity.OtherExtraID
		}
		if p.Quantity < 1 {
			p.Quantity = 1
		}
		out = append(out, p)
	}
	return out
}

// SaveCalculatedItem stores the snapshot, replacing the previous one
func (s *CalculatedItemService) SaveCalculatedItem(ctx context.Context, item *entity.CalculatedItem) error {
	return s.calculatedItemRepo.Put(ctx, item)
}

// GetCalculatedItem returns the snapshot stored for an item
func (s *CalculatedItemService) GetCalculatedItem(ctx context.Context, itemID uuid.UUID) (*entity.CalculatedItem, error) {
	item, err := s.calculatedItemRepo.Get(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Calculated item")
	}
	return item, nil
}
