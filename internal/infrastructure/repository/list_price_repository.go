package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	domainRepo "github.com/sonsardina/framing-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const upsertBatchSize = 500

type listPriceRepository struct {
	db *gorm.DB
}

// NewListPriceRepository creates a new list price repository
func NewListPriceRepository(db *gorm.DB) domainRepo.ListPriceRepository {
	return &listPriceRepository{db: db}
}

func (r *listPriceRepository) GetByTypeAndID(ctx context.Context, pricingType enum.PricingType, id string) (*entity.ListPrice, error) {
	var price entity.ListPrice
	err := r.db.WithContext(ctx).First(&price, "type = ? AND id = ?", pricingType, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *listPriceRepository) GetByInternalID(ctx context.Context, internalID uuid.UUID) (*entity.ListPrice, error) {
	var price entity.ListPrice
	err := r.db.WithContext(ctx).First(&price, "internal_id = ?", internalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *listPriceRepository) List(ctx context.Context, params *domainRepo.ListPriceFilterParams) ([]entity.ListPrice, int64, error) {
	var prices []entity.ListPrice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ListPrice{}).
		Scopes(PricingTypeScope(params.Type), SearchScope(params.Search))

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("priority DESC").
		Order("id ASC").
		Find(&prices).Error

	return prices, total, err
}

func (r *listPriceRepository) Create(ctx context.Context, price *entity.ListPrice) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *listPriceRepository) Update(ctx context.Context, price *entity.ListPrice) error {
	return r.db.WithContext(ctx).Save(price).Error
}

func (r *listPriceRepository) Delete(ctx context.Context, internalID uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ListPrice{}, "internal_id = ?", internalID).Error
}

func (r *listPriceRepository) ReplaceByType(ctx context.Context, pricingType enum.PricingType, prices []entity.ListPrice) (int, error) {
	var deleted int
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current []string
		if err := tx.Model(&entity.ListPrice{}).
			Where("type = ?", pricingType).
			Pluck("id", &current).Error; err != nil {
			return err
		}

		keep := make(map[string]struct{}, len(prices))
		for _, p := range prices {
			keep[p.ID] = struct{}{}
		}
		var stale []string
		for _, id := range current {
			if _, ok := keep[id]; !ok {
				stale = append(stale, id)
			}
		}

		for start := 0; start < len(stale); start += upsertBatchSize {
			end := min(start+upsertBatchSize, len(stale))
			if err := tx.Where("type = ? AND id IN ?", pricingType, stale[start:end]).
				Delete(&entity.ListPrice{}).Error; err != nil {
				return err
			}
		}

		if len(prices) > 0 {
			if err := tx.Clauses(clause.OnConflict{
				Columns:     []clause.Column{{Name: "type"}, {Name: "id"}},
				TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "deleted_at IS NULL"}}},
				DoUpdates: clause.AssignmentColumns([]string{
					"formula", "price", "min_price", "description", "updated_at",
				}),
			}).CreateInBatches(prices, upsertBatchSize).Error; err != nil {
				return err
			}
		}

		deleted = len(stale)
		return nil
	})
	return deleted, err
}
