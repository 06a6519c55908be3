package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	domainRepo "github.com/sonsardina/framing-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type calculatedItemRepository struct {
	db *gorm.DB
}

// NewCalculatedItemRepository creates a new calculated item repository
func NewCalculatedItemRepository(db *gorm.DB) domainRepo.CalculatedItemRepository {
	return &calculatedItemRepository{db: db}
}

func (r *calculatedItemRepository) Put(ctx context.Context, item *entity.CalculatedItem) error {
	return putCalculatedItem(r.db.WithContext(ctx), item)
}

// putCalculatedItem upserts on item_id; tx may be a transaction
func putCalculatedItem(tx *gorm.DB, item *entity.CalculatedItem) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"order_id", "discount", "parts", "total", "created_at"}),
	}).Create(item).Error
}

func (r *calculatedItemRepository) Get(ctx context.Context, itemID uuid.UUID) (*entity.CalculatedItem, error) {
	var item entity.CalculatedItem
	err := r.db.WithContext(ctx).First(&item, "item_id = ?", itemID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}
