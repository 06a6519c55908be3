package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
)

// CalculatedItemRepository stores priced snapshots keyed by item id
type CalculatedItemRepository interface {
	// Put stores the snapshot, replacing any previous one for the same item
	Put(ctx context.Context, item *entity.CalculatedItem) error
	Get(ctx context.Context, itemID uuid.UUID) (*entity.CalculatedItem, error)
}
