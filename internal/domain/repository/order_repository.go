package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	// Create stores the order, its items and the calculated item of its
	// first item in one transaction
	Create(ctx context.Context, order *entity.Order, calculated *entity.CalculatedItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*entity.Item, error)
}
