package handler

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/repository"
)

type stubListPriceRepo struct {
	mu     sync.Mutex
	prices []entity.ListPrice
}

func (r *stubListPriceRepo) index(pricingType enum.PricingType, id string) int {
	for i, p := range r.prices {
		if p.Type == pricingType && p.ID == id {
			return i
		}
	}
	return -1
}

func (r *stubListPriceRepo) GetByTypeAndID(_ context.Context, pricingType enum.PricingType, id string) (*entity.ListPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i := r.index(pricingType, id); i >= 0 {
		p := r.prices[i]
		return &p, nil
	}
	return nil, nil
}

func (r *stubListPriceRepo) GetByInternalID(_ context.Context, internalID uuid.UUID) (*entity.ListPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.prices {
		if p.InternalID == internalID {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *stubListPriceRepo) List(_ context.Context, params *repository.ListPriceFilterParams) ([]entity.ListPrice, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ListPrice
	for _, p := range r.prices {
		if params.Type == nil || p.Type == *params.Type {
			out = append(out, p)
		}
	}
	return out, int64(len(out)), nil
}

func (r *stubListPriceRepo) Create(_ context.Context, price *entity.ListPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if price.InternalID == uuid.Nil {
		price.InternalID = uuid.New()
	}
	r.prices = append(r.prices, *price)
	return nil
}

func (r *stubListPriceRepo) Update(_ context.Context, price *entity.ListPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prices {
		if r.prices[i].InternalID == price.InternalID {
			r.prices[i] = *price
		}
	}
	return nil
}

func (r *stubListPriceRepo) Delete(_ context.Context, internalID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.prices {
		if r.prices[i].InternalID == internalID {
			r.prices = append(r.prices[:i], r.prices[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *stubListPriceRepo) ReplaceByType(_ context.Context, pricingType enum.PricingType, prices []entity.ListPrice) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	keep := make(map[string]struct{}, len(prices))
	for _, p := range prices {
		keep[p.ID] = struct{}{}
	}
	kept := r.prices[:0]
	for _, p := range r.prices {
		if _, ok := keep[p.ID]; p.Type == pricingType && !ok {
			continue
		}
		kept = append(kept, p)
	}
	deleted := len(r.prices) - len(kept)
	r.prices = kept

	for _, p := range prices {
		if i := r.index(p.Type, p.ID); i >= 0 {
			r.prices[i].Price = p.Price
			continue
		}
		p.InternalID = uuid.New()
		r.prices = append(r.prices, p)
	}
	return deleted, nil
}

type stubOrderRepo struct {
	mu        sync.Mutex
	orders    map[uuid.UUID]entity.Order
	snapshots *stubCalculatedItemRepo
}

func (r *stubOrderRepo) Create(ctx context.Context, order *entity.Order, calculated *entity.CalculatedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.snapshots.Put(ctx, calculated); err != nil {
		return err
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *stubOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if o, ok := r.orders[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (r *stubOrderRepo) GetItem(_ context.Context, itemID uuid.UUID) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		for _, it := range o.Items {
			if it.ID == itemID {
				return &it, nil
			}
		}
	}
	return nil, nil
}

type stubCalculatedItemRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]entity.CalculatedItem
}

func (r *stubCalculatedItemRepo) Put(_ context.Context, item *entity.CalculatedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = *item
	return nil
}

func (r *stubCalculatedItemRepo) Get(_ context.Context, itemID uuid.UUID) (*entity.CalculatedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if it, ok := r.items[itemID]; ok {
		return &it, nil
	}
	return nil, nil
}
