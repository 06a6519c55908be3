package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/entity"
	"github.com/sonsardina/framing-api/internal/domain/enum"
	"github.com/sonsardina/framing-api/internal/domain/repository"
)

type memListPriceRepo struct {
	mu         sync.Mutex
	prices     map[uuid.UUID]*entity.ListPrice
	replaceErr error
}

func newMemListPriceRepo(prices ...entity.ListPrice) *memListPriceRepo {
	r := &memListPriceRepo{prices: make(map[uuid.UUID]*entity.ListPrice)}
	for i := range prices {
		_ = r.Create(context.Background(), &prices[i])
	}
	return r
}

func (r *memListPriceRepo) find(pricingType enum.PricingType, id string) *entity.ListPrice {
	for _, p := range r.prices {
		if p.Type == pricingType && p.ID == id {
			return p
		}
	}
	return nil
}

func (r *memListPriceRepo) GetByTypeAndID(_ context.Context, pricingType enum.PricingType, id string) (*entity.ListPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p := r.find(pricingType, id); p != nil {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memListPriceRepo) GetByInternalID(_ context.Context, internalID uuid.UUID) (*entity.ListPrice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.prices[internalID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (r *memListPriceRepo) List(_ context.Context, params *repository.ListPriceFilterParams) ([]entity.ListPrice, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.ListPrice
	for _, p := range r.prices {
		if params.Type != nil && p.Type != *params.Type {
			continue
		}
		if params.Search != "" && !strings.Contains(p.ID, params.Search) && !strings.Contains(p.Description, params.Search) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	total := int64(len(out))
	start := params.Pagination.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + params.Pagination.PerPage
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (r *memListPriceRepo) Create(_ context.Context, price *entity.ListPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if price.InternalID == uuid.Nil {
		price.InternalID = uuid.New()
	}
	price.SortBrackets()
	cp := *price
	r.prices[price.InternalID] = &cp
	return nil
}

func (r *memListPriceRepo) Update(_ context.Context, price *entity.ListPrice) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *price
	r.prices[price.InternalID] = &cp
	return nil
}

func (r *memListPriceRepo) Delete(_ context.Context, internalID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.prices, internalID)
	return nil
}

// ReplaceByType fails before touching anything when replaceErr is set,
// the way a rolled back transaction leaves the table.
func (r *memListPriceRepo) ReplaceByType(_ context.Context, pricingType enum.PricingType, prices []entity.ListPrice) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.replaceErr != nil {
		return 0, r.replaceErr
	}

	keep := make(map[string]struct{}, len(prices))
	for _, p := range prices {
		keep[p.ID] = struct{}{}
	}
	deleted := 0
	for internalID, p := range r.prices {
		if _, ok := keep[p.ID]; p.Type == pricingType && !ok {
			delete(r.prices, internalID)
			deleted++
		}
	}

	for _, p := range prices {
		if existing := r.find(p.Type, p.ID); existing != nil {
			existing.Price = p.Price
			existing.Formula = p.Formula
			existing.MinPrice = p.MinPrice
			existing.Description = p.Description
			continue
		}
		cp := p
		cp.InternalID = uuid.New()
		r.prices[cp.InternalID] = &cp
	}
	return deleted, nil
}

type memCalculatedItemRepo struct {
	mu     sync.Mutex
	items  map[uuid.UUID]entity.CalculatedItem
	putErr error
}

func newMemCalculatedItemRepo() *memCalculatedItemRepo {
	return &memCalculatedItemRepo{items: make(map[uuid.UUID]entity.CalculatedItem)}
}

func (r *memCalculatedItemRepo) Put(_ context.Context, item *entity.CalculatedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.putErr != nil {
		return r.putErr
	}
	r.items[item.ItemID] = *item
	return nil
}

func (r *memCalculatedItemRepo) Get(_ context.Context, itemID uuid.UUID) (*entity.CalculatedItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

// memOrderRepo writes calculated items through the snapshot repo and keeps
// the order only when that write succeeds.
type memOrderRepo struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]entity.Order
	calculated *memCalculatedItemRepo
}

func newMemOrderRepo(calculated *memCalculatedItemRepo) *memOrderRepo {
	return &memOrderRepo{orders: make(map[uuid.UUID]entity.Order), calculated: calculated}
}

func (r *memOrderRepo) Create(ctx context.Context, order *entity.Order, calculated *entity.CalculatedItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.calculated.Put(ctx, calculated); err != nil {
		return err
	}
	r.orders[order.ID] = *order
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (r *memOrderRepo) GetItem(_ context.Context, itemID uuid.UUID) (*entity.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		for _, it := range o.Items {
			if it.ID == itemID {
				item := it
				return &item, nil
			}
		}
	}
	return nil, nil
}
