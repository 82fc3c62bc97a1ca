package memory

import (
	"context"
	"sync"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// CatalogRepository serves the immutable product and order reference data.
type CatalogRepository struct {
	mu       sync.RWMutex
	products []*domain.Product
	orders   []*domain.Order
}

func NewCatalogRepository(products []*domain.Product, orders []*domain.Order) *CatalogRepository {
	return &CatalogRepository{products: products, orders: orders}
}

func (r *CatalogRepository) ListProducts(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, len(r.products))
	for i, p := range r.products {
		clone := *p
		out[i] = &clone
	}
	return out, nil
}

func (r *CatalogRepository) FindProduct(_ context.Context, sku string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *CatalogRepository) ListOrdersByClient(_ context.Context, clientEmail string) ([]*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*domain.Order
	for _, o := range r.orders {
		if o.ClientEmail == clientEmail {
			clone := *o
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *CatalogRepository) FindOrder(_ context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			clone := *o
			return &clone, nil
		}
	}
	return nil, domain.ErrOrderNotFound
}
