package ports

import (
	"context"

	"github.com/retours-express/returns-platform/internal/core/domain"
)

// CatalogRepository serves the read-only product and order reference data
// the wizard's product step is built from.
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]*domain.Product, error)
	FindProduct(ctx context.Context, sku string) (*domain.Product, error)
	ListOrdersByClient(ctx context.Context, clientEmail string) ([]*domain.Order, error)
	FindOrder(ctx context.Context, id string) (*domain.Order, error)
}
