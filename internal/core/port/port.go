package port

import (
	"context"

	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
)

type CatalogViewer interface {
	ActiveProducts(context.Context) ([]*domain.Product, error)
	TotalQuantity(context.Context) (int, error)
}

type OrderPlacer interface {
	PlaceOrder(context.Context, []domain.OrderItem) (domain.OrderResult, error)
}

type CatalogEditor interface {
	AddProduct(context.Context, *domain.Product) error
	RemoveProduct(context.Context, *domain.Product) error
}
