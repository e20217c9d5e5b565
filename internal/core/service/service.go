package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/port"
)

var _ port.CatalogViewer = (*Service)(nil)
var _ port.OrderPlacer = (*Service)(nil)
var _ port.CatalogEditor = (*Service)(nil)

// Service exposes the store to inbound adapters. The caller must
// serialize access: the store has no internal locking.
type Service struct {
	store *domain.Store
}

func New(store *domain.Store) Service {
	return Service{store}
}

func (s Service) ActiveProducts(ctx context.Context) ([]*domain.Product, error) {
	const op = "Service.ActiveProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.ActiveProducts(), nil
}

func (s Service) TotalQuantity(ctx context.Context) (int, error) {
	const op = "Service.TotalQuantity"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return s.store.TotalQuantity(), nil
}

// PlaceOrder runs the shopping list through the store and logs each
// rejected line as a diagnostic. Per-item purchase failures never
// propagate as errors, they are part of the result.
func (s Service) PlaceOrder(ctx context.Context, items []domain.OrderItem) (domain.OrderResult, error) {
	const op = "Service.PlaceOrder"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.OrderResult{}, fmt.Errorf("%s: %w", op, err)
	}

	res := s.store.Order(items)
	for _, r := range res.Rejected {
		log.Warn("order line rejected",
			"orderID", res.ID,
			"product", r.Product,
			"quantity", r.Quantity,
			"err", r.Err,
		)
	}
	log.Info("order processed",
		"orderID", res.ID,
		"nLines", len(res.Lines),
		"nRejected", len(res.Rejected),
		"total", res.Total,
	)
	return res, nil
}

func (s Service) AddProduct(ctx context.Context, p *domain.Product) error {
	const op = "Service.AddProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.store.AddProduct(p)
	return nil
}

func (s Service) RemoveProduct(ctx context.Context, p *domain.Product) error {
	const op = "Service.RemoveProduct"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.store.RemoveProduct(p)
	return nil
}
