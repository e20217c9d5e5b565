package catalog

import (
	"fmt"
	"strconv"

	"github.com/DavidKinter/bestbuy-2-0/config"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
	"github.com/shopspring/decimal"
)

const (
	kindStandard   = "standard"
	kindNonStocked = "non_stocked"
	kindLimited    = "limited"
)

const (
	promoPercentDiscount = "percent_discount"
	promoSecondHalfPrice = "second_half_price"
	promoThirdOneFree    = "third_one_free"
)

// Build constructs the store from the configured catalog entries.
// Invalid entries fail the whole build: a store is never started with a
// partial catalog.
func Build(cfg config.Config) (*domain.Store, error) {
	const op = "catalog.Build"

	store := domain.NewStore()
	for _, entry := range cfg.Catalog.Products {
		p, err := buildProduct(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: product %q: %w", op, entry.Name, err)
		}
		store.AddProduct(p)
	}
	return store, nil
}

func buildProduct(entry config.Product) (*domain.Product, error) {
	price := decimal.NewFromFloat(entry.Price)

	var p *domain.Product
	var err error
	switch entry.Kind {
	case "", kindStandard:
		p, err = domain.NewProduct(entry.Name, price, entry.Quantity)
	case kindNonStocked:
		p, err = domain.NewNonStockedProduct(entry.Name, price)
	case kindLimited:
		p, err = domain.NewLimitedProduct(entry.Name, price, entry.Quantity, entry.MaxPerOrder)
	default:
		return nil, fmt.Errorf("unknown product kind %q", entry.Kind)
	}
	if err != nil {
		return nil, err
	}

	if entry.Promotion != nil {
		promo, err := buildPromotion(*entry.Promotion)
		if err != nil {
			return nil, err
		}
		p.SetPromotion(promo)
	}
	return p, nil
}

func buildPromotion(entry config.Promotion) (domain.Promotion, error) {
	switch entry.Type {
	case promoPercentDiscount:
		name := entry.Name
		if name == "" {
			name = strconv.FormatFloat(entry.Percent, 'f', -1, 64) + "% off!"
		}
		return domain.NewPercentDiscount(name, decimal.NewFromFloat(entry.Percent)), nil
	case promoSecondHalfPrice:
		name := entry.Name
		if name == "" {
			name = "Second Half price!"
		}
		return domain.NewSecondHalfPrice(name), nil
	case promoThirdOneFree:
		name := entry.Name
		if name == "" {
			name = "Third One Free!"
		}
		return domain.NewThirdOneFree(name), nil
	default:
		return nil, fmt.Errorf("unknown promotion type %q", entry.Type)
	}
}
