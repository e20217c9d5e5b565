package catalog_test

import (
	"testing"

	"github.com/DavidKinter/bestbuy-2-0/config"
	"github.com/DavidKinter/bestbuy-2-0/internal/adapter/catalog"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configWith(products ...config.Product) config.Config {
	var cfg config.Config
	cfg.Catalog.Products = products
	return cfg
}

func TestBuild(t *testing.T) {
	t.Run("AllKindsAndPromotions", func(t *testing.T) {
		cfg := configWith(
			config.Product{Name: "MacBook Air M2", Price: 1450, Quantity: 100,
				Promotion: &config.Promotion{Type: "second_half_price"}},
			config.Product{Name: "Windows License", Price: 125, Kind: "non_stocked",
				Promotion: &config.Promotion{Type: "percent_discount", Percent: 30}},
			config.Product{Name: "Shipping", Price: 10, Quantity: 250,
				Kind: "limited", MaxPerOrder: 1},
			config.Product{Name: "Google Pixel 7", Price: 500, Quantity: 250, Kind: "standard",
				Promotion: &config.Promotion{Type: "third_one_free"}},
		)

		store, err := catalog.Build(cfg)
		require.NoError(t, err)

		products := store.ActiveProducts()
		require.Len(t, products, 4)

		macbook := products[0]
		assert.Equal(t, domain.KindStandard, macbook.Kind())
		assert.Equal(t, "Second Half price!", macbook.Promotion().Name())

		license := products[1]
		assert.Equal(t, domain.KindNonStocked, license.Kind())
		assert.Equal(t, "30% off!", license.Promotion().Name())
		assert.Equal(t, 0, license.Quantity())

		shipping := products[2]
		assert.Equal(t, domain.KindLimited, shipping.Kind())
		assert.Equal(t, 1, shipping.MaxPerOrder())
		assert.Nil(t, shipping.Promotion())

		pixel := products[3]
		assert.Equal(t, "Third One Free!", pixel.Promotion().Name())
		assert.True(t, pixel.Price().Equal(decimal.NewFromInt(500)))
	})

	t.Run("PromotionNameOverride", func(t *testing.T) {
		cfg := configWith(config.Product{
			Name: "Pens", Price: 3, Quantity: 30,
			Promotion: &config.Promotion{Type: "third_one_free", Name: "Buy 2 Get 1"},
		})

		store, err := catalog.Build(cfg)
		require.NoError(t, err)
		assert.Equal(t, "Buy 2 Get 1", store.ActiveProducts()[0].Promotion().Name())
	})

	t.Run("UnknownKind", func(t *testing.T) {
		cfg := configWith(config.Product{Name: "Mystery", Price: 1, Quantity: 1, Kind: "bundle"})

		_, err := catalog.Build(cfg)
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown product kind "bundle"`)
	})

	t.Run("UnknownPromotionType", func(t *testing.T) {
		cfg := configWith(config.Product{
			Name: "Pens", Price: 3, Quantity: 30,
			Promotion: &config.Promotion{Type: "bogo"},
		})

		_, err := catalog.Build(cfg)
		require.Error(t, err)
		assert.ErrorContains(t, err, `unknown promotion type "bogo"`)
	})

	t.Run("ValidationPropagates", func(t *testing.T) {
		cfg := configWith(config.Product{Name: "", Price: 1, Quantity: 1})

		_, err := catalog.Build(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("NegativePricePropagates", func(t *testing.T) {
		cfg := configWith(config.Product{Name: "Refund", Price: -5, Quantity: 1})

		_, err := catalog.Build(cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNegativePrice)
	})
}
