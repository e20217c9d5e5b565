package cli_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/DavidKinter/bestbuy-2-0/internal/adapter/cli"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
	"github.com/DavidKinter/bestbuy-2-0/internal/core/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	macbook *domain.Product
	license *domain.Product
	store   *domain.Store
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	macbook, err := domain.NewProduct("MacBook Air M2", decimal.NewFromInt(1450), 100)
	require.NoError(t, err)
	license, err := domain.NewNonStockedProduct("Windows License", decimal.NewFromInt(125))
	require.NoError(t, err)

	return fixture{
		macbook: macbook,
		license: license,
		store:   domain.NewStore(macbook, license),
	}
}

func runMenu(t *testing.T, f fixture, input string) string {
	t.Helper()

	s := service.New(f.store)
	var out bytes.Buffer
	menu := cli.NewMenu(s, s, strings.NewReader(input), &out)

	err := menu.Run(context.Background())
	require.NoError(t, err)
	return out.String()
}

func TestMenuListProducts(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "1\n\n4\n")

	assert.Contains(t, out, "--- Products Available in Store ---")
	assert.Contains(t, out, "1. MacBook Air M2, $1450.00")
	assert.Contains(t, out, "2. Windows License, $125.00")
}

func TestMenuShowTotals(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "2\n\n4\n")

	assert.Contains(t, out, "1. MacBook Air M2: 100 items")
	assert.Contains(t, out, "Total items in store: 100")
}

func TestMenuMakeOrder(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "3\n1\n2\n\n\n4\n")

	assert.Contains(t, out, "Added 2 x MacBook Air M2")
	assert.Contains(t, out, "Order complete! Total cost: $2900.00")
	assert.Equal(t, 98, f.macbook.Quantity())
}

func TestMenuOrderNonStockedUnlimited(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "3\n2\n500\n\n\n4\n")

	assert.Contains(t, out, "Order complete! Total cost: $62500.00")
	assert.Equal(t, 0, f.license.Quantity())
	assert.True(t, f.license.IsActive())
}

func TestMenuOrderAvailabilityCheck(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "3\n1\n999\n\n\n4\n")

	assert.Contains(t, out, "Error: Only 100 items available.")
	assert.Contains(t, out, "No items in order.")
	assert.Equal(t, 100, f.macbook.Quantity())
}

func TestMenuCartCountsCartedQuantity(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "3\n1\n60\n1\n60\n\n\n4\n")

	assert.Contains(t, out, "Error: Only 40 items available (60 already in cart).")
	assert.Contains(t, out, "Order complete! Total cost: $87000.00")
	assert.Equal(t, 40, f.macbook.Quantity())
}

func TestMenuInvalidChoice(t *testing.T) {
	f := newFixture(t)
	out := runMenu(t, f, "9\n4\n")

	assert.Contains(t, out, "Invalid choice. Please enter 1, 2, 3, or 4.")
}

func TestMenuInputClosed(t *testing.T) {
	f := newFixture(t)
	// EOF on the first prompt ends the session without error.
	out := runMenu(t, f, "")

	assert.Contains(t, out, "Best Buy Store Menu")
}

func TestMenuCanceledContext(t *testing.T) {
	f := newFixture(t)
	s := service.New(f.store)
	var out bytes.Buffer
	menu := cli.NewMenu(s, s, strings.NewReader("1\n"), &out)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := menu.Run(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
