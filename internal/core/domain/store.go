package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store owns the ordered product catalog for one session. Insertion
// order is preserved for display numbering.
type Store struct {
	products []*Product
}

func NewStore(products ...*Product) *Store {
	return &Store{products: products}
}

// AddProduct appends the product to the catalog. Duplicates are not
// checked.
func (s *Store) AddProduct(p *Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes the product by identity. No-op when absent.
func (s *Store) RemoveProduct(p *Product) {
	for i, v := range s.products {
		if v == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return
		}
	}
}

// TotalQuantity sums the stock of all products, active and inactive
// alike.
func (s *Store) TotalQuantity() int {
	var total int
	for _, p := range s.products {
		total += p.Quantity()
	}
	return total
}

// ActiveProducts returns the sellable products in insertion order. The
// slice is empty, not nil-checked by callers, when nothing is active.
func (s *Store) ActiveProducts() []*Product {
	active := make([]*Product, 0, len(s.products))
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// OrderItem is one requested line of a shopping list.
type OrderItem struct {
	Product  *Product
	Quantity int
}

// OrderLine is one successfully purchased line.
type OrderLine struct {
	Product  string
	Quantity int
	Total    decimal.Decimal
}

// RejectedLine reports a line whose purchase failed. Err wraps one of
// the purchase sentinel errors.
type RejectedLine struct {
	Product  string
	Quantity int
	Err      error
}

// OrderResult is the receipt of one Order call.
type OrderResult struct {
	ID       uuid.UUID
	Total    decimal.Decimal
	Lines    []OrderLine
	Rejected []RejectedLine
}

// Order processes the shopping list best-effort: each item is purchased
// in turn, a failing item contributes nothing and is recorded in
// Rejected, and the remaining items still process. The order is never
// atomic; a rejected line leaves its product's stock untouched.
func (s *Store) Order(items []OrderItem) OrderResult {
	res := OrderResult{ID: uuid.New(), Total: decimal.Zero}

	for _, item := range items {
		total, err := item.Product.Purchase(item.Quantity)
		if err != nil {
			res.Rejected = append(res.Rejected, RejectedLine{
				Product:  item.Product.Name(),
				Quantity: item.Quantity,
				Err:      err,
			})
			continue
		}
		res.Total = res.Total.Add(total)
		res.Lines = append(res.Lines, OrderLine{
			Product:  item.Product.Name(),
			Quantity: item.Quantity,
			Total:    total,
		})
	}
	return res
}
