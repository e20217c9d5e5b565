package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind discriminates product variants. The set is closed: purchase and
// stock rules dispatch on it in one place instead of spreading over an
// override chain.
type Kind int

const (
	// KindStandard is a stocked product: purchases decrement stock and
	// the product deactivates when stock runs out.
	KindStandard Kind = iota

	// KindNonStocked is a product without stock tracking, e.g. a
	// software license. Quantity is pinned at zero and the product is
	// always active.
	KindNonStocked

	// KindLimited is a stocked product with a per-order purchase cap.
	KindLimited
)

func (k Kind) String() string {
	switch k {
	case KindStandard:
		return "standard"
	case KindNonStocked:
		return "non-stocked"
	case KindLimited:
		return "limited"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Product is one catalog entry. The zero value is not usable; construct
// via NewProduct, NewNonStockedProduct or NewLimitedProduct.
type Product struct {
	name        string
	price       decimal.Decimal
	quantity    int
	active      bool
	promotion   Promotion
	kind        Kind
	maxPerOrder int
}

// NewProduct creates a standard stocked product. The product starts
// active when quantity is greater than zero.
func NewProduct(name string, price decimal.Decimal, quantity int) (*Product, error) {
	const op = "NewProduct"

	p, err := newProduct(name, price, quantity, KindStandard)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return p, nil
}

// NewNonStockedProduct creates a product with unlimited stock. It is
// always active and its quantity is permanently zero.
func NewNonStockedProduct(name string, price decimal.Decimal) (*Product, error) {
	const op = "NewNonStockedProduct"

	p, err := newProduct(name, price, 0, KindNonStocked)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.active = true
	return p, nil
}

// NewLimitedProduct creates a stocked product that rejects any single
// purchase of more than maxPerOrder units.
func NewLimitedProduct(name string, price decimal.Decimal, quantity, maxPerOrder int) (*Product, error) {
	const op = "NewLimitedProduct"

	if maxPerOrder < 1 {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidMaximum)
	}
	p, err := newProduct(name, price, quantity, KindLimited)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.maxPerOrder = maxPerOrder
	return p, nil
}

func newProduct(name string, price decimal.Decimal, quantity int, kind Kind) (*Product, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	return &Product{
		name:     name,
		price:    price,
		quantity: quantity,
		active:   quantity > 0,
		kind:     kind,
	}, nil
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Quantity() int {
	return p.quantity
}

func (p *Product) Kind() Kind {
	return p.kind
}

// MaxPerOrder returns the per-order purchase cap. Zero for kinds other
// than KindLimited.
func (p *Product) MaxPerOrder() int {
	return p.maxPerOrder
}

// IsActive reports whether the product may be sold. Non-stocked
// products are always active.
func (p *Product) IsActive() bool {
	if p.kind == KindNonStocked {
		return true
	}
	return p.active
}

// Activate makes the product sellable again. Reaching a positive
// quantity via SetQuantity does not reactivate, only Activate does.
func (p *Product) Activate() {
	p.active = true
}

// Deactivate withdraws the product from sale. No-op for non-stocked
// products.
func (p *Product) Deactivate() {
	if p.kind == KindNonStocked {
		return
	}
	p.active = false
}

// SetQuantity replaces the stock level. Reaching zero deactivates the
// product. Negative values are rejected, non-stocked quantity stays
// pinned at zero.
func (p *Product) SetQuantity(quantity int) error {
	const op = "Product.SetQuantity"

	if quantity < 0 {
		return fmt.Errorf("%s: %w", op, ErrNegativeQuantity)
	}
	if p.kind == KindNonStocked {
		return nil
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return nil
}

// SetPromotion attaches a discount strategy, replacing any previous
// one. Nil detaches.
func (p *Product) SetPromotion(promo Promotion) {
	p.promotion = promo
}

func (p *Product) Promotion() Promotion {
	return p.promotion
}

// Describe returns a one-line human-readable summary.
func (p *Product) Describe() string {
	s := fmt.Sprintf("%s, Price: %s, Quantity: %d", p.name, p.price, p.quantity)
	if p.promotion != nil {
		s += fmt.Sprintf(", Promotion: %s", p.promotion.Name())
	}
	switch p.kind {
	case KindNonStocked:
		s += " (Non-Stocked)"
	case KindLimited:
		s += fmt.Sprintf(" (Limited to %d per order)", p.maxPerOrder)
	}
	return s
}

// Purchase sells the given quantity and returns the total price,
// applying the attached promotion if any. Stocked kinds decrement their
// stock and deactivate at zero; non-stocked products accept any
// positive quantity without mutation. A rejected purchase leaves the
// product untouched.
func (p *Product) Purchase(quantity int) (decimal.Decimal, error) {
	const op = "Product.Purchase"

	if quantity <= 0 {
		return decimal.Zero, fmt.Errorf("%s: %w", op, ErrInvalidQuantity)
	}
	if p.kind == KindLimited && quantity > p.maxPerOrder {
		return decimal.Zero, fmt.Errorf(
			"%s: %w: at most %d of %q per order",
			op, ErrPurchaseLimit, p.maxPerOrder, p.name,
		)
	}
	if p.kind != KindNonStocked {
		if !p.active {
			return decimal.Zero, fmt.Errorf("%s: %w", op, ErrInactiveProduct)
		}
		if quantity > p.quantity {
			return decimal.Zero, fmt.Errorf(
				"%s: %w: only %d available",
				op, ErrInsufficientStock, p.quantity,
			)
		}
	}

	total := p.totalPrice(quantity)

	if p.kind != KindNonStocked {
		p.quantity -= quantity
		if p.quantity == 0 {
			p.Deactivate()
		}
	}
	return total, nil
}

func (p *Product) totalPrice(quantity int) decimal.Decimal {
	if p.promotion != nil {
		return p.promotion.Apply(p.price, quantity)
	}
	return p.price.Mul(decimal.NewFromInt(int64(quantity)))
}
