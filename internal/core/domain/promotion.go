package domain

import "github.com/shopspring/decimal"

// Promotion is a pricing strategy: given a unit price and a requested
// quantity it computes the discounted total. Implementations are
// stateless values and may be shared by several products.
type Promotion interface {
	Name() string
	Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal
}

var _ Promotion = PercentDiscount{}
var _ Promotion = SecondHalfPrice{}
var _ Promotion = ThirdOneFree{}

var (
	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// PercentDiscount takes the given percentage off the full total.
type PercentDiscount struct {
	name    string
	percent decimal.Decimal
}

func NewPercentDiscount(name string, percent decimal.Decimal) PercentDiscount {
	return PercentDiscount{name: name, percent: percent}
}

func (d PercentDiscount) Name() string {
	return d.name
}

// Apply computes price × quantity × (100 − percent) / 100. The percent
// is not clamped: values outside [0, 100] are arithmetically honored.
func (d PercentDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	total := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
	return total.Mul(hundred.Sub(d.percent)).Div(hundred)
}

// SecondHalfPrice charges every second item at half price.
type SecondHalfPrice struct {
	name string
}

func NewSecondHalfPrice(name string) SecondHalfPrice {
	return SecondHalfPrice{name: name}
}

func (s SecondHalfPrice) Name() string {
	return s.name
}

// Apply charges ceil(quantity/2) items at full price and the remaining
// floor(quantity/2) at half price. The split is done on the quantity so
// the unit price itself is never rounded.
func (s SecondHalfPrice) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	fullPriced := int64((quantity + 1) / 2)
	halfPriced := int64(quantity / 2)

	full := unitPrice.Mul(decimal.NewFromInt(fullPriced))
	half := unitPrice.Mul(decimal.NewFromInt(halfPriced)).Div(two)
	return full.Add(half)
}

// ThirdOneFree gives every third item for free.
type ThirdOneFree struct {
	name string
}

func NewThirdOneFree(name string) ThirdOneFree {
	return ThirdOneFree{name: name}
}

func (t ThirdOneFree) Name() string {
	return t.name
}

// Apply charges quantity − floor(quantity/3) items at full price.
func (t ThirdOneFree) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	paid := int64(quantity - quantity/3)
	return unitPrice.Mul(decimal.NewFromInt(paid))
}
