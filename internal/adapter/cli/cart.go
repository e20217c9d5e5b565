package cli

import (
	"strconv"
	"strings"

	"github.com/DavidKinter/bestbuy-2-0/internal/core/domain"
)

// buildCart collects order items interactively. An empty product number
// finishes the cart. Invalid input re-prompts instead of aborting, and
// quantities already in the cart count against availability so the user
// cannot cart more than the shelf holds.
func (m *Menu) buildCart(products []*domain.Product) []domain.OrderItem {
	var cart []domain.OrderItem
	carted := make(map[int]int)

	for {
		line, ok := m.prompt("\nEnter product number (or press Enter to finish): ")
		if !ok || strings.TrimSpace(line) == "" {
			break
		}

		idx, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.printf("Please enter a valid number.\n")
			continue
		}
		if idx < 1 || idx > len(products) {
			m.printf("Please enter a number between 1 and %d.\n", len(products))
			continue
		}
		idx--

		quantity, ok := m.promptQuantity()
		if !ok {
			continue
		}

		p := products[idx]
		if !m.checkAvailability(p, quantity, carted[idx]) {
			continue
		}

		cart = append(cart, domain.OrderItem{Product: p, Quantity: quantity})
		carted[idx] += quantity
		m.printf("Added %d x %s\n", quantity, p.Describe())
	}
	return cart
}

func (m *Menu) promptQuantity() (int, bool) {
	line, ok := m.prompt("Enter quantity: ")
	if !ok {
		return 0, false
	}
	q, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		m.printf("Please enter a valid quantity.\n")
		return 0, false
	}
	if q <= 0 {
		m.printf("Quantity must be greater than 0.\n")
		return 0, false
	}
	return q, true
}

// checkAvailability compares the request against the shelf minus what
// is already carted. Non-stocked products have no shelf to exhaust.
func (m *Menu) checkAvailability(p *domain.Product, requested, carted int) bool {
	if p.Kind() == domain.KindNonStocked {
		return true
	}
	remaining := p.Quantity() - carted
	if requested > remaining {
		if carted > 0 {
			m.printf("Error: Only %d items available (%d already in cart).\n", remaining, carted)
		} else {
			m.printf("Error: Only %d items available.\n", p.Quantity())
		}
		return false
	}
	return true
}
