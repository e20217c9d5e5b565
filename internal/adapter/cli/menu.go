package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/DavidKinter/bestbuy-2-0/internal/core/port"
)

// Menu is the interactive storefront. It is the only place that talks
// to the user; the core never prints.
type Menu struct {
	viewer port.CatalogViewer
	placer port.OrderPlacer
	in     *bufio.Scanner
	out    io.Writer
}

func NewMenu(viewer port.CatalogViewer, placer port.OrderPlacer, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		viewer: viewer,
		placer: placer,
		in:     bufio.NewScanner(in),
		out:    out,
	}
}

// Run loops over the menu until the user quits, the input closes, or
// the context is canceled. The context is checked between actions, not
// inside a blocking read.
func (m *Menu) Run(ctx context.Context) error {
	const op = "Menu.Run"

	m.printf("Welcome to the Best Buy Store Management System!\n")
	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		m.printMenu()
		choice, ok := m.prompt("Please choose an option (1-4): ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(choice) {
		case "1":
			err = m.listProducts(ctx)
		case "2":
			err = m.showTotals(ctx)
		case "3":
			err = m.makeOrder(ctx)
		case "4":
			m.printf("\nThank you for visiting. Goodbye!\n")
			return nil
		default:
			m.printf("Invalid choice. Please enter 1, 2, 3, or 4.\n")
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		if _, ok := m.prompt("\nPress Enter to continue..."); !ok {
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	line := strings.Repeat("=", 40)
	m.printf("\n%s\n", line)
	m.printf("%s\n", center("Best Buy Store Menu", 40))
	m.printf("%s\n", line)
	m.printf("1. List all products in store\n")
	m.printf("2. Show total amount in store\n")
	m.printf("3. Make an order\n")
	m.printf("4. Quit\n")
	m.printf("%s\n", line)
}

func (m *Menu) listProducts(ctx context.Context) error {
	products, err := m.viewer.ActiveProducts(ctx)
	if err != nil {
		return err
	}

	m.printf("\n--- Products Available in Store ---\n")
	if len(products) == 0 {
		m.printf("No products currently available.\n")
		return nil
	}
	for i, p := range products {
		m.printf("%d. %s, $%s\n", i+1, p.Name(), p.Price().StringFixed(2))
	}
	return nil
}

func (m *Menu) showTotals(ctx context.Context) error {
	products, err := m.viewer.ActiveProducts(ctx)
	if err != nil {
		return err
	}

	m.printf("\n--- Product Quantities in Store ---\n")
	if len(products) == 0 {
		m.printf("No products currently available.\n")
		return nil
	}
	for i, p := range products {
		m.printf("%d. %s: %d items\n", i+1, p.Name(), p.Quantity())
	}

	total, err := m.viewer.TotalQuantity(ctx)
	if err != nil {
		return err
	}
	m.printf("\nTotal items in store: %d\n", total)
	return nil
}

func (m *Menu) makeOrder(ctx context.Context) error {
	products, err := m.viewer.ActiveProducts(ctx)
	if err != nil {
		return err
	}

	m.printf("\n--- Make an Order ---\n")
	if len(products) == 0 {
		m.printf("No products currently available.\n")
		return nil
	}
	m.printf("\nAvailable products:\n")
	for i, p := range products {
		m.printf("%d. %s\n", i+1, p.Describe())
	}

	cart := m.buildCart(products)
	if len(cart) == 0 {
		m.printf("No items in order.\n")
		return nil
	}

	res, err := m.placer.PlaceOrder(ctx, cart)
	if err != nil {
		return err
	}

	for _, r := range res.Rejected {
		m.printf("Error ordering %s: %v\n", r.Product, r.Err)
	}
	m.printf("\nOrder complete! Total cost: $%s\n", res.Total.StringFixed(2))
	return nil
}

func (m *Menu) prompt(label string) (string, bool) {
	m.printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func center(s string, width int) string {
	pad := width - len(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s
}
